package config_test

import (
	"testing"

	"github.com/invibeme/passporteye/pkg/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "production", cfg.Log.Environment)
	assert.Equal(t, "ocr", cfg.Input.Mode)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Output.Pretty)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("PASSPORTEYE_OUTPUT_FORMAT", "text")
	t.Setenv("PASSPORTEYE_INPUT_MODE", "lines")

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "lines", cfg.Input.Mode)
}

func TestLoad_FlagsTakePrecedence(t *testing.T) {
	t.Setenv("PASSPORTEYE_OUTPUT_FORMAT", "text")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	flags.Bool("pretty", false, "")
	require.NoError(t, flags.Parse([]string{"--output=json", "--pretty"}))

	cfg, err := config.Load(flags)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.Pretty)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("PASSPORTEYE_OUTPUT_FORMAT", "xml")

	_, err := config.Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"valid", func(c *config.Config) {}, false},
		{"empty log level allowed", func(c *config.Config) { c.Log.Level = "" }, false},
		{"bad log level", func(c *config.Config) { c.Log.Level = "loud" }, true},
		{"bad input mode", func(c *config.Config) { c.Input.Mode = "image" }, true},
		{"bad environment", func(c *config.Config) { c.Log.Environment = "prod" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				Log:    config.LogConfig{Level: "info", Environment: "production"},
				Input:  config.InputConfig{Mode: "ocr"},
				Output: config.OutputConfig{Format: "json"},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
