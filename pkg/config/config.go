package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the mrz command line tool.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Input  InputConfig  `mapstructure:"input"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level       string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Environment string `mapstructure:"environment" validate:"oneof=development production"`
}

// InputConfig selects how input text is interpreted.
type InputConfig struct {
	// Mode is "ocr" for raw OCR output routed through cleanup, or "lines"
	// for pre-segmented MRZ lines taken verbatim.
	Mode string `mapstructure:"mode" validate:"oneof=ocr lines"`
}

// OutputConfig controls how the parsed document is rendered.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=json text"`
	Pretty bool   `mapstructure:"pretty"`
}

var validate = validator.New()

// Load reads configuration from defaults, an optional mrz.yaml config file,
// PASSPORTEYE_* environment variables and, when flags is non-nil, parsed
// command-line flags (highest precedence).
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("PASSPORTEYE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("mrz")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/passporteye")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded configuration against its struct tags.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	problems := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		problems = append(problems, formatFieldError(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	if fe.Tag() == "oneof" {
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.environment", "production")
	v.SetDefault("input.mode", "ocr")
	v.SetDefault("output.format", "json")
	v.SetDefault("output.pretty", false)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"log.level":     "log-level",
		"input.mode":    "mode",
		"output.format": "output",
		"output.pretty": "pretty",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}
