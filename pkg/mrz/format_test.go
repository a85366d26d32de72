package mrz_test

import (
	"strings"
	"testing"

	"github.com/invibeme/passporteye/pkg/mrz"
)

func TestGuessFormat(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  mrz.Format
	}{
		{"three lines", []string{"a", "b", "c"}, mrz.FormatTD1},
		{"three long lines", []string{strings.Repeat("<", 30), strings.Repeat("<", 30), strings.Repeat("<", 30)}, mrz.FormatTD1},
		{"two short lines", []string{"a", "b"}, mrz.FormatTD2},
		{"two long lines", []string{strings.Repeat("*", 40), strings.Repeat("*", 40)}, mrz.FormatTD3},
		{"two long visa lines", []string{strings.Repeat("V", 40), strings.Repeat("*", 40)}, mrz.FormatMRVA},
		{"two short visa lines", []string{strings.Repeat("V", 36), strings.Repeat("*", 36)}, mrz.FormatMRVB},
		{"lowercase visa marker", []string{"v" + strings.Repeat("<", 35), strings.Repeat("<", 36)}, mrz.FormatMRVB},
		{"no lines", nil, mrz.FormatUnknown},
		{"one line", []string{strings.Repeat("<", 44)}, mrz.FormatUnknown},
		{"four lines", []string{"a", "b", "c", "d"}, mrz.FormatUnknown},
		{"empty first line", []string{"", strings.Repeat("<", 36)}, mrz.FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mrz.GuessFormat(tt.lines); got != tt.want {
				t.Errorf("GuessFormat(%v) = %q, want %q", tt.lines, got, tt.want)
			}
		})
	}
}
