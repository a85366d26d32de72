package mrz_test

import (
	"testing"

	"github.com/invibeme/passporteye/pkg/mrz"
)

func TestComputeCheckDigit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"0000000000", "0"},
		{"00A0A<0A0<<0A0A0<0A", "0"},
		{"111111111", "3"},
		{"111<<<111111", "3"},
		{"BBB<<<1B1<<<BB1", "3"},
		{"1<<1<<1<<1", "8"},
		{"123456789", "7"},

		// invalid inputs yield the empty string
		{"", ""},
		{"0000 0", ""},
		{"0 0", ""},
		{"onlylowercase", ""},
		{"BBb<<<1B1<<<BB1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := mrz.ComputeCheckDigit(tt.in); got != tt.want {
				t.Errorf("ComputeCheckDigit(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestComputeCheckDigit_LetterDigitEquivalence(t *testing.T) {
	// B..J carry values 11..19, so modulo 10 they behave like 1..9.
	if mrz.ComputeCheckDigit("BCDEFGHIJ") != mrz.ComputeCheckDigit("123456789") {
		t.Error("BCDEFGHIJ and 123456789 should produce the same check digit")
	}
}
