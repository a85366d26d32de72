package mrz_test

import (
	"strings"
	"testing"

	"github.com/invibeme/passporteye/pkg/mrz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noisyTD1OCR = "\n\n this line useless \n" +
	" IDAUT10000999<6  <<<<<<<<< <<<<<< \n" +
	" 7IO9O94FIi  iz3iSAUT<<<<<<<<<<<4 \n" +
	" MUSTERFRA  U<<ISOLDE<<<  <<<<<<<<<"

func TestCleanOCR_RepairsTD1(t *testing.T) {
	lines := mrz.CleanOCR(noisyTD1OCR)

	require.Len(t, lines, 3)
	assert.Equal(t, "IDAUT10000999<6<<<<<<<<<<<<<<<", lines[0])
	assert.Equal(t, "7109094F1112315AUT<<<<<<<<<<<4", lines[1])
	assert.Equal(t, "MUSTERFRAU<<ISOLDE<<<<<<<<<<<<", lines[2])
}

func TestCleanOCR_RepairsTD3(t *testing.T) {
	lines := mrz.CleanOCR("\nuseless lines\n" +
		"  P<POLKOWALSKA < KWIATKOWSKA<<JOANNA<<<<<<<<<<< \n" +
		"  AA0000000OP0L6OOzoB4Fi4iz3I4<<<<<<<<<<<<<<<4  \n  asdf  ")

	require.Len(t, lines, 2)
	assert.Equal(t, "P<POLKOWALSKA<KWIATKOWSKA<<JOANNA<<<<<<<<<<<", lines[0])
	assert.Equal(t, "AA00000000POL6002084F1412314<<<<<<<<<<<<<<<4", lines[1])
}

func TestCleanOCR_NoiseFiltering(t *testing.T) {
	t.Run("drops short lines without filler pairs", func(t *testing.T) {
		assert.Empty(t, mrz.CleanOCR("asdf\nsomething short\n"))
	})

	t.Run("keeps short lines containing <<", func(t *testing.T) {
		lines := mrz.CleanOCR("noise\nAB<<CD\n")
		assert.Equal(t, []string{"AB<<CD"}, lines)
	})

	t.Run("unclassifiable input passes through unrepaired", func(t *testing.T) {
		// A single surviving line has no format, so no character fixup runs.
		in := "only<<one<<line<<here"
		assert.Equal(t, []string{in}, mrz.CleanOCR(in))
	})
}

func TestCleanOCR_Idempotent(t *testing.T) {
	once := mrz.CleanOCR(noisyTD1OCR)
	twice := mrz.CleanOCR(strings.Join(once, "\n"))
	assert.Equal(t, once, twice)
}

func TestCleanOCR_PositionsBeyondFormatUntouched(t *testing.T) {
	// 44-char lines classify as TD3; trailing characters past column 44
	// are outside the declared format and must pass through unchanged.
	long := strings.Repeat("P", 44) + "extrachars"
	lines := mrz.CleanOCR(long + "\n" + strings.Repeat("<", 44))
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "extrachars"))
}
