package mrz

// Format identifies the MRZ layout of a document as defined by ICAO 9303.
type Format string

const (
	// FormatUnknown marks input that could not be classified.
	FormatUnknown Format = ""
	// FormatTD1 is the 3-line, 30-column ID card layout.
	FormatTD1 Format = "TD1"
	// FormatTD2 is the 2-line, 36-column ID card layout.
	FormatTD2 Format = "TD2"
	// FormatTD3 is the 2-line, 44-column passport layout.
	FormatTD3 Format = "TD3"
	// FormatMRVA is the 2-line, 44-column visa layout.
	FormatMRVA Format = "MRVA"
	// FormatMRVB is the 2-line, 36-column visa layout.
	FormatMRVB Format = "MRVB"
)

// lineLength returns the required column count per line.
func (f Format) lineLength() int {
	switch f {
	case FormatTD1:
		return 30
	case FormatTD2, FormatMRVB:
		return 36
	case FormatTD3, FormatMRVA:
		return 44
	}
	return 0
}

// leadChars returns the characters a document of this format may start with.
func (f Format) leadChars() string {
	switch f {
	case FormatTD1, FormatTD2:
		return "IAC"
	case FormatTD3:
		return "P"
	case FormatMRVA, FormatMRVB:
		return "V"
	}
	return ""
}

// GuessFormat classifies MRZ lines by their count, length and leading
// character. Input that fits no layout yields FormatUnknown.
func GuessFormat(lines []string) Format {
	switch len(lines) {
	case 3:
		return FormatTD1
	case 2:
		if len(lines[0]) == 0 {
			return FormatUnknown
		}
		visa := upperASCII(lines[0][0]) == 'V'
		if len(lines[0]) < 40 && len(lines[1]) < 40 {
			if visa {
				return FormatMRVB
			}
			return FormatTD2
		}
		if visa {
			return FormatMRVA
		}
		return FormatTD3
	}
	return FormatUnknown
}

func upperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
