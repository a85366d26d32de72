package mrz

// invalidChar is the value assigned to characters outside the MRZ alphabet.
// It is large enough that a single occurrence drives the weighted sum
// negative for any realistic field width.
const invalidChar = -1000

var checkDigitWeights = [3]int{7, 3, 1}

// checkDigitValues maps every byte to its ICAO 9303 numeric value:
// '0'-'9' to 0-9, 'A'-'Z' to 10-35, the filler '<' to 0.
var checkDigitValues = buildCheckDigitValues()

func buildCheckDigitValues() [256]int {
	var values [256]int
	for i := range values {
		values[i] = invalidChar
	}
	for c := byte('0'); c <= '9'; c++ {
		values[c] = int(c - '0')
	}
	for c := byte('A'); c <= 'Z'; c++ {
		values[c] = int(c-'A') + 10
	}
	values['<'] = 0
	return values
}

// ComputeCheckDigit returns the ICAO 9303 check digit for text as a single
// decimal digit character. The result is the empty string when text is empty
// or contains a character outside 0-9, A-Z, '<' (lowercase included). The
// same routine serves both per-field and composite checksum validation.
func ComputeCheckDigit(text string) string {
	if text == "" {
		return ""
	}
	sum := 0
	for i := 0; i < len(text); i++ {
		sum += checkDigitValues[text[i]] * checkDigitWeights[i%3]
	}
	if sum < 0 {
		return ""
	}
	return string(rune('0' + sum%10))
}
