package mrz

import (
	"strings"
	"time"
)

const blankPersonalNumber = "<<<<<<<<<<<<<<"

func extractTD1(lines []string, layout Layout) *Document {
	a := padLine(lines[0], 30)
	b := padLine(lines[1], 30)
	c := padLine(lines[2], 30)

	data := &TD1Fields{
		CommonFields: CommonFields{
			Type:                a[0:2],
			Country:             a[2:5],
			Number:              layout.TD1Number.slice(a),
			CheckNumber:         string(a[14]),
			DateOfBirth:         b[0:6],
			CheckDateOfBirth:    string(b[6]),
			Sex:                 string(b[7]),
			ExpirationDate:      b[8:14],
			CheckExpirationDate: string(b[14]),
			Nationality:         b[15:18],
		},
		Optional1:      a[15:30],
		Optional2:      b[18:29],
		CheckComposite: string(b[29]),
	}
	data.Surname, data.Names = splitName(c)

	checkDigits := []bool{
		ComputeCheckDigit(data.Number) == data.CheckNumber,
		ComputeCheckDigit(data.DateOfBirth) == data.CheckDateOfBirth && validDate(data.DateOfBirth),
		ComputeCheckDigit(data.ExpirationDate) == data.CheckExpirationDate && validDate(data.ExpirationDate),
		ComputeCheckDigit(a[5:30]+b[0:7]+b[8:15]+b[18:29]) == data.CheckComposite,
	}
	lineLengths := []bool{len(lines[0]) == 30, len(lines[1]) == 30, len(lines[2]) == 30}
	misc := []bool{strings.IndexByte(FormatTD1.leadChars(), a[0]) >= 0}
	return newDocument(FormatTD1, data, checkDigits, lineLengths, misc)
}

func extractTD2(lines []string, _ Layout) *Document {
	a := padLine(lines[0], 36)
	b := padLine(lines[1], 36)

	data := &TD2Fields{
		CommonFields: CommonFields{
			Type:                a[0:2],
			Country:             a[2:5],
			Number:              b[0:9],
			CheckNumber:         string(b[9]),
			DateOfBirth:         b[13:19],
			CheckDateOfBirth:    string(b[19]),
			Sex:                 string(b[20]),
			ExpirationDate:      b[21:27],
			CheckExpirationDate: string(b[27]),
			Nationality:         b[10:13],
		},
		Optional1:      b[28:35],
		CheckComposite: string(b[35]),
	}
	data.Surname, data.Names = splitName(a[5:36])

	checkDigits := []bool{
		ComputeCheckDigit(data.Number) == data.CheckNumber,
		ComputeCheckDigit(data.DateOfBirth) == data.CheckDateOfBirth && validDate(data.DateOfBirth),
		ComputeCheckDigit(data.ExpirationDate) == data.CheckExpirationDate && validDate(data.ExpirationDate),
		ComputeCheckDigit(b[0:10]+b[13:20]+b[21:35]) == data.CheckComposite,
	}
	lineLengths := []bool{len(lines[0]) == 36, len(lines[1]) == 36}
	misc := []bool{strings.IndexByte(FormatTD2.leadChars(), a[0]) >= 0}
	return newDocument(FormatTD2, data, checkDigits, lineLengths, misc)
}

func extractTD3(lines []string, _ Layout) *Document {
	a := padLine(lines[0], 44)
	b := padLine(lines[1], 44)

	data := &TD3Fields{
		CommonFields: CommonFields{
			Type:                a[0:2],
			Country:             a[2:5],
			Number:              b[0:9],
			CheckNumber:         string(b[9]),
			DateOfBirth:         b[13:19],
			CheckDateOfBirth:    string(b[19]),
			Sex:                 string(b[20]),
			ExpirationDate:      b[21:27],
			CheckExpirationDate: string(b[27]),
			Nationality:         b[10:13],
		},
		PersonalNumber:      b[28:42],
		CheckPersonalNumber: string(b[42]),
		CheckComposite:      string(b[43]),
	}
	data.Surname, data.Names = splitName(a[5:44])

	// The personal number is optional: an all-filler field with a '<' or '0'
	// check character still counts as valid.
	blank := (data.CheckPersonalNumber == "<" || data.CheckPersonalNumber == "0") &&
		data.PersonalNumber == blankPersonalNumber
	checkDigits := []bool{
		ComputeCheckDigit(data.Number) == data.CheckNumber,
		ComputeCheckDigit(data.DateOfBirth) == data.CheckDateOfBirth && validDate(data.DateOfBirth),
		ComputeCheckDigit(data.ExpirationDate) == data.CheckExpirationDate && validDate(data.ExpirationDate),
		ComputeCheckDigit(b[0:10]+b[13:20]+b[21:43]) == data.CheckComposite,
		blank || ComputeCheckDigit(data.PersonalNumber) == data.CheckPersonalNumber,
	}
	lineLengths := []bool{len(lines[0]) == 44, len(lines[1]) == 44}
	misc := []bool{strings.IndexByte(FormatTD3.leadChars(), a[0]) >= 0}
	return newDocument(FormatTD3, data, checkDigits, lineLengths, misc)
}

func extractMRV(format Format, lines []string, _ Layout) *Document {
	length := format.lineLength()
	a := padLine(lines[0], length)
	b := padLine(lines[1], length)

	data := &MRVFields{
		CommonFields: CommonFields{
			Type:                a[0:2],
			Country:             a[2:5],
			Number:              b[0:9],
			CheckNumber:         string(b[9]),
			DateOfBirth:         b[13:19],
			CheckDateOfBirth:    string(b[19]),
			Sex:                 string(b[20]),
			ExpirationDate:      b[21:27],
			CheckExpirationDate: string(b[27]),
			Nationality:         b[10:13],
		},
		Optional1: b[28:length],
	}
	data.Surname, data.Names = splitName(a[5:length])

	// Visas have no composite check digit, and their date fields are not
	// required to parse as calendar dates.
	checkDigits := []bool{
		ComputeCheckDigit(data.Number) == data.CheckNumber,
		ComputeCheckDigit(data.DateOfBirth) == data.CheckDateOfBirth,
		ComputeCheckDigit(data.ExpirationDate) == data.CheckExpirationDate,
	}
	lineLengths := []bool{len(lines[0]) == length, len(lines[1]) == length}
	misc := []bool{strings.IndexByte(format.leadChars(), a[0]) >= 0}
	return newDocument(format, data, checkDigits, lineLengths, misc)
}

// padLine extends a short line with filler characters so fixed-offset slicing
// cannot index out of bounds. Overlong lines are preserved, not truncated.
func padLine(line string, length int) string {
	if len(line) >= length {
		return line
	}
	return line + strings.Repeat("<", length-len(line))
}

// splitName divides a name section into surname and given names on the first
// '<<' separator. Fillers inside either part become single spaces.
func splitName(section string) (surname, names string) {
	surname = section
	if i := strings.Index(section, "<<"); i >= 0 {
		surname, names = section[:i], section[i+2:]
	}
	return cleanName(surname), cleanName(names)
}

func cleanName(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "<", " "))
}

// validDate reports whether a YYMMDD field is a real calendar date.
func validDate(yymmdd string) bool {
	_, err := time.Parse("060102", yymmdd)
	return err == nil
}
