// Package mrz parses and validates the Machine-Readable Zone printed on
// identification documents: ID cards (TD1/TD2), passports (TD3) and visas
// (MRVA/MRVB) per ICAO 9303. It consumes already-segmented text lines or a
// raw newline-delimited OCR string; image handling and character recognition
// are the caller's concern.
package mrz

// Document is the parsed and validated MRZ of an identification document.
// All fields except Aux are computed at construction and never change.
//
// A document is always produced, even from unrecognizable input: parsing
// degrades to FormatUnknown with a zero score instead of returning an error.
// Check-digit mismatches and malformed dates are not failures either; they
// surface as false entries in the validity vectors and a score below 100.
type Document struct {
	Format Format
	// Data holds the extracted fields; nil when Format is FormatUnknown.
	Data FieldData
	// ValidCheckDigits has one entry per check digit in the format's order:
	// number, date of birth, expiration date, then composite (TD1/TD2/TD3)
	// and personal number (TD3).
	ValidCheckDigits []bool
	// ValidLineLengths records, per input line, whether its original
	// pre-padding length matched the format.
	ValidLineLengths []bool
	// ValidMisc holds the leading-character sanity check.
	ValidMisc []bool
	// ValidScore is 0-100; Valid is true exactly when it reaches 100.
	ValidScore int
	Valid      bool
	// Aux carries caller-attached metadata, such as the source image region
	// or the extraction method. The parser never writes it and validation
	// ignores it; a "method" entry is surfaced by Fields.
	Aux map[string]any
}

// Parse classifies 2 or 3 pre-segmented MRZ lines, selects the issuing
// country's layout and extracts and validates every field. The input is not
// modified. See Document for the degradation contract.
func Parse(lines []string) *Document {
	format := GuessFormat(lines)
	if format == FormatUnknown {
		return degradedDocument()
	}
	layout := layoutFor(lines[0])
	switch format {
	case FormatTD1:
		return extractTD1(lines, layout)
	case FormatTD2:
		return extractTD2(lines, layout)
	case FormatTD3:
		return extractTD3(lines, layout)
	default:
		return extractMRV(format, lines, layout)
	}
}

// FromOCR cleans a raw OCR string with CleanOCR and parses the surviving
// lines.
func FromOCR(text string) *Document {
	return Parse(CleanOCR(text))
}

func newDocument(format Format, data FieldData, checkDigits, lineLengths, misc []bool) *Document {
	score := validityScore(checkDigits, lineLengths, misc)
	return &Document{
		Format:           format,
		Data:             data,
		ValidCheckDigits: checkDigits,
		ValidLineLengths: lineLengths,
		ValidMisc:        misc,
		ValidScore:       score,
		Valid:            score == 100,
		Aux:              map[string]any{},
	}
}

func degradedDocument() *Document {
	return &Document{
		Format: FormatUnknown,
		Aux:    map[string]any{},
	}
}

// Fields returns the canonical ordered key/value projection of the document.
// Keys that do not apply to the detected format are omitted; a degraded
// document carries only mrz_type and valid_score. A "method" entry from Aux,
// when present, is appended last.
func (d *Document) Fields() FieldList {
	var formatValue any
	if d.Format != FormatUnknown {
		formatValue = string(d.Format)
	}
	fields := FieldList{
		{"mrz_type", formatValue},
		{"valid_score", d.ValidScore},
	}
	if d.Data == nil {
		return fields
	}

	c := d.Data.common()
	fields = append(fields,
		Field{"type", c.Type},
		Field{"country", c.Country},
		Field{"number", c.Number},
		Field{"date_of_birth", c.DateOfBirth},
		Field{"expiration_date", c.ExpirationDate},
		Field{"nationality", c.Nationality},
		Field{"sex", c.Sex},
		Field{"names", c.Names},
		Field{"surname", c.Surname},
	)
	switch data := d.Data.(type) {
	case *TD1Fields:
		fields = append(fields, Field{"optional1", data.Optional1}, Field{"optional2", data.Optional2})
	case *TD2Fields:
		fields = append(fields, Field{"optional1", data.Optional1})
	case *MRVFields:
		fields = append(fields, Field{"optional1", data.Optional1})
	case *TD3Fields:
		fields = append(fields, Field{"personal_number", data.PersonalNumber})
	}
	fields = append(fields,
		Field{"check_number", c.CheckNumber},
		Field{"check_date_of_birth", c.CheckDateOfBirth},
		Field{"check_expiration_date", c.CheckExpirationDate},
	)
	switch data := d.Data.(type) {
	case *TD1Fields:
		fields = append(fields, Field{"check_composite", data.CheckComposite})
	case *TD2Fields:
		fields = append(fields, Field{"check_composite", data.CheckComposite})
	case *TD3Fields:
		fields = append(fields,
			Field{"check_composite", data.CheckComposite},
			Field{"check_personal_number", data.CheckPersonalNumber})
	}
	fields = append(fields,
		Field{"valid_number", d.ValidCheckDigits[0]},
		Field{"valid_date_of_birth", d.ValidCheckDigits[1]},
		Field{"valid_expiration_date", d.ValidCheckDigits[2]},
	)
	if len(d.ValidCheckDigits) > 3 {
		fields = append(fields, Field{"valid_composite", d.ValidCheckDigits[3]})
	}
	if len(d.ValidCheckDigits) > 4 {
		fields = append(fields, Field{"valid_personal_number", d.ValidCheckDigits[4]})
	}
	if method, ok := d.Aux["method"]; ok {
		fields = append(fields, Field{"method", method})
	}
	return fields
}
