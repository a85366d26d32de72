package mrz

// columnRange is a half-open [Start,End) byte range within an MRZ line.
type columnRange struct {
	Start, End int
}

func (r columnRange) slice(line string) string {
	return line[r.Start:r.End]
}

// Layout describes where an issuing country prints relocatable fields within
// each format. A country entry only overrides the ranges it relocates; every
// other field, the check-digit columns and the composite checksum input
// ranges stay at the ICAO 9303 standard positions. A relocated data field
// with a non-relocated check column is intentional, not an inconsistency.
type Layout struct {
	Country   string
	TD1Number columnRange
}

var defaultLayout = Layout{
	Country:   "default",
	TD1Number: columnRange{5, 14},
}

// countryLayouts maps issuing-country codes (line 1, columns 2-5) to their
// layout. The map is populated here once and never mutated; additional
// country variants are added as further entries.
var countryLayouts = map[string]Layout{
	// Spanish ID cards print the DNI number in the optional-data columns.
	// The check digit at column 14 refers to the relocated number.
	"ESP": {Country: "ESP", TD1Number: columnRange{15, 24}},
}

// layoutFor selects the layout registered for the country code embedded in
// the first MRZ line, falling back to the ICAO default when no entry exists
// or the line is too short to carry a code.
func layoutFor(line1 string) Layout {
	if len(line1) >= 5 {
		if layout, ok := countryLayouts[line1[2:5]]; ok {
			return layout
		}
	}
	return defaultLayout
}
