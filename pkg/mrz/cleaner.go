package mrz

import "strings"

// Per-format, per-line, per-position character classes used for OCR repair:
//
//	a  alpha only
//	A  alpha or filler
//	n  numeric only
//	N  numeric or filler
//	*  unrestricted
var cleanupClasses = map[Format][]string{
	FormatTD1: {
		"a*" + strings.Repeat("A", 3) + strings.Repeat("*", 9) + "N" + strings.Repeat("*", 15),
		strings.Repeat("n", 7) + "A" + strings.Repeat("n", 7) + strings.Repeat("A", 3) + strings.Repeat("*", 11) + "n",
		strings.Repeat("A", 30),
	},
	FormatTD2: {
		"a" + strings.Repeat("A", 35),
		strings.Repeat("*", 9) + "n" + strings.Repeat("A", 3) + strings.Repeat("n", 7) + "A" + strings.Repeat("n", 7) + strings.Repeat("*", 7) + "n",
	},
	FormatTD3: {
		"a" + strings.Repeat("A", 43),
		strings.Repeat("*", 9) + "n" + strings.Repeat("A", 3) + strings.Repeat("n", 7) + "A" + strings.Repeat("n", 7) + strings.Repeat("*", 14) + "nn",
	},
	FormatMRVA: mrvCleanupClasses,
	FormatMRVB: mrvCleanupClasses,
}

var mrvCleanupClasses = []string{
	"a" + strings.Repeat("A", 43),
	strings.Repeat("*", 9) + "n" + strings.Repeat("A", 3) + strings.Repeat("n", 7) + "A" + strings.Repeat("n", 7) + strings.Repeat("*", 16),
}

// Characters OCR engines routinely confuse, by target class.
var (
	alphaFixes = map[byte]byte{
		'0': 'O', '1': 'I', '2': 'Z', '4': 'A', '5': 'S', '6': 'G', '8': 'B',
	}
	numericFixes = map[byte]byte{
		'B': '8', 'C': '0', 'D': '0', 'G': '6', 'I': '1', 'O': '0', 'Q': '0', 'S': '5', 'Z': '2',
	}
	classFixes = map[byte]map[byte]byte{
		'a': alphaFixes, 'A': alphaFixes,
		'n': numericFixes, 'N': numericFixes,
		'*': nil,
	}
)

// CleanOCR prepares raw OCR output for parsing. Spaces are stripped, the text
// is split on newlines, and noise lines are dropped (shorter than 20
// characters, unless they contain the '<<' filler sequence that legitimate
// short name lines end with). When the surviving lines classify to a known
// format, each character is uppercased and repaired against the format's
// position classes; otherwise the lines are returned as-is.
//
// The repair is a best-effort heuristic and never fails: characters without a
// correction entry pass through uppercased, and positions beyond the declared
// format length are left untouched. Applying CleanOCR to its own output
// yields the same lines.
func CleanOCR(text string) []string {
	lines := splitOCRLines(text)
	format := GuessFormat(lines)
	if format == FormatUnknown {
		return lines
	}
	for i := range lines {
		lines[i] = fixLine(lines[i], format, i)
	}
	return lines
}

func splitOCRLines(text string) []string {
	var kept []string
	for _, line := range strings.Split(strings.ReplaceAll(text, " ", ""), "\n") {
		if len(line) >= 20 || strings.Contains(line, "<<") {
			kept = append(kept, line)
		}
	}
	return kept
}

func fixLine(line string, format Format, lineIdx int) string {
	classes := cleanupClasses[format][lineIdx]
	repaired := []byte(line)
	for i := range repaired {
		if i >= len(classes) {
			break
		}
		c := upperASCII(repaired[i])
		if fixes := classFixes[classes[i]]; fixes != nil {
			if fixed, ok := fixes[c]; ok {
				c = fixed
			}
		}
		repaired[i] = c
	}
	return string(repaired)
}
