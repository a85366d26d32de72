package mrz

// validityScore folds the three validity vectors into an integer score
// between 0 and 100. A check digit weighs ten times a line-length or
// miscellaneous check. The trailing +1 in both terms is a fixed baseline
// present for every format, so an otherwise all-failing document still
// scores above zero.
func validityScore(checkDigits, lineLengths, misc []bool) int {
	reached := 10*countTrue(checkDigits) + countTrue(lineLengths) + countTrue(misc) + 1
	ceiling := 10*len(checkDigits) + len(lineLengths) + len(misc) + 1
	return 100 * reached / ceiling
}

func countTrue(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
