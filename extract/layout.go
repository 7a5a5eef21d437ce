package extract

import "strings"

// findAnchor returns the index of the first line containing both "INCOME"
// and "TAX" regardless of casing, or -1 when no line qualifies. The header
// often reaches OCR mangled ("INCOMETAX", "INCOME-TAX DEPT"), so the two
// tokens are matched independently rather than as one phrase.
func findAnchor(t *transcript) int {
	for i, ln := range t.lines {
		if strings.Contains(ln.upper, "INCOME") && strings.Contains(ln.upper, "TAX") {
			return i
		}
	}
	return -1
}

// layoutFields is the layout layer. On a standard card the holder's name
// is printed directly under the department header and the father's name
// under that, so the two lines after the anchor are proposed verbatim in
// their original casing. Out-of-bounds offsets simply propose nothing.
func layoutFields(t *transcript) fields {
	var f fields
	anchor := findAnchor(t)
	if anchor < 0 {
		return f
	}
	if anchor+1 < len(t.lines) {
		name := t.lines[anchor+1].text
		f.name = &name
	}
	if anchor+2 < len(t.lines) {
		father := t.lines[anchor+2].text
		f.fatherName = &father
	}
	return f
}
