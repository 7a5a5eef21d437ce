package extract

import (
	"regexp"
	"strings"
)

// panPattern matches a PAN-shaped token anywhere in free text: five
// letters, four digits, one letter. It is deliberately unanchored since
// OCR output embeds the number between arbitrary noise.
var panPattern = regexp.MustCompile(`[A-Z]{5}[0-9]{4}[A-Z]`)

var panExact = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// holderTypeCategories maps the 4th character of a PAN to the issued
// holder category it encodes. Membership doubles as the holder-type-code
// validity check; extend here if a new category is ever issued.
var holderTypeCategories = map[byte]string{
	'A': "association of persons",
	'B': "body of individuals",
	'C': "company",
	'F': "firm",
	'G': "government",
	'H': "Hindu undivided family",
	'J': "artificial juridical person",
	'L': "local authority",
	'P': "individual",
	'T': "trust",
}

// PANCandidates returns every non-overlapping PAN-shaped token in text in
// order of first appearance. The text is uppercased before scanning, so
// tokens come back case-normalized.
func PANCandidates(text string) []string {
	return panPattern.FindAllString(strings.ToUpper(text), -1)
}

// ValidPANFormat reports whether token is exactly one PAN-shaped token,
// ignoring case.
func ValidPANFormat(token string) bool {
	return panExact.MatchString(strings.ToUpper(token))
}

// ValidHolderCode reports whether the 4th character of a PAN-shaped token
// is a known holder-type code. The code is a confidence signal layered on
// top of the shape check, not a replacement for it.
func ValidHolderCode(token string) bool {
	if !ValidPANFormat(token) {
		return false
	}
	_, ok := holderTypeCategories[strings.ToUpper(token)[3]]
	return ok
}

// HolderCategory returns the holder category encoded in a PAN-shaped
// token, or false when the token is malformed or carries an unknown code.
func HolderCategory(token string) (string, bool) {
	if !ValidPANFormat(token) {
		return "", false
	}
	category, ok := holderTypeCategories[strings.ToUpper(token)[3]]
	return category, ok
}

// scanPAN is the validation layer. It proposes the best PAN-shaped token
// in the transcript, preferring the first candidate whose holder-type
// code is a known category and falling back to the first candidate found
// at all.
func scanPAN(t *transcript) fields {
	candidates := PANCandidates(t.raw)
	if len(candidates) == 0 {
		return fields{}
	}
	for _, c := range candidates {
		if ValidHolderCode(c) {
			pan := c
			return fields{panNumber: &pan}
		}
	}
	pan := candidates[0]
	return fields{panNumber: &pan}
}
