package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// headerDenylist holds phrases that mark a line as card boilerplate rather
// than a person's name. Matching is contains-based on the uppercased line;
// extend the list when new header variants show up in the field.
var headerDenylist = []string{
	"INCOME TAX",
	"INCOMETAX",
	"GOVT OF INDIA",
	"GOVT. OF INDIA",
	"GOVERNMENT OF INDIA",
	"PERMANENT ACCOUNT",
	"DEPARTMENT",
	"DATE OF BIRTH",
	"FATHER'S NAME",
	"FATHERS NAME",
	"SIGNATURE",
	"INDIA",
}

const (
	minNameLineRunes = 4
	maxNameLineRunes = 40
)

// isNameCandidate reports whether a line plausibly holds a person's full
// name: at least two whitespace-separated tokens, a sane trimmed length,
// no boilerplate phrase and no digits. Dates and account numbers always
// carry digits, names never do.
func isNameCandidate(ln line) bool {
	if len(strings.Fields(ln.text)) < 2 {
		return false
	}
	n := utf8.RuneCountInString(ln.text)
	if n < minNameLineRunes || n > maxNameLineRunes {
		return false
	}
	for _, phrase := range headerDenylist {
		if strings.Contains(ln.upper, phrase) {
			return false
		}
	}
	for _, r := range ln.text {
		if unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// heuristicFields is the degradation path for transcripts where the
// header anchor never survived OCR. The first two lines that look like
// full names are proposed for name and father's name in that order.
// Precision is materially below the layout layer and the tuning above is
// expected to evolve with observed card traffic.
func heuristicFields(t *transcript) fields {
	var candidates []string
	for _, ln := range t.lines {
		if !isNameCandidate(ln) {
			continue
		}
		candidates = append(candidates, ln.text)
		if len(candidates) == 2 {
			break
		}
	}

	var f fields
	if len(candidates) > 0 {
		f.name = &candidates[0]
	}
	if len(candidates) > 1 {
		f.fatherName = &candidates[1]
	}
	return f
}
