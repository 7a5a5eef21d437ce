package extract

import (
	"strings"
	"unicode/utf8"
)

// transcript is the line-oriented view of one OCR dump that every layer
// reads. Lines are trimmed and blank lines dropped; upper keeps the
// uppercased form used for matching while text preserves the original
// casing for output.
type transcript struct {
	raw   string
	lines []line
}

type line struct {
	text  string
	upper string
}

func newTranscript(raw string) (*transcript, error) {
	if !utf8.ValidString(raw) {
		return nil, ErrMalformedTranscript
	}

	t := &transcript{raw: raw}
	cleaned := strings.ReplaceAll(raw, "\r", "")
	for _, l := range strings.Split(cleaned, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		t.lines = append(t.lines, line{text: l, upper: strings.ToUpper(l)})
	}
	return t, nil
}
