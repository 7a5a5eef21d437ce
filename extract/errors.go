package extract

import "errors"

// ErrMalformedTranscript is returned when the transcript is not valid
// UTF-8 text. This is the only fatal input condition: noise, control
// characters and empty input all degrade to absent fields instead.
var ErrMalformedTranscript = errors.New("transcript is not valid UTF-8 text")
