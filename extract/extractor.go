// Package extract pulls the holder's name, the father's name and the PAN
// number out of a raw OCR transcript of an Indian PAN card. Three layers
// run in fixed priority order over a shared normalized view of the
// transcript: a format-validation scan for the PAN number, a layout pass
// keyed on the printed department header, and a looser heuristic pass
// that only ever fills fields the first two left empty.
package extract

import (
	"github.com/PunitTak2005/pan-card-ocr-extraction/dto"
)

// fields is one layer's proposal. Nil means the layer has nothing to
// offer for that field.
type fields struct {
	name       *string
	fatherName *string
	panNumber  *string
}

// layers run in priority order. merge fills only absent fields, so an
// earlier layer's value can never be displaced by a later one.
var layers = []func(*transcript) fields{
	scanPAN,
	layoutFields,
	heuristicFields,
}

// Fields runs the full extraction pipeline over one OCR transcript.
// Absent fields are the normal outcome for noisy input, not an error; the
// only failure is ErrMalformedTranscript for input that is not UTF-8
// text. The transcript itself is echoed back untouched in RawText.
func Fields(raw string) (dto.ExtractionResult, error) {
	return FieldsWithSeed(raw, dto.ExtractionResult{})
}

// FieldsWithSeed is Fields starting from a partially-filled record.
// Anything already set in the seed, for example a PAN number read off the
// card's QR code, outranks every transcript layer under the same
// fill-only-absent rule. The seed's RawText is ignored; the returned
// record always carries raw.
func FieldsWithSeed(raw string, seed dto.ExtractionResult) (dto.ExtractionResult, error) {
	t, err := newTranscript(raw)
	if err != nil {
		return dto.ExtractionResult{}, err
	}

	result := dto.ExtractionResult{
		Name:       seed.Name,
		FatherName: seed.FatherName,
		PANNumber:  seed.PANNumber,
		RawText:    raw,
	}
	for _, layer := range layers {
		merge(&result, layer(t))
	}
	return result, nil
}

// merge applies the fill-only-absent rule in one place so the layers stay
// overwrite-free by construction.
func merge(r *dto.ExtractionResult, f fields) {
	if r.Name == nil && f.name != nil {
		r.Name = f.name
	}
	if r.FatherName == nil && f.fatherName != nil {
		r.FatherName = f.fatherName
	}
	if r.PANNumber == nil && f.panNumber != nil {
		r.PANNumber = f.panNumber
	}
}
