package dto

// ExtractionResult is the structured record produced by one extraction run
// over a single OCR transcript. The three card fields are pointers so a
// field the pipeline could not recover serializes as JSON null rather than
// as an empty string; RawText always carries the input transcript verbatim.
type ExtractionResult struct {
	Name       *string `json:"name"`
	FatherName *string `json:"father_name"`
	PANNumber  *string `json:"pan_number"`
	RawText    string  `json:"raw_text"`
}
