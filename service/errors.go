package service

import "errors"

var (
	// ErrUnsupportedInput is returned when the input file is neither a
	// decodable raster image nor a PDF.
	ErrUnsupportedInput = errors.New("unsupported input: expected a card image (PNG, JPEG, TIFF, BMP) or PDF")

	// ErrEmptyPDF is returned when a PDF carries no usable text layer and
	// no extractable page images.
	ErrEmptyPDF = errors.New("pdf contains no text layer and no page images")

	// ErrAllPagesFailed is returned when every page image of a scanned
	// PDF failed recognition.
	ErrAllPagesFailed = errors.New("ocr failed on every page image")
)
