package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/rs/zerolog"

	"github.com/PunitTak2005/pan-card-ocr-extraction/dto"
	"github.com/PunitTak2005/pan-card-ocr-extraction/extract"
	"github.com/PunitTak2005/pan-card-ocr-extraction/logger"
	"github.com/PunitTak2005/pan-card-ocr-extraction/preprocess"
)

// TextRecognizer is the OCR engine seam. client.TesseractClient satisfies
// it in production; tests substitute a canned transcript.
type TextRecognizer interface {
	Text(ctx context.Context, img image.Image) (string, error)
}

// minEmbeddedTextLen is the cutoff under which a PDF text layer is
// treated as junk (a few stray glyphs on an otherwise scanned page) and
// the page images are OCRed instead.
const minEmbeddedTextLen = 20

// PANService drives one card through ingestion, preprocessing,
// recognition and field extraction.
type PANService struct {
	recognizer   TextRecognizer
	pdfProcessor PDFProcessor
	log          zerolog.Logger
}

func NewPANService(recognizer TextRecognizer, pdfProcessor PDFProcessor) *PANService {
	return &PANService{
		recognizer:   recognizer,
		pdfProcessor: pdfProcessor,
		log:          logger.WithComponent("pan-service"),
	}
}

// ExtractFromFile reads a card scan from disk and runs the extraction
// pipeline. PDFs are routed through the text-layer-or-page-images flow,
// .txt files are treated as saved OCR transcripts, and everything else
// must decode as a raster image. The password only matters for protected
// e-PAN PDFs.
func (s *PANService) ExtractFromFile(ctx context.Context, path, password string) (*dto.ExtractionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return s.ExtractFromPDF(ctx, data, password)
	case ".txt":
		return s.ExtractFromTranscript(string(data))
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedInput, err)
	}
	return s.ExtractFromImage(ctx, img)
}

// ExtractFromTranscript runs the extraction layers over an already
// recognized transcript, skipping preprocessing and OCR entirely.
func (s *PANService) ExtractFromTranscript(raw string) (*dto.ExtractionResult, error) {
	result, err := extract.Fields(raw)
	if err != nil {
		return nil, err
	}
	s.logOutcome(&result)
	return &result, nil
}

// ExtractFromImage runs the photographed-card flow: QR probe on the
// original frame, OCR over the preprocessed frame, then the layered
// field extraction seeded with any QR hit.
func (s *PANService) ExtractFromImage(ctx context.Context, img image.Image) (*dto.ExtractionResult, error) {
	seed := s.probeQR(img)

	text, err := s.recognizer.Text(ctx, preprocess.ForOCR(img))
	if err != nil {
		return nil, fmt.Errorf("OCR extraction failed: %w", err)
	}

	result, err := extract.FieldsWithSeed(text, seed)
	if err != nil {
		return nil, err
	}
	s.logOutcome(&result)
	return &result, nil
}

// ExtractFromPDF prefers the embedded text layer and falls back to OCR
// over the page images when the layer is missing or too thin to be a
// real transcript.
func (s *PANService) ExtractFromPDF(ctx context.Context, pdfData []byte, password string) (*dto.ExtractionResult, error) {
	text, err := s.pdfProcessor.ExtractText(pdfData, password)
	if err != nil {
		s.log.Warn().Err(err).Msg("pdf text extraction failed, trying page images")
	}

	if len(strings.TrimSpace(text)) >= minEmbeddedTextLen {
		result, err := extract.Fields(text)
		if err != nil {
			return nil, err
		}
		s.logOutcome(&result)
		return &result, nil
	}

	images, err := s.pdfProcessor.ExtractImages(pdfData, password)
	if err != nil {
		return nil, fmt.Errorf("failed to extract images from PDF: %w", err)
	}
	if len(images) == 0 {
		return nil, ErrEmptyPDF
	}

	var combined strings.Builder
	var seed dto.ExtractionResult
	recognized := 0
	for i, img := range images {
		if seed.PANNumber == nil {
			if qrSeed := s.probeQR(img); qrSeed.PANNumber != nil {
				seed = qrSeed
			}
		}

		pageText, err := s.recognizer.Text(ctx, preprocess.ForOCR(img))
		if err != nil {
			s.log.Warn().Err(err).Int("page", i+1).Msg("page ocr failed")
			continue
		}
		recognized++
		combined.WriteString(pageText)
		combined.WriteString("\n")
	}
	if recognized == 0 {
		return nil, fmt.Errorf("%w: %d page images", ErrAllPagesFailed, len(images))
	}

	result, err := extract.FieldsWithSeed(combined.String(), seed)
	if err != nil {
		return nil, err
	}
	s.logOutcome(&result)
	return &result, nil
}

// probeQR looks for the e-PAN QR code and pulls a PAN number out of its
// payload. Only a PAN-shaped token with a known holder-type code is
// trusted: the rest of the signed payload has no stable public layout.
// A miss returns an empty seed, never an error.
func (s *PANService) probeQR(img image.Image) dto.ExtractionResult {
	var seed dto.ExtractionResult

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return seed
	}

	qrResult, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		// Older cards have no QR code at all.
		return seed
	}

	for _, candidate := range extract.PANCandidates(qrResult.GetText()) {
		if extract.ValidHolderCode(candidate) {
			pan := candidate
			seed.PANNumber = &pan
			s.log.Info().Str("pan", pan).Msg("pan seeded from qr code")
			return seed
		}
	}
	return seed
}

func (s *PANService) logOutcome(result *dto.ExtractionResult) {
	s.log.Info().
		Bool("name", result.Name != nil).
		Bool("father_name", result.FatherName != nil).
		Bool("pan_number", result.PANNumber != nil).
		Msg("extraction completed")
}
