package client

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient wraps the gosseract bindings configured for a single
// left-aligned block of card text. A fresh gosseract client is created
// per call, so one TesseractClient is safe to share across goroutines.
type TesseractClient struct {
	dataPath string
	language string
}

// NewTesseractClient returns a client reading language data from dataPath.
// An empty dataPath leaves the Tesseract installation default in place.
func NewTesseractClient(dataPath, language string) *TesseractClient {
	return &TesseractClient{
		dataPath: dataPath,
		language: language,
	}
}

// Text recognizes an in-memory image.
func (tc *TesseractClient) Text(ctx context.Context, img image.Image) (string, error) {
	text, _, err := tc.recognizeImage(ctx, img)
	return text, err
}

// TextWithConfidence recognizes an in-memory image and reports the mean
// word confidence (0-100) alongside the text. Confidence is diagnostic
// only; a low score never suppresses the transcript.
func (tc *TesseractClient) TextWithConfidence(ctx context.Context, img image.Image) (string, float64, error) {
	return tc.recognizeImage(ctx, img)
}

// TextFromFile recognizes an image file on disk without decoding it
// first; Tesseract reads the file itself.
func (tc *TesseractClient) TextFromFile(ctx context.Context, filePath string) (string, error) {
	// gosseract blocks in cgo and cannot be interrupted midway, so the
	// context is honored at the call boundary.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := tc.configure(client); err != nil {
		return "", err
	}
	if err := client.SetImage(filePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	return text, nil
}

func (tc *TesseractClient) recognizeImage(ctx context.Context, img image.Image) (string, float64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", 0, fmt.Errorf("failed to encode image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := tc.configure(client); err != nil {
		return "", 0, err
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", 0, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("failed to extract text: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return text, 0, nil
	}
	var totalConf float64
	for _, box := range boxes {
		totalConf += box.Confidence
	}
	return text, totalConf / float64(len(boxes)), nil
}

func (tc *TesseractClient) configure(client *gosseract.Client) error {
	if tc.dataPath != "" {
		client.SetTessdataPrefix(tc.dataPath)
	}
	if err := client.SetLanguage(tc.language); err != nil {
		return fmt.Errorf("failed to set language: %w", err)
	}
	// The card is one uniform block of text; skipping full page-layout
	// analysis keeps Tesseract from scattering the short header lines.
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	return nil
}
