// Package cmd wires the command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PunitTak2005/pan-card-ocr-extraction/client"
	"github.com/PunitTak2005/pan-card-ocr-extraction/config"
	"github.com/PunitTak2005/pan-card-ocr-extraction/service"
)

var rootCmd = &cobra.Command{
	Use:   "pancard",
	Short: "Extract structured fields from Indian PAN card scans",
	Long: `pancard pulls the holder's name, the father's name and the PAN number
out of PAN card images, e-PAN PDFs and saved OCR transcripts.

Recognition runs locally through Tesseract; nothing leaves the machine.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newPANService() *service.PANService {
	cfg := config.LoadConfig()
	tesseract := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguage)
	return service.NewPANService(tesseract, service.NewPDFProcessor())
}
