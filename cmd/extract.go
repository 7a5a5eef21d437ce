package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/PunitTak2005/pan-card-ocr-extraction/dto"
	"github.com/PunitTak2005/pan-card-ocr-extraction/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract [card-file]",
	Short: "Extract name, father's name and PAN number from a card scan",
	Long: `Extract runs the full pipeline over a card image, an e-PAN PDF or a
saved OCR transcript (.txt) and prints the structured result as JSON.
Fields the pipeline could not recover come back as null.`,
	Example: `  # Photographed card
  pancard extract card.jpg

  # Protected e-PAN download (the password is usually the date of birth)
  pancard extract epan.pdf --password 01011990

  # Saved OCR transcript
  pancard extract transcript.txt

  # Pretty-print and write to a file
  pancard extract card.png --pretty --output result.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringP("output", "o", "", "write the JSON result to a file instead of stdout")
	extractCmd.Flags().Bool("pretty", false, "indent the JSON output")
	extractCmd.Flags().String("password", "", "user password for protected e-PAN PDFs")
	extractCmd.Flags().Int("timeout", 120, "processing timeout in seconds")
}

func runExtract(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	pretty, _ := cmd.Flags().GetBool("pretty")
	password, _ := cmd.Flags().GetString("password")
	timeout, _ := cmd.Flags().GetInt("timeout")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	result, err := newPANService().ExtractFromFile(ctx, args[0], password)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrMalformedTranscript):
			return fmt.Errorf("%s is not UTF-8 text", args[0])
		case errors.Is(err, context.DeadlineExceeded):
			return fmt.Errorf("processing exceeded %ds, retry with a higher --timeout", timeout)
		}
		return err
	}

	return writeResult(result, outputPath, pretty)
}

func writeResult(result *dto.ExtractionResult, outputPath string, pretty bool) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	data = append(data, '\n')

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}
