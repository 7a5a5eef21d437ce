package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/PunitTak2005/pan-card-ocr-extraction/client"
	"github.com/PunitTak2005/pan-card-ocr-extraction/config"
	"github.com/PunitTak2005/pan-card-ocr-extraction/logger"
	"github.com/PunitTak2005/pan-card-ocr-extraction/preprocess"
)

var transcriptCmd = &cobra.Command{
	Use:   "transcript [card-image]",
	Short: "Dump the raw OCR transcript for a card image",
	Long: `Transcript prints what Tesseract reads off a card image without any
field extraction. Useful for seeing why a particular card resists the
extract command before touching the header filters.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscript,
}

func init() {
	rootCmd.AddCommand(transcriptCmd)
	transcriptCmd.Flags().Bool("no-preprocess", false, "feed the image to Tesseract as-is")
}

func runTranscript(cmd *cobra.Command, args []string) error {
	noPreprocess, _ := cmd.Flags().GetBool("no-preprocess")

	cfg := config.LoadConfig()
	tesseract := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguage)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if noPreprocess {
		text, err := tesseract.TextFromFile(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	}

	img, err := imaging.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}

	text, confidence, err := tesseract.TextWithConfidence(ctx, preprocess.ForOCR(img))
	if err != nil {
		return err
	}

	fmt.Println(text)
	logger.WithComponent("transcript").Info().Float64("confidence", confidence).Msg("ocr completed")
	return nil
}
