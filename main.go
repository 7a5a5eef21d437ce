package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/PunitTak2005/pan-card-ocr-extraction/cmd"
	"github.com/PunitTak2005/pan-card-ocr-extraction/config"
	"github.com/PunitTak2005/pan-card-ocr-extraction/logger"
)

func main() {
	// A missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cmd.Execute()
}
