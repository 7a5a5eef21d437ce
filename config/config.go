package config

import (
	"os"
	"time"

	"github.com/PunitTak2005/pan-card-ocr-extraction/logger"
)

// Config carries everything the CLI wires at startup, sourced from the
// environment. A .env file in the working directory is loaded by main
// before this runs.
type Config struct {
	// TesseractDataPath overrides the tessdata directory. Empty keeps the
	// Tesseract installation default.
	TesseractDataPath string
	// OCRLanguage is the trained language passed to Tesseract.
	OCRLanguage string

	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// LoadConfig reads the configuration from the environment, falling back
// to defaults that work on a stock Tesseract install.
func LoadConfig() *Config {
	return &Config{
		TesseractDataPath: getEnv("TESSDATA_PREFIX", ""),
		OCRLanguage:       getEnv("OCR_LANGUAGE", "eng"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:     getEnv("LOG_TIME_FORMAT", time.RFC3339),
		LogOutput:         getEnv("LOG_OUTPUT", "stderr"),
	}
}

// GetLoggerConfig maps the logging keys onto the logger package's config.
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
