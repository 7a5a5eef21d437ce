// Package logger owns the process-wide zerolog configuration.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogConfig controls the global logger set up once at startup.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error, fatal, panic.
	Level string
	// Format selects "console" for human-readable output or "json".
	Format string
	// TimeFormat is the timestamp layout for console output.
	TimeFormat string
	// Output selects "stderr" or "stdout". Diagnostics default to stderr
	// so piped JSON results on stdout stay machine-readable.
	Output string
}

// Setup configures the global zerolog logger. Call it once before any
// component loggers are created.
func Setup(cfg LogConfig) error {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = cfg.TimeFormat

	out := os.Stderr
	if cfg.Output == "stdout" {
		out = os.Stdout
	}

	var w io.Writer = out
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}

// WithComponent returns a child of the global logger tagged with the
// component name.
func WithComponent(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}
