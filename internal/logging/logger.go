// Package logging builds the application's zerolog logger from settings.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wyre/moviefinder/internal/config"
)

// ParseLevel maps a settings level name to a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New configures a logger writing to stderr
func New(cfg config.LoggingConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter configures a logger writing to out
func NewWithWriter(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level := ParseLevel(cfg.Level)

	if cfg.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
