package main

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the CLI logger: human-readable console output on the
// command's error stream so result output on stdout stays clean.
func newLogger(cfg logConfig, out io.Writer) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    cfg.NoColor,
	}
	return zerolog.New(writer).
		Level(parseLevel(cfg.Level)).
		With().Timestamp().Str("app", "sift").
		Logger()
}

// parseLevel maps a config string to a zerolog level. Unrecognized values
// fall back to info rather than failing the run.
func parseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "", "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled
	}
	return zerolog.InfoLevel
}
