package app

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// newLogger returns a structured JSON logger at the requested level.
// Unknown or empty values fall back to INFO; "silent" discards all output.
func newLogger(v string) *slog.Logger {
	var level slog.Level
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	case "SILENT":
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
