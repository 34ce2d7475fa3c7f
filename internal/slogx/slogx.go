package slogx

import (
	"log/slog"
	"os"
	"strings"
)

// ParseLevel converts string (debug|info|warn|error) to slog.Level.
// Unknown strings fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewDefault creates a logger writing to stderr with the given level string.
func NewDefault(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}
