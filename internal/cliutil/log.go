package cliutil

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w. It logs warnings and above,
// or everything with verbose set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetupLogging installs NewLogger(w, verbose) as the default logger.
func SetupLogging(w io.Writer, verbose bool) {
	slog.SetDefault(NewLogger(w, verbose))
}
