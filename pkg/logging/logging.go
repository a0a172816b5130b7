// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup(os.Stderr)                          // level from LOG_LEVEL env
//	logging.SetupWithLevel(os.Stderr, slog.LevelDebug) // explicit level override
//	logging.Discard()                                 // drop everything
//
// Color is only emitted when the destination is a terminal.
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Setup configures logging to w at the level specified by the LOG_LEVEL env
// var (default: INFO).
func Setup(w io.Writer) {
	SetupWithLevel(w, LevelFromEnv())
}

// SetupWithLevel configures logging to w at the given level.
func SetupWithLevel(w io.Writer, level slog.Level) {
	slog.SetDefault(New(w, level))
}

// New returns a tint logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
			NoColor:    !isTerminal(w),
		}),
	)
}

// Discard installs a default logger that drops every record.
func Discard() {
	slog.SetDefault(slog.New(slog.DiscardHandler))
}

// LevelFromEnv reads LOG_LEVEL.
func LevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
