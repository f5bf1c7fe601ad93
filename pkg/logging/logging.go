// Package logging configures the process-wide log/slog logger.
//
// Text output goes through tint for coloured, human-friendly lines during
// development; JSON output is meant for log collectors.
//
//	logging.Setup("info", "text")
//	logging.Setup("debug", "json")
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

// Setup installs a default logger writing to stderr at the named level and format.
func Setup(level, format string) {
	slog.SetDefault(New(os.Stderr, ParseLevel(level), format))
}

// New returns a logger writing to w. format is "json" or anything else for tint text.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
		NoColor:    !isTerminal(w),
	}))
}

// ParseLevel maps debug, info, warn and error (any case) to a slog level.
// Unknown names fall back to INFO.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
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
