// Package logging configures the application logger
package logging

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/mapty/internal/apperr"
)

var errUnknownLevel = &apperr.Error{
	Message: "unknown log level: %s",
}

// ParseLevel converts a level name from the config file into a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return level, errUnknownLevel.Fmt(s)
	}

	return level, nil
}

// New returns a JSON logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Setup creates a logger that writes to a size-rotated file at path and
// installs it as the default logger. The returned closer releases the file.
func Setup(path string, level slog.Level) (*slog.Logger, io.Closer) {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	logger := New(w, level)

	slog.SetDefault(logger)

	return logger, w
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError)
}
