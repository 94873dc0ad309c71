// Package logging builds the process logger: a log/slog front end over a
// zerolog writer.
//
// Library packages log through log/slog only. Commands call Setup once to
// route the default slog logger through zerolog.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// New returns a logger writing to w at the given zerolog level name.
// Format "json" writes one JSON object per line; anything else writes
// human-readable console lines.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	zlevel, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	out := w
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	}
	zl := zerolog.New(out).Level(zlevel).With().Timestamp().Logger()

	return slog.New(slogzerolog.Option{Level: slogLevel(zlevel), Logger: &zl}.NewZerologHandler()), nil
}

// Setup builds a logger with New and installs it as the slog default.
func Setup(w io.Writer, level, format string) (*slog.Logger, error) {
	logger, err := New(w, level, format)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

func parseLevel(level string) (zerolog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "" {
		return zerolog.WarnLevel, nil
	}
	if name == "warning" {
		name = "warn"
	}
	zlevel, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if zlevel == zerolog.NoLevel {
		return zerolog.WarnLevel, nil
	}
	return zlevel, nil
}

func slogLevel(l zerolog.Level) slog.Level {
	switch {
	case l <= zerolog.DebugLevel:
		return slog.LevelDebug
	case l == zerolog.InfoLevel:
		return slog.LevelInfo
	case l == zerolog.WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
