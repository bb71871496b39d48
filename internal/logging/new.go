package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	FormatJSON    = "json"
	FormatText    = "text"
	FormatConsole = "console"
)

// Options selects the logging backend.
type Options struct {
	// Format is one of FormatJSON (default), FormatText or FormatConsole.
	Format string
	// Level is debug, info, warn or error. Defaults to info.
	Level string
	// Service is attached to every record as "service".
	Service string
	// Output defaults to os.Stdout.
	Output io.Writer
}

// New builds a Logger for opts. json and text use log/slog; console uses
// zerolog's human-readable writer.
func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	switch strings.ToLower(opts.Format) {
	case FormatConsole:
		zl := zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05.000"}).
			Level(zerologLevel(opts.Level)).
			With().Timestamp().Logger()
		l := NewZerologLogger(zl)
		if opts.Service != "" {
			return l.With("service", opts.Service)
		}
		return l
	case FormatText:
		return withService(NewSlogLogger(slog.New(slog.NewTextHandler(out, handlerOptions(opts.Level)))), opts.Service)
	default:
		return withService(NewSlogLogger(slog.New(slog.NewJSONHandler(out, handlerOptions(opts.Level)))), opts.Service)
	}
}

func withService(l Logger, service string) Logger {
	if service == "" {
		return l
	}
	return l.With("service", service)
}

func handlerOptions(level string) *slog.HandlerOptions {
	return &slog.HandlerOptions{Level: slogLevel(level)}
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zerologLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return l
}
