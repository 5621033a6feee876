package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dotse/slug"
	slogmulti "github.com/samber/slog-multi"
)

type Level string

const (
	Debug Level = "debug"
	Info  Level = "info"
	Warn  Level = "warn"
	Error Level = "error"
)

// ParseLevel accepts any casing, unknown values are an error.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case Debug, Info, Warn, Error:
		return l, nil
	default:
		return "", fmt.Errorf("unknown log level: %q", s)
	}
}

// ToSlogLevel maps our levels to the equivalent slog level.
func ToSlogLevel(level Level) slog.Level {
	switch level {
	case Debug:
		return slog.LevelDebug
	case Info:
		return slog.LevelInfo
	case Warn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// NewLogger builds a logger writing to every given writer.
func NewLogger(level Level, writers ...io.Writer) *slog.Logger {
	opts := slug.HandlerOptions{
		HandlerOptions: slog.HandlerOptions{
			Level: ToSlogLevel(level),
		},
	}

	handlers := make([]slog.Handler, 0, len(writers))
	for _, w := range writers {
		handlers = append(handlers, slug.NewHandler(opts, w))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

// MustCreateLogger configures the default global logger. Logs always go to
// stderr, and also to logPath when it is set.
//
// Returns a cleanup function which should be called on program shutdown.
//
// Panics on failure to open the log file for writing.
func MustCreateLogger(logPath string, level Level) func() {
	closer := func() {}
	writers := []io.Writer{os.Stderr}

	if logPath != "" {
		logFile, err := os.Create(logPath)
		if err != nil {
			panic(fmt.Sprintf("failed to open logfile: %v", err))
		}

		closer = func() {
			if err := logFile.Close(); err != nil {
				panic(fmt.Sprintf("failed to close log file: %v", err))
			}
		}
		writers = append(writers, logFile)
	}

	slog.SetDefault(NewLogger(level, writers...))
	return closer
}
