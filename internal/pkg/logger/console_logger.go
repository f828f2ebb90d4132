package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"
)

// ConsoleLogger is an implementation of Logger that logs to stdout.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a text console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(os.Stdout, level, config.LogFormatText)
}

// NewConsoleLoggerWithFormat creates a console logger emitting text or JSON records.
func NewConsoleLoggerWithFormat(level, format string) Logger {
	return newConsoleLogger(os.Stdout, level, format)
}

func newConsoleLogger(w io.Writer, level, format string) *ConsoleLogger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &ConsoleLogger{slogLogger{logger: slog.New(handler)}}
}
