package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// slogLogger adapts a *slog.Logger to Logger; console and file loggers embed it
type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) log(level slog.Level, args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Log(context.Background(), level, msg, attrs...)
}

// Debug logs a debug message.
func (l *slogLogger) Debug(args ...interface{}) { l.log(slog.LevelDebug, args...) }

// Info logs an informational message.
func (l *slogLogger) Info(args ...interface{}) { l.log(slog.LevelInfo, args...) }

// Warn logs a warning message.
func (l *slogLogger) Warn(args ...interface{}) { l.log(slog.LevelWarn, args...) }

// Error logs an error message.
func (l *slogLogger) Error(args ...interface{}) { l.log(slog.LevelError, args...) }

// Fatal logs an error message and exits.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.log(slog.LevelError, args...)
	os.Exit(1)
}

// Panic logs an error message and panics with it.
func (l *slogLogger) Panic(args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Error(msg, attrs...)
	panic(msg)
}

// splitArgs separates a leading message from trailing key/value pairs.
// Anything that is not "msg, key, value, ..." with string keys is concatenated.
func splitArgs(args ...interface{}) (string, []any) {
	if len(args) < 3 || len(args)%2 == 0 {
		return formatArgs(args...), nil
	}
	msg, ok := args[0].(string)
	if !ok {
		return formatArgs(args...), nil
	}
	for i := 1; i < len(args); i += 2 {
		if _, ok := args[i].(string); !ok {
			return formatArgs(args...), nil
		}
	}
	return msg, args[1:]
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
