package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"confluence-poster/internal/domain/ports"
)

// SLogger is an adapter around slog.Logger implementing ports.Logger.
type SLogger struct {
	logger *slog.Logger
}

var _ ports.Logger = (*SLogger)(nil)

// New creates a new SLogger.
func New(logger *slog.Logger) *SLogger {
	return &SLogger{logger: logger}
}

// NewText builds a text-handler slog.Logger writing to w at the given level name.
func NewText(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler)
}

// ParseLevel maps a level name such as "DEBUG", "warning" or "CRITICAL" to a
// slog.Level.
// Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	name = strings.ToUpper(strings.TrimSpace(name))
	switch name {
	case "WARNING":
		name = "WARN"
	case "CRITICAL", "FATAL":
		name = "ERROR"
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Debug logs a diagnostic message.
func (l *SLogger) Debug(ctx context.Context, msg string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Log(ctx, slog.LevelDebug, msg, args...)
}

// Info logs an informational message.
func (l *SLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Log(ctx, slog.LevelInfo, msg, args...)
}

// Error logs an error message.
func (l *SLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Log(ctx, slog.LevelError, msg, args...)
}
