package logging

import (
	"context"
	"log/slog"

	"news-summarizer-client/internal/domain/ports"
)

// SLogger is an adapter around slog.Logger implementing ports.Logger.
type SLogger struct {
	logger *slog.Logger
}

var _ ports.Logger = (*SLogger)(nil)

// New creates a new SLogger. A nil logger discards everything.
func New(logger *slog.Logger) *SLogger {
	return &SLogger{logger: logger}
}

// Debug logs a diagnostic message.
func (l *SLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelDebug, msg, args...)
}

// Info logs an informational message.
func (l *SLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a recoverable problem.
func (l *SLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *SLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelError, msg, args...)
}

func (l *SLogger) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Log(ctx, level, msg, args...)
}
