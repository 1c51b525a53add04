package ports

import "context"

// Logger is an abstract structured logger so the domain stays decoupled from
// the concrete logging backend.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}
