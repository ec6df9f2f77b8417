package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// With returns a context carrying a child logger extended with fields.
// Chained calls accumulate fields.
func With(ctx context.Context, fields ...any) context.Context {
	return context.WithValue(ctx, ctxKey{}, From(ctx).With(fields...))
}

// From returns the logger carried by ctx, or the process default.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
