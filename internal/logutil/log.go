package logutil

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type (
	ctxKey struct{}
)

// WithLogger binds a logger to the context so request handlers down the
// line all log with the same fields.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// GetOrDefault returns the logger bound to ctx, or the process-wide
// default when none was bound.
func GetOrDefault(ctx context.Context) zerolog.Logger {
	v := ctx.Value(ctxKey{})
	if v == nil {
		return log.Logger
	}
	return v.(zerolog.Logger)
}
