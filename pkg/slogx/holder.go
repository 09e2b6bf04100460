package slogx

import (
	"context"
	"log/slog"
)

type holderKey struct{}

// loggerHolder lets inner middleware hand an enriched logger back out to
// HTTPMiddleware once the request finishes.
type loggerHolder struct {
	logger *slog.Logger
}

func withHolder(ctx context.Context, h *loggerHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

// Promote records the context logger of ctx as the one HTTPMiddleware uses
// for the access log line.
func Promote(ctx context.Context) {
	if h, ok := ctx.Value(holderKey{}).(*loggerHolder); ok {
		h.logger = FromContext(ctx)
	}
}
