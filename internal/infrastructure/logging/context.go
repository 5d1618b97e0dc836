package logging

import (
	"context"

	"github.com/alexisbeaulieu97/tealert/internal/ports"
)

// WithCorrelationID stores id in ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return ports.WithCorrelationID(ctx, id)
}

// GetCorrelationID returns the correlation ID in ctx, or "".
func GetCorrelationID(ctx context.Context) string {
	return ports.GetCorrelationID(ctx)
}

// NewCorrelatedContext returns ctx carrying a freshly generated correlation ID.
func NewCorrelatedContext(ctx context.Context) context.Context {
	return ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
}
