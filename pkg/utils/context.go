package utils

import (
	"context"
)

type contextKey string

const (
	correlationKey contextKey = "correlation_id"

	CorrelationHeader = "X-Correlation-ID"
)

type correlation struct {
	id string
}

// WithCorrelationID threads id through ctx. The stored id stays replaceable
// with SetCorrelationID for the lifetime of the request.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey, &correlation{id: id})
}

// SetCorrelationID replaces the id threaded through ctx. It reports false
// when ctx carries none.
func SetCorrelationID(ctx context.Context, id string) bool {
	c, ok := ctx.Value(correlationKey).(*correlation)
	if !ok || id == "" {
		return false
	}
	c.id = id
	return true
}

func GetCorrelationID(ctx context.Context) (string, bool) {
	c, ok := ctx.Value(correlationKey).(*correlation)
	if !ok || c.id == "" {
		return "", false
	}
	return c.id, true
}
