package middleware

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const ctxCartSession contextKey = "cart_session"

// CartSessionFromContext returns the session id minted or accepted by the
// CartSession middleware, or uuid.Nil outside of it.
func CartSessionFromContext(ctx context.Context) uuid.UUID {
	if ctx == nil {
		return uuid.Nil
	}
	if v, ok := ctx.Value(ctxCartSession).(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}

// WithCartSession injects the cart session id into the context for downstream
// handlers.
func WithCartSession(ctx context.Context, sessionID uuid.UUID) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxCartSession, sessionID)
}
