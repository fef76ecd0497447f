package middleware

import (
	"context"

	"github.com/mcoot/triviaquiz/internal/model"
)

type contextKey string

const clientIDKey contextKey = "client_id"

// WithClientID returns a context carrying the client id
func WithClientID(ctx context.Context, clientID model.ClientID) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}

// ClientIDFromContext returns the client id set by the client middleware, or ""
func ClientIDFromContext(ctx context.Context) model.ClientID {
	clientID, _ := ctx.Value(clientIDKey).(model.ClientID)
	return clientID
}
