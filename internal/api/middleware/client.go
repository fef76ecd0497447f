package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mcoot/triviaquiz/internal/api/apierr"
	"github.com/mcoot/triviaquiz/internal/middleware"
	"github.com/mcoot/triviaquiz/internal/model"
)

// ClientHeader carries the client id on API requests
const ClientHeader = "X-Client-ID"

// RequireClient rejects requests without a valid X-Client-ID header and
// stores the id in the request context
func RequireClient() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(ClientHeader))
			if raw == "" {
				apierr.WriteError(w, model.ErrClientRequired)
				return
			}
			id, err := uuid.Parse(raw)
			if err != nil {
				apierr.WriteError(w, apierr.NewInvalidRequestError("X-Client-ID must be a UUID"))
				return
			}

			ctx := middleware.WithClientID(r.Context(), model.ClientID(id.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MustGetClientID returns the client id or panics
func MustGetClientID(r *http.Request) model.ClientID {
	clientID := middleware.ClientIDFromContext(r.Context())
	if clientID == "" {
		panic("no client id in context - client middleware not applied?")
	}
	return clientID
}
