package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mcoot/triviaquiz/internal/middleware"
	"github.com/mcoot/triviaquiz/internal/model"
)

type contextKey string

const (
	// ClientCookieName identifies the browser across visits
	ClientCookieName = "client"
	clientCookieAge  = 365 * 24 * 60 * 60
)

// Client makes sure every browser has a client id, issuing a new cookie when
// the existing one is missing or invalid
func Client() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var clientID string
			if cookie, err := r.Cookie(ClientCookieName); err == nil {
				if id, err := uuid.Parse(cookie.Value); err == nil {
					clientID = id.String()
				}
			}

			if clientID == "" {
				clientID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     ClientCookieName,
					Value:    clientID,
					Path:     "/",
					MaxAge:   clientCookieAge,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := middleware.WithClientID(r.Context(), model.ClientID(clientID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientID returns the client id set by the Client middleware
func GetClientID(r *http.Request) model.ClientID {
	return middleware.ClientIDFromContext(r.Context())
}
