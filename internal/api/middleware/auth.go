package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mcoot/boggle-go/internal/api/apierr"
	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/services/auth"
)

type contextKey string

const sessionIDContextKey contextKey = "session_id"

// Auth creates authentication middleware.
// The bearer token is resolved to a session ID; the session itself may not exist yet.
func Auth(authService auth.ServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			id, err := authService.SessionID(token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// GetSessionID returns the authenticated session ID from the request context
func GetSessionID(ctx context.Context) (model.SessionID, bool) {
	id, ok := ctx.Value(sessionIDContextKey).(model.SessionID)
	return id, ok
}

// MustGetSessionID returns the authenticated session ID or panics
func MustGetSessionID(ctx context.Context) model.SessionID {
	id, ok := GetSessionID(ctx)
	if !ok {
		panic("no session in context - auth middleware not applied?")
	}
	return id
}
