package middleware

import (
	"context"
	"net/http"

	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/services/auth"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"

	// SessionCookie is the cookie holding the browser's session token
	SessionCookie = "session"
)

// GetSessionID retrieves the browser session ID from the request context
func GetSessionID(ctx context.Context) model.SessionID {
	id, _ := ctx.Value(sessionContextKey).(model.SessionID)
	return id
}

// Session returns middleware that attaches a session to every request.
// A missing or malformed cookie is replaced with a freshly issued token.
func Session(authService auth.ServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := sessionFromCookie(r, authService)
			if !ok {
				var token string
				token, id = authService.IssueToken()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromCookie(r *http.Request, authService auth.ServiceInterface) (model.SessionID, bool) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return "", false
	}

	id, err := authService.SessionID(cookie.Value)
	if err != nil {
		return "", false
	}

	return id, true
}
