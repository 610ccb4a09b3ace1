package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mcoot/boggle-go/internal/api/apierr"
	"github.com/mcoot/boggle-go/internal/middleware"
)

// Recovery creates panic recovery middleware for the browser surface.
// JSON endpoints get the API error envelope, pages get an HTML error page.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, r *http.Request, _ any) {
	if wantsJSON(r) {
		apierr.WriteError(w, apierr.NewInternalError())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Error</title></head>
<body>
<h1>Internal Server Error</h1>
<p>Something went wrong. Please try again later.</p>
<p><a href="/">Start a new game</a></p>
</body>
</html>`))
}

func wantsJSON(r *http.Request) bool {
	return r.Method != http.MethodGet || r.URL.Path == "/board" ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}
