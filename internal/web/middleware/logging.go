package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/boggle-go/internal/middleware"
)

// Logging creates logging middleware for the browser surface
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("surface", "web")))
}
