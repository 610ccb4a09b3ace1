package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/boggle-go/internal/api/apierr"
	"github.com/mcoot/boggle-go/internal/api/handler"
	"github.com/mcoot/boggle-go/internal/api/middleware"
	"github.com/mcoot/boggle-go/internal/api/response"
	"github.com/mcoot/boggle-go/internal/services/auth"
	"github.com/mcoot/boggle-go/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	AuthService       auth.ServiceInterface
	SessionController session.ControllerInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.AuthService, cfg.SessionController)
	gameHandler := handler.NewGameHandler(cfg.SessionController)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(loggingMiddleware)
	api.Use(recoveryMiddleware)
	api.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	// Public routes
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)

	// Session routes
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/game", gameHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/game", gameHandler.Start).Methods(http.MethodPost)
	protected.HandleFunc("/game/guesses", gameHandler.Guess).Methods(http.MethodPost)
	protected.HandleFunc("/game/score", gameHandler.Score).Methods(http.MethodPost)
	protected.HandleFunc("/stats", gameHandler.GetStats).Methods(http.MethodGet)
	protected.HandleFunc("/stats", gameHandler.UpdateStats).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	apierr.WriteError(w, apierr.NewNotFoundError())
}
