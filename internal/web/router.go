package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/boggle-go/internal/services/auth"
	"github.com/mcoot/boggle-go/internal/services/session"
	"github.com/mcoot/boggle-go/internal/web/handler"
	"github.com/mcoot/boggle-go/internal/web/middleware"
	"github.com/mcoot/boggle-go/internal/web/static"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger            *slog.Logger
	AuthService       auth.ServiceInterface
	SessionController session.ControllerInterface
	GameSeconds       int    // Length of a browser game
	StaticDir         string // Serve static files from disk; empty uses the embedded assets
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	sessionMiddleware := middleware.Session(cfg.AuthService)

	// Apply global middleware to all routes
	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.SessionController, cfg.GameSeconds, cfg.Logger)
	gameHandler := handler.NewGameHandler(cfg.SessionController)

	// Static files
	var files http.Handler
	if cfg.StaticDir != "" {
		files = http.FileServer(http.Dir(cfg.StaticDir))
	} else {
		files = http.FileServerFS(static.FS)
	}
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", files))

	// Game routes
	game := r.NewRoute().Subrouter()
	game.Use(sessionMiddleware)
	game.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	game.HandleFunc("/board", gameHandler.Board).Methods(http.MethodGet)
	game.HandleFunc("/submit-guess", gameHandler.SubmitGuess).Methods(http.MethodPost)
	game.HandleFunc("/score", gameHandler.Score).Methods(http.MethodPost)
	game.HandleFunc("/update-stats", gameHandler.UpdateStats).Methods(http.MethodPost)

	return r
}
