package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/boggle-go/internal/services/session"
	"github.com/mcoot/boggle-go/internal/web/middleware"
	"github.com/mcoot/boggle-go/internal/web/templates"
)

// HomeHandler serves the game page
type HomeHandler struct {
	sessionController session.ControllerInterface
	gameSeconds       int
	logger            *slog.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(sessionController session.ControllerInterface, gameSeconds int, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		sessionController: sessionController,
		gameSeconds:       gameSeconds,
		logger:            logger,
	}
}

// Home deals a fresh board and renders the game page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetSessionID(r.Context())

	sess, err := h.sessionController.Start(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to start game", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := templates.HomeData{
		PageData:    templates.PageData{Title: "Play"},
		Board:       sess.Board,
		Stats:       sess.Stats,
		GameSeconds: h.gameSeconds,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Home(data).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", slog.String("error", err.Error()))
	}
}
