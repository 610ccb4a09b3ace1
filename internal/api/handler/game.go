package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/boggle-go/internal/api/middleware"
	"github.com/mcoot/boggle-go/internal/api/request"
	"github.com/mcoot/boggle-go/internal/api/response"
	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/services/session"
)

// GameHandler handles the current game and stats endpoints
type GameHandler struct {
	sessionController session.ControllerInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(sessionController session.ControllerInterface) *GameHandler {
	return &GameHandler{
		sessionController: sessionController,
	}
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetSessionID(r.Context())

	sess, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	if sess.Board == nil {
		WriteError(w, model.ErrNoBoard)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(sess))
}

// Start handles POST /api/v1/game
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetSessionID(r.Context())

	sess, err := h.sessionController.Start(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(sess))
}

// Guess handles POST /api/v1/game/guesses
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetSessionID(r.Context())

	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Guess == nil {
		WriteError(w, NewInvalidRequestError("guess is required"))
		return
	}

	result, err := h.sessionController.SubmitGuess(r.Context(), id, *req.Guess)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessFromResult(result))
}

// Score handles POST /api/v1/game/score
func (h *GameHandler) Score(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetSessionID(r.Context())

	score, err := decodeScore(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.sessionController.ReportScore(r.Context(), id, score)
	response.JSON(w, http.StatusOK, response.Score{CurrentScore: score})
}

// GetStats handles GET /api/v1/stats
// A session that has never played reports zeroes.
func (h *GameHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetSessionID(r.Context())

	sess, err := h.sessionController.Get(r.Context(), id)
	if errors.Is(err, model.ErrSessionNotFound) {
		response.JSON(w, http.StatusOK, response.Stats{})
		return
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatsFromModel(sess.Stats))
}

// UpdateStats handles POST /api/v1/stats
func (h *GameHandler) UpdateStats(w http.ResponseWriter, r *http.Request) {
	id := middleware.MustGetSessionID(r.Context())

	score, err := decodeScore(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	stats, err := h.sessionController.UpdateStats(r.Context(), id, score)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatsFromModel(stats))
}

// decodeScore reads a required, non-negative score from the request body
func decodeScore(r *http.Request) (int, error) {
	var req request.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return 0, NewInvalidRequestError("invalid request body")
	}
	if req.Score == nil {
		return 0, NewInvalidRequestError("score is required")
	}
	if *req.Score < 0 {
		return 0, model.ErrInvalidScore
	}
	return *req.Score, nil
}
