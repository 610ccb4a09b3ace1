package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/boggle-go/internal/api/apierr"
	"github.com/mcoot/boggle-go/internal/api/request"
	"github.com/mcoot/boggle-go/internal/api/response"
	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/services/session"
	"github.com/mcoot/boggle-go/internal/web/middleware"
)

// GameHandler serves the JSON endpoints called by the game page
type GameHandler struct {
	sessionController session.ControllerInterface
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(sessionController session.ControllerInterface) *GameHandler {
	return &GameHandler{
		sessionController: sessionController,
	}
}

// BoardResponse is the body of GET /board
type BoardResponse struct {
	Board [][]string `json:"board"`
}

// GuessResponse is the body of POST /submit-guess
type GuessResponse struct {
	Result model.ValidationResult `json:"result"`
}

// ScoreResponse is the body of POST /score. The key matches what the page script reads.
type ScoreResponse struct {
	CurrentScore json.RawMessage `json:"Current Score:"`
}

// Board handles GET /board
func (h *GameHandler) Board(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetSessionID(r.Context())

	sess, err := h.sessionController.Get(r.Context(), id)
	if errors.Is(err, model.ErrSessionNotFound) || (err == nil && sess.Board == nil) {
		apierr.WriteError(w, model.ErrNoBoard)
		return
	}
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, BoardResponse{Board: sess.Board.Rows()})
}

// SubmitGuess handles POST /submit-guess
func (h *GameHandler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetSessionID(r.Context())

	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Guess == nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("guess is required"))
		return
	}

	result, err := h.sessionController.SubmitGuess(r.Context(), id, *req.Guess)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, GuessResponse{Result: result.Result})
}

// Score handles POST /score, echoing whatever score the page reports
func (h *GameHandler) Score(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetSessionID(r.Context())

	var req struct {
		Score json.RawMessage `json:"score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if len(req.Score) == 0 {
		apierr.WriteError(w, apierr.NewInvalidRequestError("score is required"))
		return
	}

	var score any
	_ = json.Unmarshal(req.Score, &score)
	h.sessionController.ReportScore(r.Context(), id, score)

	response.JSON(w, http.StatusOK, ScoreResponse{CurrentScore: req.Score})
}

// UpdateStats handles POST /update-stats
func (h *GameHandler) UpdateStats(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetSessionID(r.Context())

	var req request.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Score == nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("score is required"))
		return
	}

	stats, err := h.sessionController.UpdateStats(r.Context(), id, *req.Score)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatsFromModel(stats))
}
