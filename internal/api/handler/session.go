package handler

import (
	"net/http"

	"github.com/mcoot/boggle-go/internal/api/response"
	"github.com/mcoot/boggle-go/internal/services/auth"
	"github.com/mcoot/boggle-go/internal/services/session"
)

// SessionHandler handles session creation
type SessionHandler struct {
	authService       auth.ServiceInterface
	sessionController session.ControllerInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(authService auth.ServiceInterface, sessionController session.ControllerInterface) *SessionHandler {
	return &SessionHandler{
		authService:       authService,
		sessionController: sessionController,
	}
}

// Create handles POST /api/v1/sessions
// Issues a token and deals the first board.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	token, id := h.authService.IssueToken()

	sess, err := h.sessionController.Start(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Session{
		SessionToken: token,
		Board:        response.BoardFromModel(sess.Board),
		Stats:        response.StatsFromModel(sess.Stats),
	})
}
