package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/boggle-go/internal/dependencies/clock"
	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/services/board"
	"github.com/mcoot/boggle-go/internal/services/scoring"
	"github.com/mcoot/boggle-go/internal/services/stats"
	"github.com/mcoot/boggle-go/internal/services/validation"
	"github.com/mcoot/boggle-go/internal/storage"
)

// GuessResult is the outcome of a submitted guess against the session's board
type GuessResult struct {
	validation.Outcome
	Score     int  // Running score for the current board after this guess
	Duplicate bool // Word was already found on this board; nothing was added
}

// Controller manages per-player session state: the current board,
// its running score, and the stats kept across games
type Controller struct {
	storage    storage.Storage
	boards     board.ServiceInterface
	validation validation.ServiceInterface
	clock      clock.Clock
	logger     *slog.Logger
	boardSize  int
}

// NewController creates a new SessionController
func NewController(
	storage storage.Storage,
	boards board.ServiceInterface,
	validation validation.ServiceInterface,
	clock clock.Clock,
	logger *slog.Logger,
	boardSize int,
) *Controller {
	if boardSize < 1 {
		boardSize = board.DefaultSize
	}
	return &Controller{
		storage:    storage,
		boards:     boards,
		validation: validation,
		clock:      clock,
		logger:     logger,
		boardSize:  boardSize,
	}
}

// Start deals a new board for the session, creating the session with
// zeroed stats on first visit. Stats carry over; the running score resets.
func (c *Controller) Start(ctx context.Context, id model.SessionID) (*model.Session, error) {
	sess, err := c.getOrCreate(ctx, id)
	if err != nil {
		return nil, err
	}

	b, err := c.boards.Generate(c.boardSize)
	if err != nil {
		return nil, err
	}

	sess.ResetGame(b)
	sess.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, sess); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.DebugContext(ctx, "game started",
		slog.String("session_id", string(id)),
		slog.Int("games_played", sess.Stats.GamesPlayed),
		slog.Int("highest_score", sess.Stats.HighestScore),
	)

	return sess, nil
}

// Get retrieves a session by ID
func (c *Controller) Get(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// SubmitGuess validates guess against the session's board.
// A new ok word adds its length to the running score; repeats add nothing.
func (c *Controller) SubmitGuess(ctx context.Context, id model.SessionID, guess string) (*GuessResult, error) {
	sess, err := c.storage.GetSession(ctx, id)
	if errors.Is(err, model.ErrSessionNotFound) {
		return nil, model.ErrNoBoard
	}
	if err != nil {
		return nil, err
	}
	if sess.Board == nil {
		return nil, model.ErrNoBoard
	}

	outcome := c.validation.Evaluate(sess.Board, guess)
	result := &GuessResult{Outcome: outcome}

	if outcome.Result == model.ResultOK {
		if sess.HasFound(outcome.Word) {
			result.Duplicate = true
		} else {
			sess.FoundWords = append(sess.FoundWords, outcome.Word)
			sess.Score += scoring.WordScore(outcome.Word)
			sess.UpdatedAt = c.clock.Now()
			if err := c.storage.SaveSession(ctx, sess); err != nil {
				return nil, err
			}
		}
	}
	result.Score = sess.Score

	c.logger.DebugContext(ctx, "guess submitted",
		slog.String("session_id", string(id)),
		slog.String("guess", outcome.Word),
		slog.String("result", string(outcome.Result)),
		slog.Bool("duplicate", result.Duplicate),
		slog.Int("score", result.Score),
	)

	return result, nil
}

// ReportScore records a client-reported score in the log and hands it back unchanged
func (c *Controller) ReportScore(ctx context.Context, id model.SessionID, score any) any {
	attrs := []any{
		slog.String("session_id", string(id)),
		slog.Any("reported_score", score),
	}
	if sess, err := c.storage.GetSession(ctx, id); err == nil {
		attrs = append(attrs, slog.Int("tracked_score", sess.Score))
	}
	c.logger.DebugContext(ctx, "score reported", attrs...)
	return score
}

// UpdateStats records a finished game with the given final score
func (c *Controller) UpdateStats(ctx context.Context, id model.SessionID, score int) (model.SessionStats, error) {
	if score < 0 {
		return model.SessionStats{}, model.ErrInvalidScore
	}

	sess, err := c.getOrCreate(ctx, id)
	if err != nil {
		return model.SessionStats{}, err
	}

	sess.Stats = stats.Update(sess.Stats, score)
	sess.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, sess); err != nil {
		return model.SessionStats{}, err
	}

	c.logger.DebugContext(ctx, "stats updated",
		slog.String("session_id", string(id)),
		slog.Int("score", score),
		slog.Int("games_played", sess.Stats.GamesPlayed),
		slog.Int("highest_score", sess.Stats.HighestScore),
		slog.Duration("session_age", clock.Since(c.clock, sess.CreatedAt)),
	)

	return sess.Stats, nil
}

// getOrCreate loads a session, returning a fresh one with zeroed stats if absent
func (c *Controller) getOrCreate(ctx context.Context, id model.SessionID) (*model.Session, error) {
	sess, err := c.storage.GetSession(ctx, id)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, model.ErrSessionNotFound) {
		return nil, err
	}

	now := c.clock.Now()
	c.logger.Info("session created", slog.String("session_id", string(id)))
	return &model.Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	Start(ctx context.Context, id model.SessionID) (*model.Session, error)
	Get(ctx context.Context, id model.SessionID) (*model.Session, error)
	SubmitGuess(ctx context.Context, id model.SessionID, guess string) (*GuessResult, error)
	ReportScore(ctx context.Context, id model.SessionID, score any) any
	UpdateStats(ctx context.Context, id model.SessionID, score int) (model.SessionStats, error)
}

var _ ControllerInterface = (*Controller)(nil)
