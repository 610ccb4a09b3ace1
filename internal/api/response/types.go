package response

import (
	"github.com/mcoot/boggle-go/internal/model"
	"github.com/mcoot/boggle-go/internal/services/session"
)

// Stats represents a session's cross-game stats
type Stats struct {
	GamesPlayed  int `json:"games_played"`
	HighestScore int `json:"highest_score"`
}

// StatsFromModel converts model.SessionStats
func StatsFromModel(s model.SessionStats) Stats {
	return Stats{
		GamesPlayed:  s.GamesPlayed,
		HighestScore: s.HighestScore,
	}
}

// BoardFromModel converts a board to rows of single letters; nil stays nil
func BoardFromModel(b *model.Board) [][]string {
	if b == nil {
		return nil
	}
	return b.Rows()
}

// Game represents the current game of a session
type Game struct {
	Board      [][]string `json:"board"`
	Score      int        `json:"score"`
	FoundWords []string   `json:"found_words"`
	Stats      Stats      `json:"stats"`
}

// GameFromModel converts model.Session
func GameFromModel(s *model.Session) Game {
	found := s.FoundWords
	if found == nil {
		found = []string{}
	}
	return Game{
		Board:      BoardFromModel(s.Board),
		Score:      s.Score,
		FoundWords: found,
		Stats:      StatsFromModel(s.Stats),
	}
}

// Session is the response for creating a session
type Session struct {
	SessionToken string     `json:"session_token"`
	Board        [][]string `json:"board"`
	Stats        Stats      `json:"stats"`
}

// Position is a board cell
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Guess is the response for a submitted guess
type Guess struct {
	Guess     string     `json:"guess"`
	Result    string     `json:"result"`
	Path      []Position `json:"path"`
	Score     int        `json:"score"`
	Duplicate bool       `json:"duplicate,omitempty"`
}

// GuessFromResult converts a session.GuessResult
func GuessFromResult(r *session.GuessResult) Guess {
	path := make([]Position, len(r.Path))
	for i, p := range r.Path {
		path[i] = Position{Row: p.Row, Col: p.Col}
	}
	return Guess{
		Guess:     r.Word,
		Result:    string(r.Result),
		Path:      path,
		Score:     r.Score,
		Duplicate: r.Duplicate,
	}
}

// Score is the response for reporting a score
type Score struct {
	CurrentScore int `json:"current_score"`
}

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}
