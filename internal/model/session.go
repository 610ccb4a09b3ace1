package model

import "time"

// SessionID identifies a player's session in storage.
// It is derived from the client's token, never the token itself.
type SessionID string

// ValidationResult is the outcome of checking a guess against a board
type ValidationResult string

const (
	ResultOK         ValidationResult = "ok"           // Dictionary word with a path on the board
	ResultNotOnBoard ValidationResult = "not-on-board" // Dictionary word, no path
	ResultNotWord    ValidationResult = "not-word"     // Too short or not in the dictionary
)

// SessionStats holds the per-player counters kept across games
type SessionStats struct {
	GamesPlayed  int
	HighestScore int
}

// Session is the per-player state persisted between requests
type Session struct {
	ID    SessionID
	Board *Board // nil until the first game starts
	Stats SessionStats

	// Current game
	Score      int
	FoundWords []string // Distinct words scored on the current board, in order found

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasFound returns true if word has already been scored on the current board
func (s *Session) HasFound(word string) bool {
	for _, w := range s.FoundWords {
		if w == word {
			return true
		}
	}
	return false
}

// ResetGame clears the current game's progress and installs a new board
func (s *Session) ResetGame(board *Board) {
	s.Board = board
	s.Score = 0
	s.FoundWords = nil
}
