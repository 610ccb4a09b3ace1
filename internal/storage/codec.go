package storage

import (
	"encoding/json"
	"time"

	"github.com/mcoot/boggle-go/internal/model"
)

// sessionRecord is the serialized form of a session shared by the
// Redis and SQLite backends. Boards are stored as rows of letters.
type sessionRecord struct {
	ID           model.SessionID `json:"id"`
	Board        [][]string      `json:"board,omitempty"`
	GamesPlayed  int             `json:"games_played"`
	HighestScore int             `json:"highest_score"`
	Score        int             `json:"score"`
	FoundWords   []string        `json:"found_words,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// EncodeSession serializes a session to JSON
func EncodeSession(s *model.Session) ([]byte, error) {
	rec := sessionRecord{
		ID:           s.ID,
		GamesPlayed:  s.Stats.GamesPlayed,
		HighestScore: s.Stats.HighestScore,
		Score:        s.Score,
		FoundWords:   s.FoundWords,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	if s.Board != nil {
		rec.Board = s.Board.Rows()
	}
	return json.Marshal(rec)
}

// DecodeSession is the inverse of EncodeSession
func DecodeSession(data []byte) (*model.Session, error) {
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}

	session := &model.Session{
		ID: rec.ID,
		Stats: model.SessionStats{
			GamesPlayed:  rec.GamesPlayed,
			HighestScore: rec.HighestScore,
		},
		Score:      rec.Score,
		FoundWords: rec.FoundWords,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
	if rec.Board != nil {
		session.Board = model.BoardFromRows(rec.Board)
	}
	return session, nil
}
