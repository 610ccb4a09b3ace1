package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/boggle-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) newSession(id model.SessionID) *model.Session {
	return &model.Session{
		ID:         id,
		Board:      model.BoardFromStrings("CAT", "DOG", "EEL"),
		Stats:      model.SessionStats{GamesPlayed: 2, HighestScore: 17},
		Score:      6,
		FoundWords: []string{"CAT", "DOG"},
		CreatedAt:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2024, 1, 1, 12, 5, 0, 0, time.UTC),
	}
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := s.newSession("sess-1")

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "sess-1")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Equal(session.Stats, retrieved.Stats)
	s.Equal(6, retrieved.Score)
	s.Equal([]string{"CAT", "DOG"}, retrieved.FoundWords)
	s.Require().NotNil(retrieved.Board)
	s.Equal(3, retrieved.Board.Size)
	s.Equal('G', retrieved.Board.Get(model.Position{Row: 1, Col: 2}))
	s.True(session.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestSaveSessionWithoutBoard() {
	session := &model.Session{ID: "sess-1", Stats: model.SessionStats{HighestScore: 3}}
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	retrieved, err := s.storage.GetSession(s.ctx, "sess-1")
	s.Require().NoError(err)
	s.Nil(retrieved.Board)
	s.Equal(3, retrieved.Stats.HighestScore)
}

func (s *StorageSuite) TestBoardIsStoredAsLetters() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("sess-1")))

	raw, err := s.mini.Get(sessionKey("sess-1"))
	s.Require().NoError(err)
	s.Contains(raw, `"board":[["C","A","T"],["D","O","G"],["E","E","L"]]`)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, s.newSession("sess-1"))

	err := s.storage.DeleteSession(s.ctx, "sess-1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "sess-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionTTL() {
	_ = s.storage.SaveSession(s.ctx, s.newSession("sess-1"))

	s.Equal(time.Hour, s.mini.TTL(sessionKey("sess-1")))
}

func (s *StorageSuite) TestSessionExpires() {
	_ = s.storage.SaveSession(s.ctx, s.newSession("sess-1"))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetSession(s.ctx, "sess-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSaveRefreshesTTL() {
	session := s.newSession("sess-1")
	_ = s.storage.SaveSession(s.ctx, session)

	s.mini.FastForward(45 * time.Minute)
	_ = s.storage.SaveSession(s.ctx, session)
	s.mini.FastForward(45 * time.Minute)

	_, err := s.storage.GetSession(s.ctx, "sess-1")
	s.NoError(err)
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"apple", "banana", "cherry"}

	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch(words, retrieved)
}

func (s *StorageSuite) TestGetDictionaryWordsNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestSaveDictionaryWordsReplaces() {
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"old", "words"})
	_ = s.storage.SaveDictionaryWords(s.ctx, []string{"new"})

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"new"}, retrieved)
}
