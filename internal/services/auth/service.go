package auth

import (
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/mcoot/boggle-go/internal/model"
)

// Service issues session tokens and resolves them to storage IDs.
// Tokens are random UUIDs held by the client; storage only ever sees
// the BLAKE2b-256 digest of a token.
type Service struct {
	newToken func() string
}

// New creates a new AuthService
func New() *Service {
	return &Service{
		newToken: uuid.NewString,
	}
}

// NewWithGenerator creates an AuthService drawing tokens from gen (useful for testing)
func NewWithGenerator(gen func() string) *Service {
	return &Service{
		newToken: gen,
	}
}

// IssueToken creates a fresh token and the session ID it maps to
func (s *Service) IssueToken() (string, model.SessionID) {
	token := s.newToken()
	return token, HashToken(token)
}

// SessionID validates token and returns the session ID it maps to
func (s *Service) SessionID(token string) (model.SessionID, error) {
	if _, err := uuid.Parse(token); err != nil {
		return "", model.ErrInvalidToken
	}
	return HashToken(token), nil
}

// HashToken derives the storage ID for a token
func HashToken(token string) model.SessionID {
	sum := blake2b.Sum256([]byte(token))
	return model.SessionID(hex.EncodeToString(sum[:]))
}

// Interface for dependency injection
type ServiceInterface interface {
	IssueToken() (string, model.SessionID)
	SessionID(token string) (model.SessionID, error)
}

var _ ServiceInterface = (*Service)(nil)
