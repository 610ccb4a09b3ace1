package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/boggle-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

// IssueToken tests

func (s *ServiceSuite) TestIssueTokenIsUUID() {
	token, _ := s.service.IssueToken()

	_, err := uuid.Parse(token)
	s.NoError(err)
}

func (s *ServiceSuite) TestIssueTokenIsUnique() {
	first, firstID := s.service.IssueToken()
	second, secondID := s.service.IssueToken()

	s.NotEqual(first, second)
	s.NotEqual(firstID, secondID)
}

func (s *ServiceSuite) TestIssueTokenIDIsHash() {
	token, id := s.service.IssueToken()

	s.Equal(HashToken(token), id)
	s.NotContains(string(id), token)
	s.Len(string(id), 64)
}

func (s *ServiceSuite) TestIssueTokenUsesGenerator() {
	service := NewWithGenerator(func() string { return "00000000-0000-4000-8000-000000000001" })

	token, _ := service.IssueToken()
	s.Equal("00000000-0000-4000-8000-000000000001", token)
}

// SessionID tests

func (s *ServiceSuite) TestSessionIDRoundTrip() {
	token, id := s.service.IssueToken()

	resolved, err := s.service.SessionID(token)
	s.Require().NoError(err)
	s.Equal(id, resolved)
}

func (s *ServiceSuite) TestSessionIDRejectsMalformedToken() {
	_, err := s.service.SessionID("not-a-token")
	s.ErrorIs(err, model.ErrInvalidToken)

	_, err = s.service.SessionID("")
	s.ErrorIs(err, model.ErrInvalidToken)
}

func (s *ServiceSuite) TestHashTokenIsStable() {
	s.Equal(HashToken("abc"), HashToken("abc"))
	s.NotEqual(HashToken("abc"), HashToken("abd"))
}
