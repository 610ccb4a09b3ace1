package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/boggle-go/internal/api"
	"github.com/mcoot/boggle-go/internal/factory"
	"github.com/mcoot/boggle-go/internal/testutil"
)

type CommandSuite struct {
	suite.Suite
	app       *factory.TestApp
	server    *httptest.Server
	tokenFile string
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandSuite))
}

func (s *CommandSuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.Require().NoError(s.app.LoadTestDictionary())

	s.server = httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:            testutil.NopLogger(),
		AuthService:       s.app.AuthService,
		SessionController: s.app.SessionController,
	}))
	s.tokenFile = filepath.Join(s.T().TempDir(), "token")

	s.T().Setenv("BOGGLE_TOKEN", "")
}

func (s *CommandSuite) TearDownTest() {
	s.server.Close()
}

// run executes the CLI with the given args and returns stdout
func (s *CommandSuite) run(args ...string) (string, error) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{
		"--server", s.server.URL,
		"--token-file", s.tokenFile,
	}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func (s *CommandSuite) runJSON(result any, args ...string) {
	out, err := s.run(append([]string{"--output", "json"}, args...)...)
	s.Require().NoError(err, out)
	s.Require().NoError(json.Unmarshal([]byte(out), result), out)
}

func (s *CommandSuite) newSession() {
	s.app.QueueSampleBoard()
	var session Session
	s.runJSON(&session, "session", "new")
}

func (s *CommandSuite) TestHealth() {
	out, err := s.run("health")
	s.Require().NoError(err)
	s.Equal("Status: ok\n", out)
}

func (s *CommandSuite) TestSessionNewSavesToken() {
	s.app.QueueSampleBoard()

	var session Session
	s.runJSON(&session, "session", "new")

	s.NotEmpty(session.SessionToken)
	s.Equal([]string{"J", "R", "D", "M", "W"}, session.Board[0])

	saved, err := os.ReadFile(s.tokenFile)
	s.Require().NoError(err)
	s.Equal(session.SessionToken, string(saved))
}

func (s *CommandSuite) TestGameShow() {
	s.newSession()

	out, err := s.run("game", "show")
	s.Require().NoError(err)
	s.Contains(out, "J")
	s.Contains(out, "Score: 0")
	s.Contains(out, "Games played: 0")
}

func (s *CommandSuite) TestGameNewDealsBoard() {
	s.newSession()
	s.app.QueueSampleBoard()

	var game Game
	s.runJSON(&game, "game", "new")
	s.Len(game.Board, 5)
	s.Equal(0, game.Score)
}

func (s *CommandSuite) TestGuess() {
	s.newSession()

	var result GuessResult
	s.runJSON(&result, "guess", "fit")
	s.Equal(ResultOK, result.Result)
	s.Equal(3, result.Score)
	s.Len(result.Path, 3)

	out, err := s.run("guess", "hat")
	s.Require().NoError(err)
	s.Contains(out, "HAT is not on the board")

	out, err = s.run("guess", "fit")
	s.Require().NoError(err)
	s.Contains(out, "You already found FIT")
}

func (s *CommandSuite) TestGuessWithoutSession() {
	_, err := s.run("guess", "fit")
	s.Require().Error(err)

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal("UNAUTHORIZED", apiErr.Code)
}

func (s *CommandSuite) TestScore() {
	s.newSession()

	out, err := s.run("score", "12")
	s.Require().NoError(err)
	s.Equal("Current Score: 12\n", out)

	_, err = s.run("score", "-1")
	s.Error(err)

	_, err = s.run("score", "twelve")
	s.Error(err)
}

func (s *CommandSuite) TestStats() {
	s.newSession()

	var stats Stats
	s.runJSON(&stats, "stats", "update", "15")
	s.Equal(Stats{GamesPlayed: 1, HighestScore: 15}, stats)

	s.runJSON(&stats, "stats", "update", "10")
	s.Equal(Stats{GamesPlayed: 2, HighestScore: 15}, stats)

	out, err := s.run("stats", "show")
	s.Require().NoError(err)
	s.Equal("Games played: 2\nHighest score: 15\n", out)
}

func (s *CommandSuite) TestTokenFlagOverridesFile() {
	s.newSession()

	_, err := s.run("--token", "not-a-token", "stats", "show")
	s.Require().Error(err)
	s.True(strings.Contains(err.Error(), "UNAUTHORIZED"))
}

func (s *CommandSuite) TestPlayRejectsBadDuration() {
	_, err := s.run("play", "--duration", "0s")
	s.Error(err)
}
