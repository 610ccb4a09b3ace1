package web_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/boggle-go/internal/factory"
	"github.com/mcoot/boggle-go/internal/services/auth"
)

func TestHomeRendersBoard(t *testing.T) {
	ts := newWebTestServer(t)
	doc := ts.startGame()

	assertContainsElement(t, doc, "table#board")
	assert.Equal(t, 5, doc.Find("#board tr").Length())
	assert.Equal(t, 25, doc.Find("#board td").Length())
	assert.Equal(t, "JRDMW", doc.Find("#board tr").First().Text())
	assertContainsElement(t, doc, "form#guess-form input[name=guess]")
	assertContainsText(t, doc, "#score", "Current Score: 0")
}

func TestHomeSetsSessionCookie(t *testing.T) {
	ts := newWebTestServer(t)
	rr := ts.get("/")

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, "/", cookies[0].Path)
}

func TestHomeReusesSessionCookie(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startGame()

	rr := ts.get("/")
	assert.Empty(t, rr.Result().Cookies(), "existing session should not be reissued")
}

func TestHomeReplacesMalformedCookie(t *testing.T) {
	ts := newWebTestServer(t)
	ts.cookies.cookies["session"] = &http.Cookie{Name: "session", Value: "garbage"}

	rr := ts.get("/")
	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, rr.Result().Cookies(), 1)
	assert.NotEqual(t, "garbage", rr.Result().Cookies()[0].Value)
}

func TestHomeShowsStatsAndDuration(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startGame()

	rr := ts.postJSON("/update-stats", map[string]any{"score": 12})
	require.Equal(t, http.StatusOK, rr.Code)

	doc := ts.startGame()
	assertContainsText(t, doc, "#games-played", "1")
	assertContainsText(t, doc, "#highest-score", "12")
	duration, _ := doc.Find("#game").Attr("data-duration")
	assert.Equal(t, "60", duration)
}

func TestGetBoard(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startGame()

	rr := ts.get("/board")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeJSON(t, rr)
	rows, ok := body["board"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 5)
	assert.Equal(t, []any{"J", "R", "D", "M", "W"}, rows[0])
}

func TestSubmitGuessResults(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startGame()

	tests := []struct {
		guess string
		want  string
	}{
		{"FIT", "ok"},
		{"ship", "ok"},
		{"HAT", "not-on-board"},
		{"asdf", "not-word"},
		{"my", "not-word"},
		{"", "not-word"},
	}

	for _, tt := range tests {
		t.Run(tt.guess, func(t *testing.T) {
			rr := ts.postJSON("/submit-guess", map[string]any{"guess": tt.guess})
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, map[string]any{"result": tt.want}, decodeJSON(t, rr))
		})
	}
}

func TestSubmitGuessTracksScore(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startGame()

	ts.postJSON("/submit-guess", map[string]any{"guess": "fit"})
	ts.postJSON("/submit-guess", map[string]any{"guess": "FIT"})
	ts.postJSON("/submit-guess", map[string]any{"guess": "ship"})

	id := auth.HashToken(ts.cookies.cookies["session"].Value)
	sess, err := ts.app.SessionController.Get(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, 7, sess.Score)
	assert.Equal(t, []string{"FIT", "SHIP"}, sess.FoundWords)
}

func TestSubmitGuessWithoutBoard(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.postJSON("/submit-guess", map[string]any{"guess": "fit"})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "NO_BOARD", decodeJSON(t, rr)["error"].(map[string]any)["code"])
}

func TestSubmitGuessRequiresGuess(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startGame()

	rr := ts.postJSON("/submit-guess", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.postRaw("/submit-guess", "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestScoreEchoesValue(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startGame()

	tests := []struct {
		name  string
		score any
	}{
		{"number", float64(7)},
		{"string", "seven"},
		{"null", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.postJSON("/score", map[string]any{"score": tt.score})
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, map[string]any{"Current Score:": tt.score}, decodeJSON(t, rr))
		})
	}
}

func TestScoreRequiresScore(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.postJSON("/score", map[string]any{"points": 3})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateStatsSequence(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startGame()

	tests := []struct {
		score        int
		gamesPlayed  float64
		highestScore float64
	}{
		{15, 1, 15},
		{20, 2, 20},
		{10, 3, 20},
	}

	for _, tt := range tests {
		rr := ts.postJSON("/update-stats", map[string]any{"score": tt.score})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, map[string]any{
			"games_played":  tt.gamesPlayed,
			"highest_score": tt.highestScore,
		}, decodeJSON(t, rr))
	}
}

func TestUpdateStatsValidation(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startGame()

	rr := ts.postJSON("/update-stats", map[string]any{"score": -1})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "INVALID_SCORE", decodeJSON(t, rr)["error"].(map[string]any)["code"])

	rr = ts.postJSON("/update-stats", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.postJSON("/update-stats", map[string]any{"score": "twenty"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSessionsAreIsolated(t *testing.T) {
	app := factory.NewTestApp()
	require.NoError(t, app.LoadTestDictionary())
	alice := newWebTestServerWith(t, app, app.SessionController)
	bob := newWebTestServerWith(t, app, app.SessionController)

	alice.startGame()
	bob.startGame()

	alice.postJSON("/update-stats", map[string]any{"score": 9})

	rr := bob.postJSON("/update-stats", map[string]any{"score": 2})
	assert.Equal(t, map[string]any{"games_played": float64(1), "highest_score": float64(2)}, decodeJSON(t, rr))
}

func TestStaticAssetsServed(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/static/app.js")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/update-stats")

	rr = ts.get("/static/style.css")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Result().Cookies(), "static assets should not start sessions")
}

func TestScriptRecordsStatsAfterPendingGuesses(t *testing.T) {
	ts := newWebTestServer(t)

	script := ts.get("/static/app.js").Body.String()
	wait := strings.Index(script, "await inFlight;")
	record := strings.Index(script, `postJSON("/update-stats"`)
	require.NotEqual(t, -1, wait)
	require.NotEqual(t, -1, record)
	assert.Less(t, wait, record)
}
