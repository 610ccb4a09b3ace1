package web_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/boggle-go/internal/factory"
	"github.com/mcoot/boggle-go/internal/services/session"
	"github.com/mcoot/boggle-go/internal/testutil"
	"github.com/mcoot/boggle-go/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	cookies *cookieJar
}

// newWebTestServer creates a new test server with all dependencies wired
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	app := factory.NewTestApp()
	require.NoError(t, app.LoadTestDictionary())

	return newWebTestServerWith(t, app, app.SessionController)
}

func newWebTestServerWith(t *testing.T, app *factory.TestApp, controller session.ControllerInterface) *webTestServer {
	t.Helper()
	return newWebTestServerLogged(t, app, controller, testutil.NopLogger())
}

func newWebTestServerLogged(t *testing.T, app *factory.TestApp, controller session.ControllerInterface, logger *slog.Logger) *webTestServer {
	t.Helper()

	router := web.NewRouter(web.RouterConfig{
		Logger:            logger,
		AuthService:       app.AuthService,
		SessionController: controller,
		GameSeconds:       60,
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Add cookies from jar
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	// Extract Set-Cookie headers into jar
	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

// postJSON makes a POST request with body encoded as JSON
func (ts *webTestServer) postJSON(path string, body any) *httptest.ResponseRecorder {
	encoded, err := json.Marshal(body)
	require.NoError(ts.t, err)
	return ts.request(http.MethodPost, path, bytes.NewReader(encoded))
}

// postRaw makes a POST request with a literal body
func (ts *webTestServer) postRaw(path, body string) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, strings.NewReader(body))
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// decodeJSON decodes the response body into a generic map
func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	return body
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// hasSession returns true if the session cookie is set
func (j *cookieJar) hasSession() bool {
	_, ok := j.cookies["session"]
	return ok
}

// startGame loads the game page over the sample board
func (ts *webTestServer) startGame() *goquery.Document {
	ts.t.Helper()
	ts.app.QueueSampleBoard()
	rr := ts.get("/")
	require.Equal(ts.t, http.StatusOK, rr.Code)
	require.True(ts.t, ts.cookies.hasSession(), "Expected session cookie to be set")
	return parseHTML(rr.Body)
}

// Assertion helpers

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}
