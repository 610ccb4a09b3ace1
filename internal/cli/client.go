package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is an HTTP client for the API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken updates the client's token
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError represents an error response from the API
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an API error
type ErrorResponse struct {
	Error APIError `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// Do performs an HTTP request
func (c *Client) Do(method, path string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Check for error responses
	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Code != "" {
			errResp.Error.Status = resp.StatusCode
			return &errResp.Error
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	// Parse successful response
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// Get performs a GET request
func (c *Client) Get(path string, result any) error {
	return c.Do(http.MethodGet, path, nil, result)
}

// Post performs a POST request
func (c *Client) Post(path string, body, result any) error {
	return c.Do(http.MethodPost, path, body, result)
}

// Health checks the server is up
func (c *Client) Health() (*HealthResult, error) {
	var result HealthResult
	if err := c.Get("/api/v1/health", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateSession opens a new session and switches the client to its token
func (c *Client) CreateSession() (*Session, error) {
	var result Session
	if err := c.Post("/api/v1/sessions", nil, &result); err != nil {
		return nil, err
	}
	c.SetToken(result.SessionToken)
	return &result, nil
}

// Game returns the session's current game
func (c *Client) Game() (*Game, error) {
	var result Game
	if err := c.Get("/api/v1/game", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// NewGame deals a fresh board
func (c *Client) NewGame() (*Game, error) {
	var result Game
	if err := c.Post("/api/v1/game", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Guess submits a word against the current board
func (c *Client) Guess(word string) (*GuessResult, error) {
	var result GuessResult
	if err := c.Post("/api/v1/game/guesses", map[string]string{"guess": word}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReportScore sends the running score to the server
func (c *Client) ReportScore(score int) (*ScoreResult, error) {
	var result ScoreResult
	if err := c.Post("/api/v1/game/score", map[string]int{"score": score}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Stats returns the session's stats
func (c *Client) Stats() (*Stats, error) {
	var result Stats
	if err := c.Get("/api/v1/stats", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateStats records a finished game
func (c *Client) UpdateStats(score int) (*Stats, error) {
	var result Stats
	if err := c.Post("/api/v1/stats", map[string]int{"score": score}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
