package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *Session:
		o.printSession(v)
	case *Game:
		o.printGame(v)
	case *GuessResult:
		o.printGuess(v)
	case *ScoreResult:
		fmt.Fprintf(o.w, "Current Score: %d\n", v.CurrentScore)
	case *Stats:
		o.printStats(*v)
	case *HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// Stats response type
type Stats struct {
	GamesPlayed  int `json:"games_played"`
	HighestScore int `json:"highest_score"`
}

// Session response type
type Session struct {
	SessionToken string     `json:"session_token"`
	Board        [][]string `json:"board"`
	Stats        Stats      `json:"stats"`
}

// Game response type
type Game struct {
	Board      [][]string `json:"board"`
	Score      int        `json:"score"`
	FoundWords []string   `json:"found_words"`
	Stats      Stats      `json:"stats"`
}

// Position response type
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GuessResult response type
type GuessResult struct {
	Guess     string     `json:"guess"`
	Result    string     `json:"result"`
	Path      []Position `json:"path"`
	Score     int        `json:"score"`
	Duplicate bool       `json:"duplicate,omitempty"`
}

// ScoreResult response type
type ScoreResult struct {
	CurrentScore int `json:"current_score"`
}

// Validation results as returned by the API
const (
	ResultOK         = "ok"
	ResultNotOnBoard = "not-on-board"
	ResultNotWord    = "not-word"
)

// DescribeResult turns a validation result into a sentence for the player
func DescribeResult(g *GuessResult) string {
	switch {
	case g.Result == ResultOK && g.Duplicate:
		return fmt.Sprintf("You already found %s", g.Guess)
	case g.Result == ResultOK:
		return fmt.Sprintf("%s added!", g.Guess)
	case g.Result == ResultNotOnBoard:
		return fmt.Sprintf("%s is not on the board", g.Guess)
	case g.Result == ResultNotWord:
		return fmt.Sprintf("%s is not a valid word", g.Guess)
	default:
		return g.Result
	}
}

var (
	cellStyle = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center).
			Bold(true)
	pathCellStyle = cellStyle.
			Foreground(lipgloss.Color("#4CAF50"))
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// RenderBoard draws the board, highlighting any cells on path
func RenderBoard(board [][]string, path []Position) string {
	if len(board) == 0 {
		return ""
	}

	onPath := make(map[Position]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	rows := make([]string, len(board))
	for r, row := range board {
		cells := make([]string, len(row))
		for c, letter := range row {
			style := cellStyle
			if onPath[Position{Row: r, Col: c}] {
				style = pathCellStyle
			}
			cells[c] = style.Render(letter)
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (o *Output) printSession(s *Session) {
	fmt.Fprintf(o.w, "Token: %s\n", s.SessionToken)
	if len(s.Board) > 0 {
		fmt.Fprintln(o.w, RenderBoard(s.Board, nil))
	}
	o.printStats(s.Stats)
}

func (o *Output) printGame(g *Game) {
	fmt.Fprintln(o.w, RenderBoard(g.Board, nil))
	fmt.Fprintf(o.w, "Score: %d\n", g.Score)
	if len(g.FoundWords) > 0 {
		fmt.Fprintf(o.w, "Found: %s\n", strings.Join(g.FoundWords, ", "))
	}
	o.printStats(g.Stats)
}

func (o *Output) printGuess(g *GuessResult) {
	fmt.Fprintln(o.w, DescribeResult(g))
	fmt.Fprintf(o.w, "Score: %d\n", g.Score)
}

func (o *Output) printStats(s Stats) {
	fmt.Fprintf(o.w, "Games played: %d\n", s.GamesPlayed)
	fmt.Fprintf(o.w, "Highest score: %d\n", s.HighestScore)
}
