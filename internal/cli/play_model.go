package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// gameClient is the part of the API the interactive game needs
type gameClient interface {
	Guess(word string) (*GuessResult, error)
	ReportScore(score int) (*ScoreResult, error)
	UpdateStats(score int) (*Stats, error)
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	timerStyle   = lipgloss.NewStyle().Bold(true)
	timeUpStyle  = timerStyle.Foreground(lipgloss.Color("#F7B801"))
	sectionStyle = lipgloss.NewStyle().MarginTop(1)
)

// --- Messages ---

// tickMsg counts the game clock down by one second
type tickMsg time.Time

// guessResultMsg carries the server's verdict on a guess
type guessResultMsg struct {
	result *GuessResult
	err    error
}

// scoreReportedMsg is sent after the running score reaches the server
type scoreReportedMsg struct {
	err error
}

// statsUpdatedMsg is sent after the finished game is recorded
type statsUpdatedMsg struct {
	stats *Stats
	err   error
}

// --- Commands ---

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func guessCmd(c gameClient, word string) tea.Cmd {
	return func() tea.Msg {
		result, err := c.Guess(word)
		return guessResultMsg{result: result, err: err}
	}
}

func reportScoreCmd(c gameClient, score int) tea.Cmd {
	return func() tea.Msg {
		_, err := c.ReportScore(score)
		return scoreReportedMsg{err: err}
	}
}

func updateStatsCmd(c gameClient, score int) tea.Cmd {
	return func() tea.Msg {
		stats, err := c.UpdateStats(score)
		return statsUpdatedMsg{stats: stats, err: err}
	}
}

// playModel is a timed game against one board
type playModel struct {
	client    gameClient
	board     [][]string
	input     textinput.Model
	remaining time.Duration
	score     int
	found     []string
	lastPath  []Position
	message   string
	failed    bool // message is an error or rejected guess
	over      bool
	stats     *Stats
	pending   bool // a guess is in flight
}

func newPlayModel(c gameClient, board [][]string, duration time.Duration) playModel {
	input := textinput.New()
	input.Placeholder = "type a word"
	input.Prompt = "> "
	input.CharLimit = len(board) * len(board)
	input.Width = 30
	input.Focus()

	return playModel{
		client:    c,
		board:     board,
		input:     input,
		remaining: duration,
	}
}

func (m playModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.over {
				return m, tea.Quit
			}
			return m.submit()
		}

	case tickMsg:
		if m.over {
			return m, nil
		}
		m.remaining -= time.Second
		if m.remaining <= 0 {
			m.remaining = 0
			m.over = true
			m.input.Blur()
			if m.pending {
				// Recorded once the in-flight guess comes back
				return m, nil
			}
			return m, updateStatsCmd(m.client, m.score)
		}
		return m, tick()

	case guessResultMsg:
		m.pending = false
		var cmd tea.Cmd
		if msg.err != nil {
			m.message, m.failed = msg.err.Error(), true
		} else {
			m, cmd = m.applyGuess(msg.result)
		}
		if m.over {
			return m, updateStatsCmd(m.client, m.score)
		}
		return m, cmd

	case scoreReportedMsg:
		if msg.err != nil {
			m.message, m.failed = "could not report score: "+msg.err.Error(), true
		}
		return m, nil

	case statsUpdatedMsg:
		if msg.err != nil {
			m.message, m.failed = "could not record game: "+msg.err.Error(), true
			return m, nil
		}
		m.stats = msg.stats
		m.message, m.failed = fmt.Sprintf("Game over! Final score: %d", m.score), false
		return m, nil
	}

	if m.over {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m playModel) submit() (tea.Model, tea.Cmd) {
	word := strings.ToUpper(strings.TrimSpace(m.input.Value()))
	m.input.SetValue("")
	if word == "" || m.pending {
		return m, nil
	}

	for _, f := range m.found {
		if f == word {
			m.message, m.failed = fmt.Sprintf("You already found %s", word), true
			return m, nil
		}
	}

	m.pending = true
	return m, guessCmd(m.client, word)
}

func (m playModel) applyGuess(r *GuessResult) (playModel, tea.Cmd) {
	m.message = DescribeResult(r)
	m.failed = r.Result != ResultOK || r.Duplicate
	m.lastPath = r.Path

	if r.Result != ResultOK || r.Duplicate {
		return m, nil
	}

	m.found = append(m.found, r.Guess)
	m.score = r.Score
	if m.over {
		return m, nil
	}
	return m, reportScoreCmd(m.client, m.score)
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("BOGGLE"))
	b.WriteString("  ")
	if m.over {
		b.WriteString(timeUpStyle.Render("Time's up!"))
	} else {
		b.WriteString(timerStyle.Render(fmt.Sprintf("%ds left", int(m.remaining.Seconds()))))
	}
	b.WriteString("\n")

	b.WriteString(RenderBoard(m.board, m.lastPath))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Current Score: %d\n", m.score)

	if !m.over {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.message != "" {
		style := okStyle
		if m.failed {
			style = badStyle
		}
		b.WriteString(style.Render(m.message))
		b.WriteString("\n")
	}

	if len(m.found) > 0 {
		b.WriteString(sectionStyle.Render("Found: " + strings.Join(m.found, ", ")))
		b.WriteString("\n")
	}

	if m.stats != nil {
		b.WriteString(sectionStyle.Render(fmt.Sprintf("Games played: %d  Highest score: %d",
			m.stats.GamesPlayed, m.stats.HighestScore)))
		b.WriteString("\n")
	}

	help := "enter: guess  esc: quit"
	if m.over {
		help = "enter/esc: quit"
	}
	b.WriteString(mutedStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
