package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a timed game in the terminal",
		Long: `Deal a new board and play against the clock.

Type words and press enter to guess. Each new valid word adds its length
to your score. When time runs out the game is recorded in your stats.
A session is created automatically if no token is configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if duration <= 0 {
				return fmt.Errorf("duration must be positive, got %s", duration)
			}
			if err := ensureSession(); err != nil {
				return err
			}

			game, err := client.NewGame()
			if err != nil {
				return err
			}

			p := tea.NewProgram(
				newPlayModel(client, game.Board, duration),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("game failed: %w", err)
			}

			if m, ok := final.(playModel); ok && m.stats != nil {
				output(cmd).Print(m.stats)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 60*time.Second, "Game length")

	return cmd
}
