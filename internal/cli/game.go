package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameShowCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Deal a new board",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.NewGame()
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current board, score and found words",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Game()
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <word>",
		Short: "Guess a word on the current board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Guess(args[0])
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <n>",
		Short: "Report the current score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := parseScore(args[0])
			if err != nil {
				return err
			}

			result, err := client.ReportScore(score)
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func parseScore(s string) (int, error) {
	score, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid score: %w", err)
	}
	if score < 0 {
		return 0, fmt.Errorf("score must be non-negative, got %d", score)
	}
	return score, nil
}
