package cli

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Stats commands",
	}

	cmd.AddCommand(newStatsShowCmd())
	cmd.AddCommand(newStatsUpdateCmd())

	return cmd
}

func newStatsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show games played and highest score",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Stats()
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newStatsUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <score>",
		Short: "Record a finished game with its final score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := parseScore(args[0])
			if err != nil {
				return err
			}

			result, err := client.UpdateStats(score)
			if err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
