package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session management commands",
	}

	cmd.AddCommand(newSessionNewCmd())

	return cmd
}

func newSessionNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new session and save its token",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.CreateSession()
			if err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

// ensureSession creates and saves a session when no token is configured
func ensureSession() error {
	if cfg.Token != "" {
		return nil
	}

	result, err := client.CreateSession()
	if err != nil {
		return err
	}
	if err := cfg.SaveToken(result.SessionToken); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}
