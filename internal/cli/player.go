package cli

import (
	"github.com/spf13/cobra"
)

func newScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Show the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureClient(); err != nil {
				return err
			}

			var result ScoresResult
			if err := client.Get("/api/v1/scores", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the remembered player name",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureClient(); err != nil {
				return err
			}

			var result IdentityResult
			if err := client.Get("/api/v1/identity", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newNewPlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new-player",
		Short: "Forget the remembered player name",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureClient(); err != nil {
				return err
			}

			if err := client.Delete("/api/v1/identity"); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Player name forgotten")
			return nil
		},
	}
}
