package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Client id commands",
	}

	cmd.AddCommand(newClientNewCmd())

	return cmd
}

func newClientNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Issue a new client id and save it",
		Long: `Issue a new client id and save it to the client file.

A new client id starts with no remembered name and an empty leaderboard.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ClientResult

			if err := client.Post("/api/v1/clients", nil, &result); err != nil {
				return err
			}

			if err := cfg.SaveClientID(result.ClientID); err != nil {
				return fmt.Errorf("failed to save client id: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
