package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	loaded, err := LoadConfig()
	if err != nil {
		loaded = &Config{ServerURL: "http://localhost:8080", Output: "text", ClientFile: defaultClientFile()}
	}
	cfg = loaded

	rootCmd := &cobra.Command{
		Use:   "trivia",
		Short: "CLI tool for the trivia quiz API",
		Long: `trivia is a CLI tool for playing the trivia quiz through its JSON API.

It can issue a client id, play a round interactively, and show the
remembered player name and the leaderboard.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			// Load client id from file if not provided via flag/env
			if err := cfg.LoadClientID(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.ClientID)
			client.Verbose = cfg.Verbose
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: TRIVIA_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.ClientID, "client-id", cfg.ClientID, "Client id (env: TRIVIA_CLIENT_ID)")
	rootCmd.PersistentFlags().StringVar(&cfg.ClientFile, "client-file", cfg.ClientFile, "Client id file path (env: TRIVIA_CLIENT_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: TRIVIA_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newClientCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newNewPlayerCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		NewOutput(cfg.Output).PrintError(err)
		os.Exit(1)
	}
}

// ensureClient issues and saves a client id if none is configured
func ensureClient() error {
	if cfg.ClientID != "" {
		return nil
	}
	var result ClientResult
	if err := client.Post("/api/v1/clients", nil, &result); err != nil {
		return err
	}
	if err := cfg.SaveClientID(result.ClientID); err != nil {
		return err
	}
	client.SetClientID(result.ClientID)
	return nil
}
