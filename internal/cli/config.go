package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds CLI configuration. Flags override the environment.
type Config struct {
	ServerURL  string `env:"TRIVIA_SERVER" envDefault:"http://localhost:8080"`
	ClientID   string `env:"TRIVIA_CLIENT_ID"`
	ClientFile string `env:"TRIVIA_CLIENT_FILE"`
	Output     string `env:"TRIVIA_OUTPUT" envDefault:"text"`
	Verbose    bool   `env:"TRIVIA_VERBOSE"`
}

// LoadConfig reads configuration from the environment
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ClientFile == "" {
		cfg.ClientFile = defaultClientFile()
	}
	return cfg, nil
}

// Validate checks flag and environment values
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	if c.ServerURL == "" {
		return fmt.Errorf("server URL is required")
	}
	return nil
}

// LoadClientID loads the client id from file if not already set
func (c *Config) LoadClientID() error {
	if c.ClientID != "" {
		return nil
	}

	data, err := os.ReadFile(c.ClientFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No client file yet is fine
		}
		return err
	}

	c.ClientID = strings.TrimSpace(string(data))
	return nil
}

// SaveClientID saves the client id to the client file
func (c *Config) SaveClientID(clientID string) error {
	c.ClientID = clientID

	dir := filepath.Dir(c.ClientFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.ClientFile, []byte(clientID), 0600)
}

func defaultClientFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".trivia/client"
	}
	return filepath.Join(home, ".trivia", "client")
}
