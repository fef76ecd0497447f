// Package config holds the server's command line and environment settings.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mcoot/triviaquiz/internal/api"
	"github.com/mcoot/triviaquiz/internal/factory"
	"github.com/mcoot/triviaquiz/internal/services/identity"
	redisstorage "github.com/mcoot/triviaquiz/internal/storage/redis"
)

// EnvPrefix is prepended to every flag name to form its environment variable
const EnvPrefix = "TRIVIA"

// Config holds server settings
type Config struct {
	Host          string
	Port          int
	Storage       string
	RedisURL      string
	SQLitePath    string
	QuestionsURL  string
	QuestionsFile string
	IdentityTTL   time.Duration
	RoundTTL      time.Duration
	LogLevel      string
	StaticDir     string
}

// Validate checks settings that would otherwise fail later at start-up
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	switch c.Storage {
	case factory.StorageTypeMemory:
	case factory.StorageTypeRedis:
		if c.RedisURL == "" {
			return errors.New("--redis-url is required with --storage=redis")
		}
	case factory.StorageTypeSQLite:
		if c.SQLitePath == "" {
			return errors.New("--sqlite-path is required with --storage=sqlite")
		}
	default:
		return fmt.Errorf("invalid storage %q: must be memory, redis or sqlite", c.Storage)
	}
	if c.IdentityTTL <= 0 {
		return fmt.Errorf("invalid identity TTL %s: must be positive", c.IdentityTTL)
	}
	if c.RoundTTL < 0 {
		return fmt.Errorf("invalid round TTL %s: must not be negative", c.RoundTTL)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Server returns the HTTP server settings
func (c *Config) Server() api.ServerConfig {
	sc := api.DefaultServerConfig()
	sc.Host = c.Host
	sc.Port = c.Port
	return sc
}

// Factory returns the application factory settings
func (c *Config) Factory(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		Logger:        logger,
		StorageType:   c.Storage,
		SQLitePath:    c.SQLitePath,
		QuestionsURL:  c.QuestionsURL,
		QuestionsFile: c.QuestionsFile,
		IdentityTTL:   c.IdentityTTL,
	}
	if c.Storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		if c.RoundTTL > 0 {
			redisCfg.RoundTTL = c.RoundTTL
		}
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// NewCommand builds the server command. Every flag can also be set through
// TRIVIA_<FLAG>, with dashes replaced by underscores; flags win.
func NewCommand(cfg *Config, run func(cmd *cobra.Command, cfg *Config) error) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "trivia-server",
		Short: "Serve the trivia quiz web page and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVar(&cfg.Host, "host", "", "address to bind to (env: TRIVIA_HOST)")
	fs.IntVarP(&cfg.Port, "port", "p", 8080, "port to listen on (env: TRIVIA_PORT)")
	fs.StringVar(&cfg.Storage, "storage", factory.StorageTypeMemory, "storage backend: memory, redis or sqlite (env: TRIVIA_STORAGE)")
	fs.StringVar(&cfg.RedisURL, "redis-url", "", "redis connection URL (env: TRIVIA_REDIS_URL)")
	fs.StringVar(&cfg.SQLitePath, "sqlite-path", "", "sqlite database file (env: TRIVIA_SQLITE_PATH)")
	fs.StringVar(&cfg.QuestionsURL, "questions-url", "", "question API endpoint, defaults to Open Trivia DB (env: TRIVIA_QUESTIONS_URL)")
	fs.StringVar(&cfg.QuestionsFile, "questions-file", "", "serve questions from a local JSON bank instead (env: TRIVIA_QUESTIONS_FILE)")
	fs.DurationVar(&cfg.IdentityTTL, "identity-ttl", identity.DefaultTTL, "how long a player name is remembered (env: TRIVIA_IDENTITY_TTL)")
	fs.DurationVar(&cfg.RoundTTL, "round-ttl", 0, "how long redis keeps an unanswered round, 0 for the backend default (env: TRIVIA_ROUND_TTL)")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "debug, info, warn or error (env: TRIVIA_LOG_LEVEL)")
	fs.StringVar(&cfg.StaticDir, "static-dir", "", "static files directory, found automatically if empty (env: TRIVIA_STATIC_DIR)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
