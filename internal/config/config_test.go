package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/triviaquiz/internal/factory"
	"github.com/mcoot/triviaquiz/internal/services/identity"
)

// parse runs the command with args and returns the config it was handed
func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := &Config{}
	var got *Config
	cmd := NewCommand(cfg, func(_ *cobra.Command, c *Config) error {
		got = c
		return nil
	})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return got, err
}

func TestDefaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, factory.StorageTypeMemory, cfg.Storage)
	assert.Equal(t, identity.DefaultTTL, cfg.IdentityTTL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("TRIVIA_PORT", "9090")
	t.Setenv("TRIVIA_STORAGE", "sqlite")
	t.Setenv("TRIVIA_SQLITE_PATH", "/tmp/trivia.db")
	t.Setenv("TRIVIA_IDENTITY_TTL", "1h")

	cfg, err := parse(t)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, factory.StorageTypeSQLite, cfg.Storage)
	assert.Equal(t, "/tmp/trivia.db", cfg.SQLitePath)
	assert.Equal(t, time.Hour, cfg.IdentityTTL)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("TRIVIA_PORT", "9090")

	cfg, err := parse(t, "--port", "7070", "--log_level", "debug")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Port: 8080, Storage: "memory", IdentityTTL: time.Hour, LogLevel: "info"}
	}

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"port too low", func(c *Config) { c.Port = 0 }},
		{"port too high", func(c *Config) { c.Port = 70000 }},
		{"unknown storage", func(c *Config) { c.Storage = "postgres" }},
		{"redis without url", func(c *Config) { c.Storage = "redis" }},
		{"sqlite without path", func(c *Config) { c.Storage = "sqlite" }},
		{"zero identity ttl", func(c *Config) { c.IdentityTTL = 0 }},
		{"negative round ttl", func(c *Config) { c.RoundTTL = -time.Second }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestInvalidFlagAbortsStartup(t *testing.T) {
	_, err := parse(t, "--storage", "redis")
	assert.Error(t, err)
}

func TestFactoryConfig(t *testing.T) {
	cfg := Config{
		Storage:     "redis",
		RedisURL:    "redis://cache:6379/2",
		RoundTTL:    time.Hour,
		IdentityTTL: 2 * time.Hour,
	}

	fc := cfg.Factory(slog.Default())

	require.NotNil(t, fc.RedisConfig)
	assert.Equal(t, "redis://cache:6379/2", fc.RedisConfig.URL)
	assert.Equal(t, time.Hour, fc.RedisConfig.RoundTTL)
	assert.Equal(t, 2*time.Hour, fc.IdentityTTL)

	cfg.Storage = "memory"
	assert.Nil(t, cfg.Factory(nil).RedisConfig)
}

func TestLevel(t *testing.T) {
	cfg := Config{LogLevel: "warn"}
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
