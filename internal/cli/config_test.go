package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	clientFile := filepath.Join(t.TempDir(), "client")
	t.Setenv("TRIVIA_SERVER", "http://trivia.test:9000")
	t.Setenv("TRIVIA_CLIENT_FILE", clientFile)
	t.Setenv("TRIVIA_OUTPUT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://trivia.test:9000", cfg.ServerURL)
	assert.Equal(t, clientFile, cfg.ClientFile)
	assert.Equal(t, "json", cfg.Output)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"TRIVIA_SERVER", "TRIVIA_OUTPUT", "TRIVIA_CLIENT_FILE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, "text", cfg.Output)
	assert.NotEmpty(t, cfg.ClientFile)
}

func TestValidateRejectsUnknownOutput(t *testing.T) {
	cfg := &Config{ServerURL: "http://localhost:8080", Output: "yaml"}
	assert.Error(t, cfg.Validate())
}

func TestClientIDRoundTrip(t *testing.T) {
	cfg := &Config{ClientFile: filepath.Join(t.TempDir(), "nested", "client")}

	require.NoError(t, cfg.LoadClientID())
	assert.Empty(t, cfg.ClientID)

	require.NoError(t, cfg.SaveClientID("0e0f4d55-0f5c-4f63-bf3f-4a0b7e0d2a11"))

	reloaded := &Config{ClientFile: cfg.ClientFile}
	require.NoError(t, reloaded.LoadClientID())
	assert.Equal(t, "0e0f4d55-0f5c-4f63-bf3f-4a0b7e0d2a11", reloaded.ClientID)
}

func TestPickAnswer(t *testing.T) {
	q := Question{Answers: []Answer{{Label: "Rome"}, {Label: "Paris"}}}

	label, ok := pickAnswer(q, " 2 ")
	assert.True(t, ok)
	assert.Equal(t, "Paris", label)

	for _, choice := range []string{"", "0", "3", "paris"} {
		_, ok := pickAnswer(q, choice)
		assert.False(t, ok, "choice %q", choice)
	}
}
