package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// RoundTTL bounds how long an unanswered round is kept
	RoundTTL time.Duration
	// ScoresTTL is applied to leaderboards on every append; 0 keeps them forever
	ScoresTTL time.Duration

	// MaxAppendRetries caps optimistic-lock retries when appending scores
	MaxAppendRetries int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:              "redis://localhost:6379",
		PoolSize:         10,
		MinIdleConns:     2,
		RoundTTL:         24 * time.Hour,
		ScoresTTL:        0,
		MaxAppendRetries: 10,
	}
}
