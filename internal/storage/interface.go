package storage

import (
	"context"
	"time"

	"github.com/mcoot/triviaquiz/internal/model"
)

// Storage defines the interface for per-client persistence
type Storage interface {
	// Identity operations
	// SaveIdentity replaces the client's record. A non-positive ttl means the
	// record is already expired; backends with native expiry may drop it.
	SaveIdentity(ctx context.Context, rec *model.IdentityRecord, ttl time.Duration) error
	GetIdentity(ctx context.Context, clientID model.ClientID) (*model.IdentityRecord, error)

	// Score operations
	// GetScores never fails on corrupt data; it returns an empty list instead.
	AppendScore(ctx context.Context, clientID model.ClientID, entry model.ScoreEntry) error
	GetScores(ctx context.Context, clientID model.ClientID) ([]model.ScoreEntry, error)

	// Round operations
	SaveRound(ctx context.Context, round *model.Round) error
	GetRound(ctx context.Context, clientID model.ClientID) (*model.Round, error)

	// Close releases backend resources
	Close() error
}
