package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/triviaquiz/internal/model"
	"github.com/mcoot/triviaquiz/internal/storage"
)

// ErrAppendContention is returned when a score append keeps losing the optimistic lock
var ErrAppendContention = errors.New("score append retries exhausted")

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

var _ storage.Storage = (*Storage)(nil)

// Identity operations

func (s *Storage) SaveIdentity(ctx context.Context, rec *model.IdentityRecord, ttl time.Duration) error {
	key := identityKey(rec.ClientID)

	// An already-expired record is the same as no record
	if ttl <= 0 {
		return s.client.Del(ctx, key).Err()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *Storage) GetIdentity(ctx context.Context, clientID model.ClientID) (*model.IdentityRecord, error) {
	data, err := s.client.Get(ctx, identityKey(clientID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrIdentityNotFound
		}
		return nil, err
	}

	var rec model.IdentityRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Score operations

// AppendScore rewrites the whole JSON list under WATCH so concurrent
// appends for the same client never drop an entry
func (s *Storage) AppendScore(ctx context.Context, clientID model.ClientID, entry model.ScoreEntry) error {
	key := scoresKey(clientID)

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		scores := append(model.DecodeScores(data), entry)
		encoded, err := model.EncodeScores(scores)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, s.cfg.ScoresTTL)
			return nil
		})
		return err
	}

	retries := s.cfg.MaxAppendRetries
	if retries <= 0 {
		retries = 1
	}
	for i := 0; i < retries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("append score for %s: %w", clientID, ErrAppendContention)
}

func (s *Storage) GetScores(ctx context.Context, clientID model.ClientID) ([]model.ScoreEntry, error) {
	data, err := s.client.Get(ctx, scoresKey(clientID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []model.ScoreEntry{}, nil
		}
		return nil, err
	}
	return model.DecodeScores(data), nil
}

// Round operations

func (s *Storage) SaveRound(ctx context.Context, round *model.Round) error {
	data, err := json.Marshal(round)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, roundKey(round.ClientID), data, s.cfg.RoundTTL).Err()
}

func (s *Storage) GetRound(ctx context.Context, clientID model.ClientID) (*model.Round, error) {
	data, err := s.client.Get(ctx, roundKey(clientID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRoundNotFound
		}
		return nil, err
	}

	var round model.Round
	if err := json.Unmarshal(data, &round); err != nil {
		return nil, err
	}
	return &round, nil
}
