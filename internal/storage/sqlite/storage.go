// Package sqlite provides a durable single-file storage backend.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mcoot/triviaquiz/internal/model"
	"github.com/mcoot/triviaquiz/internal/storage"
)

// Storage persists quiz state in SQLite
type Storage struct {
	db *sql.DB
}

var _ storage.Storage = (*Storage)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens (creating if needed) the database at path and applies the schema
func Open(ctx context.Context, path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := "file:" + filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A single writer avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	s := &Storage{db: db}
	if err := s.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Close closes the database handle
func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Identity operations

func (s *Storage) SaveIdentity(ctx context.Context, rec *model.IdentityRecord, _ time.Duration) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO identities (client_id, username, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT(client_id) DO UPDATE SET username = excluded.username, expires_at = excluded.expires_at`,
		string(rec.ClientID), rec.Username, toMillis(rec.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("save identity: %w", err)
	}
	return nil
}

func (s *Storage) GetIdentity(ctx context.Context, clientID model.ClientID) (*model.IdentityRecord, error) {
	var (
		username  string
		expiresAt int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT username, expires_at FROM identities WHERE client_id = ?`,
		string(clientID),
	).Scan(&username, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("get identity: %w", err)
	}
	return &model.IdentityRecord{
		ClientID:  clientID,
		Username:  username,
		ExpiresAt: fromMillis(expiresAt),
	}, nil
}

// Score operations

func (s *Storage) AppendScore(ctx context.Context, clientID model.ClientID, entry model.ScoreEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (client_id, username, score) VALUES (?, ?, ?)`,
		string(clientID), entry.Username, entry.Score,
	)
	if err != nil {
		return fmt.Errorf("append score: %w", err)
	}
	return nil
}

func (s *Storage) GetScores(ctx context.Context, clientID model.ClientID) ([]model.ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT username, score FROM scores WHERE client_id = ? ORDER BY id ASC`,
		string(clientID),
	)
	if err != nil {
		return nil, fmt.Errorf("get scores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	scores := []model.ScoreEntry{}
	for rows.Next() {
		var entry model.ScoreEntry
		if err := rows.Scan(&entry.Username, &entry.Score); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		scores = append(scores, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scores: %w", err)
	}
	return scores, nil
}

// Round operations

func (s *Storage) SaveRound(ctx context.Context, round *model.Round) error {
	payload, err := json.Marshal(round)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO rounds (client_id, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(client_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		string(round.ClientID), string(payload), toMillis(round.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("save round: %w", err)
	}
	return nil
}

func (s *Storage) GetRound(ctx context.Context, clientID model.ClientID) (*model.Round, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM rounds WHERE client_id = ?`,
		string(clientID),
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrRoundNotFound
		}
		return nil, fmt.Errorf("get round: %w", err)
	}

	var round model.Round
	if err := json.Unmarshal([]byte(payload), &round); err != nil {
		return nil, fmt.Errorf("decode round: %w", err)
	}
	return &round, nil
}
