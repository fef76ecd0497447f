package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mcoot/triviaquiz/internal/model"
	"github.com/mcoot/triviaquiz/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	identities map[model.ClientID]*model.IdentityRecord
	// scores holds the encoded JSON list, like the browser's "scores" key
	scores map[model.ClientID][]byte
	rounds map[model.ClientID]*model.Round
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		identities: make(map[model.ClientID]*model.IdentityRecord),
		scores:     make(map[model.ClientID][]byte),
		rounds:     make(map[model.ClientID]*model.Round),
	}
}

var _ storage.Storage = (*Storage)(nil)

// Identity operations

func (s *Storage) SaveIdentity(ctx context.Context, rec *model.IdentityRecord, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *rec
	s.identities[rec.ClientID] = &stored
	return nil
}

func (s *Storage) GetIdentity(ctx context.Context, clientID model.ClientID) (*model.IdentityRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.identities[clientID]
	if !ok {
		return nil, model.ErrIdentityNotFound
	}
	out := *rec
	return &out, nil
}

// Score operations

func (s *Storage) AppendScore(ctx context.Context, clientID model.ClientID, entry model.ScoreEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	scores := model.DecodeScores(s.scores[clientID])
	scores = append(scores, entry)
	data, err := model.EncodeScores(scores)
	if err != nil {
		return err
	}
	s.scores[clientID] = data
	return nil
}

func (s *Storage) GetScores(ctx context.Context, clientID model.ClientID) ([]model.ScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.DecodeScores(s.scores[clientID]), nil
}

// SetRawScores overwrites the encoded score list for a client
func (s *Storage) SetRawScores(clientID model.ClientID, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[clientID] = data
}

// Round operations

func (s *Storage) SaveRound(ctx context.Context, round *model.Round) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds[round.ClientID] = copyRound(round)
	return nil
}

func (s *Storage) GetRound(ctx context.Context, clientID model.ClientID) (*model.Round, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	round, ok := s.rounds[clientID]
	if !ok {
		return nil, model.ErrRoundNotFound
	}
	return copyRound(round), nil
}

// Close is a no-op for memory storage
func (s *Storage) Close() error {
	return nil
}

// copyRound isolates stored rounds from caller mutation
func copyRound(r *model.Round) *model.Round {
	out := *r
	out.Questions = make([]model.RenderedQuestion, len(r.Questions))
	for i, q := range r.Questions {
		q.Answers = append([]model.RenderedAnswer(nil), q.Answers...)
		out.Questions[i] = q
	}
	return &out
}
