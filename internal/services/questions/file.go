package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/mcoot/triviaquiz/internal/dependencies/random"
	"github.com/mcoot/triviaquiz/internal/model"
)

// FileSource serves batches sampled from a local question bank.
// The bank uses the same JSON shape as the remote API.
type FileSource struct {
	random random.Random
	amount int
	logger *slog.Logger

	mu   sync.RWMutex
	bank []model.Question
}

// NewFileSource creates an empty FileSource; load a bank before fetching
func NewFileSource(rnd random.Random, amount int, logger *slog.Logger) *FileSource {
	if amount <= 0 {
		amount = DefaultAmount
	}
	return &FileSource{
		random: rnd,
		amount: amount,
		logger: logger,
	}
}

var _ Source = (*FileSource)(nil)

// LoadFromFile reads a question bank from disk
func (s *FileSource) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if err := s.Load(file); err != nil {
		return fmt.Errorf("load question bank %s: %w", path, err)
	}
	return nil
}

// Load reads a question bank from r, replacing any previous bank
func (s *FileSource) Load(r io.Reader) error {
	var body apiResponse
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return fmt.Errorf("%w: %w", model.ErrMalformedBatch, err)
	}

	bank, err := convertAll(body.Results)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.bank = bank
	s.mu.Unlock()

	s.logger.Info("question bank loaded", slog.Int("count", len(bank)))
	return nil
}

// Size returns the number of questions in the bank
func (s *FileSource) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bank)
}

// Fetch samples a batch of distinct questions from the bank
func (s *FileSource) Fetch(ctx context.Context) ([]model.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.bank) < s.amount {
		return nil, fmt.Errorf("%w: bank has %d questions, need %d", model.ErrFetchFailed, len(s.bank), s.amount)
	}

	indices := s.random.Sample(len(s.bank), s.amount)
	out := make([]model.Question, 0, len(indices))
	for _, i := range indices {
		q := s.bank[i]
		q.IncorrectAnswers = append([]string(nil), q.IncorrectAnswers...)
		out = append(out, q)
	}
	return out, nil
}
