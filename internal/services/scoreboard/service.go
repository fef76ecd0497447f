package scoreboard

import (
	"context"
	"log/slog"

	"github.com/mcoot/triviaquiz/internal/model"
	"github.com/mcoot/triviaquiz/internal/storage"
)

// Service keeps each client's append-only leaderboard
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new scoreboard Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Record appends a result to the client's leaderboard
func (s *Service) Record(ctx context.Context, clientID model.ClientID, name string, score int) (model.ScoreEntry, error) {
	if clientID == "" {
		return model.ScoreEntry{}, model.ErrClientRequired
	}
	entry := model.ScoreEntry{Username: name, Score: score}

	if err := s.storage.AppendScore(ctx, clientID, entry); err != nil {
		s.logger.Error("failed to record score",
			slog.String("client_id", string(clientID)),
			slog.String("error", err.Error()),
		)
		return model.ScoreEntry{}, err
	}

	s.logger.Info("score recorded",
		slog.String("client_id", string(clientID)),
		slog.String("username", name),
		slog.Int("score", score),
	)
	return entry, nil
}

// All returns the client's leaderboard in submission order
func (s *Service) All(ctx context.Context, clientID model.ClientID) ([]model.ScoreEntry, error) {
	if clientID == "" {
		return []model.ScoreEntry{}, nil
	}
	return s.storage.GetScores(ctx, clientID)
}
