package identity

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/mcoot/triviaquiz/internal/dependencies/clock"
	"github.com/mcoot/triviaquiz/internal/model"
	"github.com/mcoot/triviaquiz/internal/storage"
)

// DefaultTTL is how long a remembered name lasts
const DefaultTTL = 7 * 24 * time.Hour

// Service remembers one player name per client with an expiry
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new identity Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// NormalizeName trims and NFC-normalises a player name
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// Remember stores name for the client, replacing any earlier record
func (s *Service) Remember(ctx context.Context, clientID model.ClientID, name string, ttl time.Duration) error {
	if clientID == "" {
		return model.ErrClientRequired
	}
	name = NormalizeName(name)
	if name == "" {
		return model.ErrNameRequired
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	rec := &model.IdentityRecord{
		ClientID:  clientID,
		Username:  name,
		ExpiresAt: s.clock.Now().Add(ttl),
	}
	if err := s.storage.SaveIdentity(ctx, rec, ttl); err != nil {
		s.logger.Error("failed to save identity",
			slog.String("client_id", string(clientID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// Recall returns the client's remembered name, or "" if none is active
func (s *Service) Recall(ctx context.Context, clientID model.ClientID) (string, error) {
	if clientID == "" {
		return "", nil
	}
	rec, err := s.storage.GetIdentity(ctx, clientID)
	if err != nil {
		if errors.Is(err, model.ErrIdentityNotFound) {
			return "", nil
		}
		return "", err
	}
	if !rec.Active(s.clock.Now()) {
		return "", nil
	}
	return rec.Username, nil
}

// Forget invalidates the client's identity immediately by writing a record
// that expired at the Unix epoch
func (s *Service) Forget(ctx context.Context, clientID model.ClientID) error {
	if clientID == "" {
		return model.ErrClientRequired
	}
	rec := &model.IdentityRecord{
		ClientID:  clientID,
		Username:  "",
		ExpiresAt: time.Unix(0, 0).UTC(),
	}
	if err := s.storage.SaveIdentity(ctx, rec, rec.ExpiresAt.Sub(s.clock.Now())); err != nil {
		return err
	}

	s.logger.Info("identity forgotten", slog.String("client_id", string(clientID)))
	return nil
}
