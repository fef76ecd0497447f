package quiz

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mcoot/triviaquiz/internal/dependencies/clock"
	"github.com/mcoot/triviaquiz/internal/dependencies/random"
	"github.com/mcoot/triviaquiz/internal/model"
	"github.com/mcoot/triviaquiz/internal/services/identity"
	"github.com/mcoot/triviaquiz/internal/services/questions"
	"github.com/mcoot/triviaquiz/internal/services/shuffle"
	"github.com/mcoot/triviaquiz/internal/storage"
)

const roundIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// IdentityStore remembers the player name for a client
type IdentityStore interface {
	Remember(ctx context.Context, clientID model.ClientID, name string, ttl time.Duration) error
	Recall(ctx context.Context, clientID model.ClientID) (string, error)
	Forget(ctx context.Context, clientID model.ClientID) error
}

// ScoreBoard keeps the append-only leaderboard for a client
type ScoreBoard interface {
	Record(ctx context.Context, clientID model.ClientID, name string, score int) (model.ScoreEntry, error)
	All(ctx context.Context, clientID model.ClientID) ([]model.ScoreEntry, error)
}

// Config holds controller settings
type Config struct {
	// IdentityTTL is how long a submitted name is remembered
	IdentityTTL time.Duration
}

// DefaultConfig returns default controller configuration
func DefaultConfig() Config {
	return Config{
		IdentityTTL: identity.DefaultTTL,
	}
}

// Controller drives the fetch, answer, score, replay loop for each client
type Controller struct {
	storage    storage.Storage
	source     questions.Source
	shuffler   *shuffle.Shuffler
	identities IdentityStore
	scores     ScoreBoard
	clock      clock.Clock
	random     random.Random
	cfg        Config
	logger     *slog.Logger
}

// NewController creates a new quiz Controller
func NewController(
	storage storage.Storage,
	source questions.Source,
	shuffler *shuffle.Shuffler,
	identities IdentityStore,
	scores ScoreBoard,
	clock clock.Clock,
	random random.Random,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	if cfg.IdentityTTL <= 0 {
		cfg.IdentityTTL = DefaultConfig().IdentityTTL
	}
	return &Controller{
		storage:    storage,
		source:     source,
		shuffler:   shuffler,
		identities: identities,
		scores:     scores,
		clock:      clock,
		random:     random,
		cfg:        cfg,
		logger:     logger,
	}
}

// Start begins a new round for the client. The round is persisted in the
// loading state before the fetch and always leaves it afterwards, whether
// the fetch succeeded or not. A failed fetch is logged and produces a
// round with no questions rather than an error.
func (c *Controller) Start(ctx context.Context, clientID model.ClientID) (*model.Round, error) {
	if clientID == "" {
		return nil, model.ErrClientRequired
	}

	now := c.clock.Now()
	round := &model.Round{
		ID:        model.RoundID(c.random.String(12, roundIDAlphabet)),
		ClientID:  clientID,
		State:     model.QuizStateLoading,
		Questions: []model.RenderedQuestion{},
		StartedAt: now,
		UpdatedAt: now,
	}
	if err := c.storage.SaveRound(ctx, round); err != nil {
		return nil, err
	}

	fetched, fetchErr := c.source.Fetch(ctx)

	round.State = model.QuizStateAwaitingAnswers
	round.UpdatedAt = c.clock.Now()
	if fetchErr != nil {
		c.logger.Error("error fetching questions",
			slog.String("client_id", string(clientID)),
			slog.String("round_id", string(round.ID)),
			slog.String("error", fetchErr.Error()),
		)
		round.FetchFailed = true
	} else {
		round.Questions = c.shuffler.RenderQuestions(fetched)
	}

	// Leaving the loading state must happen even if the caller went away
	if err := c.storage.SaveRound(context.WithoutCancel(ctx), round); err != nil {
		return nil, err
	}

	c.logger.Info("round started",
		slog.String("client_id", string(clientID)),
		slog.String("round_id", string(round.ID)),
		slog.Int("question_count", len(round.Questions)),
	)
	return round, nil
}

// Current returns the client's round, or model.ErrRoundNotFound
func (c *Controller) Current(ctx context.Context, clientID model.ClientID) (*model.Round, error) {
	if clientID == "" {
		return nil, model.ErrClientRequired
	}
	return c.storage.GetRound(ctx, clientID)
}

// CurrentOrStart returns the round awaiting answers, starting one if needed
func (c *Controller) CurrentOrStart(ctx context.Context, clientID model.ClientID) (*model.Round, error) {
	round, err := c.Current(ctx, clientID)
	switch {
	case err == nil && round.State == model.QuizStateAwaitingAnswers:
		return round, nil
	case err == nil, errors.Is(err, model.ErrRoundNotFound):
		return c.Start(ctx, clientID)
	default:
		return nil, err
	}
}

// State returns the client's position in the quiz loop
func (c *Controller) State(ctx context.Context, clientID model.ClientID) (model.QuizState, error) {
	round, err := c.Current(ctx, clientID)
	if err != nil {
		if errors.Is(err, model.ErrRoundNotFound) {
			return model.QuizStateIdle, nil
		}
		return "", err
	}
	return round.State, nil
}

// Submit scores the client's answers and immediately starts the next round.
// selections maps question index to the chosen answer label. An empty name
// falls back to the remembered identity; if there is none the submission is
// rejected with model.ErrNameRequired and nothing changes.
func (c *Controller) Submit(ctx context.Context, clientID model.ClientID, name string, selections map[int]string) (*model.Result, error) {
	if clientID == "" {
		return nil, model.ErrClientRequired
	}

	name = identity.NormalizeName(name)
	if name == "" {
		recalled, err := c.identities.Recall(ctx, clientID)
		if err != nil {
			return nil, err
		}
		name = recalled
	}
	if name == "" {
		return nil, model.ErrNameRequired
	}

	round, err := c.storage.GetRound(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if round.State != model.QuizStateAwaitingAnswers {
		return nil, model.ErrRoundNotReady
	}

	score := Score(round, selections)

	if err := c.identities.Remember(ctx, clientID, name, c.cfg.IdentityTTL); err != nil {
		return nil, err
	}

	round.State = model.QuizStateScored
	round.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRound(ctx, round); err != nil {
		return nil, err
	}

	entry, err := c.scores.Record(ctx, clientID, name, score)
	if err != nil {
		return nil, err
	}

	c.logger.Info("round scored",
		slog.String("client_id", string(clientID)),
		slog.String("round_id", string(round.ID)),
		slog.String("username", name),
		slog.Int("score", score),
		slog.Int("total", len(round.Questions)),
	)

	next, err := c.Start(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return &model.Result{
		Entry:     entry,
		Total:     len(round.Questions),
		NextRound: next,
	}, nil
}

// NewPlayer clears the remembered name so a different player can enter one.
// It does not touch the current round.
func (c *Controller) NewPlayer(ctx context.Context, clientID model.ClientID) error {
	return c.identities.Forget(ctx, clientID)
}

// View assembles everything the UI needs for the client
func (c *Controller) View(ctx context.Context, clientID model.ClientID) (*model.QuizView, error) {
	var round *model.Round
	if clientID != "" {
		r, err := c.storage.GetRound(ctx, clientID)
		if err != nil && !errors.Is(err, model.ErrRoundNotFound) {
			return nil, err
		}
		round = r
	}

	name, err := c.identities.Recall(ctx, clientID)
	if err != nil {
		return nil, err
	}

	scores, err := c.scores.All(ctx, clientID)
	if err != nil {
		return nil, err
	}

	view := Describe(round, name, scores)
	return &view, nil
}
