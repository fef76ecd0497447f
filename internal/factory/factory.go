package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mcoot/triviaquiz/internal/dependencies/clock"
	"github.com/mcoot/triviaquiz/internal/dependencies/random"
	"github.com/mcoot/triviaquiz/internal/services/identity"
	"github.com/mcoot/triviaquiz/internal/services/questions"
	"github.com/mcoot/triviaquiz/internal/services/quiz"
	"github.com/mcoot/triviaquiz/internal/services/scoreboard"
	"github.com/mcoot/triviaquiz/internal/services/shuffle"
	"github.com/mcoot/triviaquiz/internal/storage"
	"github.com/mcoot/triviaquiz/internal/storage/memory"
	redisstorage "github.com/mcoot/triviaquiz/internal/storage/redis"
	sqlitestorage "github.com/mcoot/triviaquiz/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock          clock.Clock
	Random         random.Random
	QuestionSource questions.Source

	// Services
	Shuffler          *shuffle.Shuffler
	IdentityService   *identity.Service
	ScoreboardService *scoreboard.Service
	QuizController    *quiz.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string

	// QuestionsURL overrides the Open Trivia DB endpoint (optional)
	QuestionsURL string
	// QuestionsFile serves questions from a local bank instead of the remote API
	QuestionsFile string
	// HTTPClient is used for the remote API (optional)
	HTTPClient *http.Client

	// IdentityTTL is how long a player name is remembered
	// If zero, defaults to 7 days
	IdentityTTL time.Duration
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	source, err := newQuestionSource(cfg, rnd, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	quizCfg := quiz.DefaultConfig()
	if cfg.IdentityTTL > 0 {
		quizCfg.IdentityTTL = cfg.IdentityTTL
	}

	return newWithDependencies(store, source, clk, rnd, quizCfg, logger), nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		return sqlitestorage.Open(context.Background(), cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}
}

func newQuestionSource(cfg Config, rnd random.Random, logger *slog.Logger) (questions.Source, error) {
	if cfg.QuestionsFile != "" {
		source := questions.NewFileSource(rnd, questions.DefaultAmount, logger)
		if err := source.LoadFromFile(cfg.QuestionsFile); err != nil {
			return nil, fmt.Errorf("loading question bank: %w", err)
		}
		return source, nil
	}

	httpCfg := questions.DefaultHTTPConfig()
	if cfg.QuestionsURL != "" {
		httpCfg.BaseURL = cfg.QuestionsURL
	}
	return questions.NewHTTPSource(httpCfg, cfg.HTTPClient, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	source questions.Source,
	clk clock.Clock,
	rnd random.Random,
	quizCfg quiz.Config,
	logger *slog.Logger,
) *App {
	shuffler := shuffle.New(rnd)
	identityService := identity.New(store, clk, logger)
	scoreboardService := scoreboard.New(store, logger)
	quizController := quiz.NewController(
		store,
		source,
		shuffler,
		identityService,
		scoreboardService,
		clk,
		rnd,
		quizCfg,
		logger,
	)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		QuestionSource:    source,
		Shuffler:          shuffler,
		IdentityService:   identityService,
		ScoreboardService: scoreboardService,
		QuizController:    quizController,
	}
}
