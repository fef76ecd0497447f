package factory

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/triviaquiz/internal/model"
	"github.com/mcoot/triviaquiz/internal/services/identity"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

const client model.ClientID = "4b6f3c1e-0d4e-4c5e-9d0a-6a3e2f1b7c88"

// Test: several rounds back to back, name remembered after the first
func (s *IntegrationSuite) TestReplayLoop() {
	s.app.MockRandom.QueueString("ROUND1", "ROUND2", "ROUND3")

	// Step 1: first visit starts a round
	round, err := s.app.QuizController.CurrentOrStart(s.ctx, client)
	s.Require().NoError(err)
	s.Equal(model.RoundID("ROUND1"), round.ID)
	s.Len(round.Questions, 10)

	// Step 2: submit a perfect round
	result, err := s.app.QuizController.Submit(s.ctx, client, "alice", AllCorrect(10))
	s.Require().NoError(err)
	s.Equal(10, result.Entry.Score)
	s.Equal(model.RoundID("ROUND2"), result.NextRound.ID)

	// Step 3: name now locked, second submit with no name uses it
	view, err := s.app.QuizController.View(s.ctx, client)
	s.Require().NoError(err)
	s.True(view.NameLocked)
	s.Equal("alice", view.Username)

	result, err = s.app.QuizController.Submit(s.ctx, client, "", map[int]string{0: "right-0"})
	s.Require().NoError(err)
	s.Equal(model.ScoreEntry{Username: "alice", Score: 1}, result.Entry)

	// Step 4: leaderboard in submission order
	scores, err := s.app.ScoreboardService.All(s.ctx, client)
	s.Require().NoError(err)
	s.Equal([]model.ScoreEntry{
		{Username: "alice", Score: 10},
		{Username: "alice", Score: 1},
	}, scores)
	s.Equal(3, s.app.MockSource.Calls())
}

// Test: the remembered name expires after the identity TTL
func (s *IntegrationSuite) TestIdentityExpires() {
	_, err := s.app.QuizController.Start(s.ctx, client)
	s.Require().NoError(err)
	_, err = s.app.QuizController.Submit(s.ctx, client, "bob", nil)
	s.Require().NoError(err)

	s.app.MockClock.Advance(identity.DefaultTTL + time.Second)

	_, err = s.app.QuizController.Submit(s.ctx, client, "", nil)
	s.ErrorIs(err, model.ErrNameRequired)
}

// Test: a corrupted leaderboard reads as empty and can be appended to
func (s *IntegrationSuite) TestCorruptScoresRecover() {
	s.app.Memory.SetRawScores(client, []byte("not json"))

	scores, err := s.app.ScoreboardService.All(s.ctx, client)
	s.Require().NoError(err)
	s.Empty(scores)

	_, err = s.app.QuizController.Start(s.ctx, client)
	s.Require().NoError(err)
	_, err = s.app.QuizController.Submit(s.ctx, client, "carol", nil)
	s.Require().NoError(err)

	scores, err = s.app.ScoreboardService.All(s.ctx, client)
	s.Require().NoError(err)
	s.Equal([]model.ScoreEntry{{Username: "carol", Score: 0}}, scores)
}

// Test: clients are isolated from each other
func (s *IntegrationSuite) TestClientsIsolated() {
	other := model.ClientID("0e0f4d55-0f5c-4f63-bf3f-4a0b7e0d2a11")

	_, err := s.app.QuizController.Start(s.ctx, client)
	s.Require().NoError(err)
	_, err = s.app.QuizController.Submit(s.ctx, client, "dave", nil)
	s.Require().NoError(err)

	view, err := s.app.QuizController.View(s.ctx, other)
	s.Require().NoError(err)
	s.Empty(view.Username)
	s.Empty(view.Scores)

	_, err = s.app.QuizController.Submit(s.ctx, other, "erin", nil)
	s.True(errors.Is(err, model.ErrRoundNotFound))
}

func TestNewWithSQLite(t *testing.T) {
	app, err := New(Config{
		StorageType: StorageTypeSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "trivia.db"),
	})
	require.NoError(t, err)
	defer func() { _ = app.Storage.Close() }()

	require.NotNil(t, app.QuizController)
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	_, err := New(Config{StorageType: "etcd"})
	require.Error(t, err)
}

func TestNewRedisRequiresConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	require.Error(t, err)
}

func TestNewWithMissingQuestionFile(t *testing.T) {
	_, err := New(Config{QuestionsFile: filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)
}
