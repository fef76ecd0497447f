package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/triviaquiz/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.RoundTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Identity tests

func (s *StorageSuite) TestSaveAndGetIdentity() {
	rec := &model.IdentityRecord{
		ClientID:  "client-1",
		Username:  "alice",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour).UTC(),
	}

	err := s.storage.SaveIdentity(s.ctx, rec, 7*24*time.Hour)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetIdentity(s.ctx, "client-1")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)
	s.True(rec.ExpiresAt.Equal(retrieved.ExpiresAt))
}

func (s *StorageSuite) TestIdentityHasKeyTTL() {
	rec := &model.IdentityRecord{ClientID: "client-1", Username: "alice"}
	_ = s.storage.SaveIdentity(s.ctx, rec, 7*24*time.Hour)

	s.Equal(7*24*time.Hour, s.mini.TTL(identityKey("client-1")))
}

func (s *StorageSuite) TestIdentityExpiresWithKey() {
	rec := &model.IdentityRecord{ClientID: "client-1", Username: "alice"}
	_ = s.storage.SaveIdentity(s.ctx, rec, time.Hour)

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetIdentity(s.ctx, "client-1")
	s.ErrorIs(err, model.ErrIdentityNotFound)
}

func (s *StorageSuite) TestExpiredIdentityDeletesKey() {
	_ = s.storage.SaveIdentity(s.ctx, &model.IdentityRecord{ClientID: "client-1", Username: "alice"}, time.Hour)

	err := s.storage.SaveIdentity(s.ctx, &model.IdentityRecord{ClientID: "client-1", ExpiresAt: time.Unix(0, 0)}, -time.Second)
	s.Require().NoError(err)

	s.False(s.mini.Exists(identityKey("client-1")))
	_, err = s.storage.GetIdentity(s.ctx, "client-1")
	s.ErrorIs(err, model.ErrIdentityNotFound)
}

// Score tests

func (s *StorageSuite) TestGetScoresEmpty() {
	scores, err := s.storage.GetScores(s.ctx, "client-1")
	s.Require().NoError(err)
	s.Empty(scores)
}

func (s *StorageSuite) TestAppendScorePreservesOrder() {
	s.Require().NoError(s.storage.AppendScore(s.ctx, "client-1", model.ScoreEntry{Username: "alice", Score: 3}))
	s.Require().NoError(s.storage.AppendScore(s.ctx, "client-1", model.ScoreEntry{Username: "bob", Score: 7}))

	scores, err := s.storage.GetScores(s.ctx, "client-1")
	s.Require().NoError(err)
	s.Equal([]model.ScoreEntry{
		{Username: "alice", Score: 3},
		{Username: "bob", Score: 7},
	}, scores)
}

func (s *StorageSuite) TestScoresStoredAsJSONArray() {
	_ = s.storage.AppendScore(s.ctx, "client-1", model.ScoreEntry{Username: "alice", Score: 3})

	raw, err := s.mini.Get(scoresKey("client-1"))
	s.Require().NoError(err)
	s.JSONEq(`[{"username":"alice","score":3}]`, raw)
}

func (s *StorageSuite) TestCorruptScoresReadAsEmpty() {
	s.Require().NoError(s.mini.Set(scoresKey("client-1"), "definitely not json"))

	scores, err := s.storage.GetScores(s.ctx, "client-1")
	s.Require().NoError(err)
	s.Empty(scores)
}

func (s *StorageSuite) TestConcurrentAppendsKeepEveryEntry() {
	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			_ = s.storage.AppendScore(s.ctx, "client-1", model.ScoreEntry{Username: "p", Score: score})
		}(i)
	}
	wg.Wait()

	scores, err := s.storage.GetScores(s.ctx, "client-1")
	s.Require().NoError(err)
	s.Len(scores, writers)
}

// Round tests

func (s *StorageSuite) TestSaveAndGetRound() {
	round := &model.Round{
		ID:       "ROUND1",
		ClientID: "client-1",
		State:    model.QuizStateAwaitingAnswers,
		Questions: []model.RenderedQuestion{
			{Index: 0, Text: "Capital of France?", Answers: []model.RenderedAnswer{{Label: "Paris", IsCorrect: true}}},
		},
	}

	s.Require().NoError(s.storage.SaveRound(s.ctx, round))

	retrieved, err := s.storage.GetRound(s.ctx, "client-1")
	s.Require().NoError(err)
	s.Equal(round.ID, retrieved.ID)
	s.Equal(round.Questions, retrieved.Questions)
	s.Equal(time.Hour, s.mini.TTL(roundKey("client-1")))
}

func (s *StorageSuite) TestGetRoundNotFound() {
	_, err := s.storage.GetRound(s.ctx, "client-1")
	s.ErrorIs(err, model.ErrRoundNotFound)
}
