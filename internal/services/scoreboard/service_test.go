package scoreboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/triviaquiz/internal/model"
	"github.com/mcoot/triviaquiz/internal/storage/memory"
	"github.com/mcoot/triviaquiz/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestAllEmpty() {
	scores, err := s.service.All(s.ctx, "client-1")
	s.Require().NoError(err)
	s.Empty(scores)
}

func (s *ServiceSuite) TestRecordThenAllEndsWithEntry() {
	entry, err := s.service.Record(s.ctx, "client-1", "bob", 1)
	s.Require().NoError(err)
	s.Equal(model.ScoreEntry{Username: "bob", Score: 1}, entry)

	scores, err := s.service.All(s.ctx, "client-1")
	s.Require().NoError(err)
	s.Require().NotEmpty(scores)
	s.Equal(entry, scores[len(scores)-1])
}

func (s *ServiceSuite) TestEachRecordGrowsByOne() {
	for i := 1; i <= 5; i++ {
		_, err := s.service.Record(s.ctx, "client-1", "alice", i)
		s.Require().NoError(err)

		scores, err := s.service.All(s.ctx, "client-1")
		s.Require().NoError(err)
		s.Len(scores, i)
	}
}

func (s *ServiceSuite) TestNoDeduplication() {
	_, _ = s.service.Record(s.ctx, "client-1", "alice", 4)
	_, _ = s.service.Record(s.ctx, "client-1", "alice", 4)

	scores, _ := s.service.All(s.ctx, "client-1")
	s.Equal([]model.ScoreEntry{{Username: "alice", Score: 4}, {Username: "alice", Score: 4}}, scores)
}

func (s *ServiceSuite) TestCorruptListTreatedAsEmpty() {
	s.storage.SetRawScores("client-1", []byte("null garbage"))

	scores, err := s.service.All(s.ctx, "client-1")
	s.Require().NoError(err)
	s.Empty(scores)

	_, err = s.service.Record(s.ctx, "client-1", "alice", 2)
	s.Require().NoError(err)
	scores, _ = s.service.All(s.ctx, "client-1")
	s.Len(scores, 1)
}

func (s *ServiceSuite) TestRecordRequiresClient() {
	_, err := s.service.Record(s.ctx, "", "alice", 2)
	s.ErrorIs(err, model.ErrClientRequired)
}
