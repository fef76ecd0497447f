package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/triviaquiz/internal/model"
)

func sampleRound(state model.QuizState) *model.Round {
	return &model.Round{
		ID:    "R1",
		State: state,
		Questions: []model.RenderedQuestion{
			{
				Index: 0,
				Text:  "Capital of France?",
				Answers: []model.RenderedAnswer{
					{Label: "Rome"},
					{Label: "Paris", IsCorrect: true},
				},
			},
			{
				Index: 1,
				Text:  "2 + 2?",
				Answers: []model.RenderedAnswer{
					{Label: "4", IsCorrect: true},
					{Label: "5"},
				},
			},
		},
	}
}

func TestScore(t *testing.T) {
	round := sampleRound(model.QuizStateAwaitingAnswers)

	tests := []struct {
		name       string
		selections map[int]string
		want       int
	}{
		{"nothing selected", nil, 0},
		{"one right", map[int]string{0: "Paris"}, 1},
		{"all right", map[int]string{0: "Paris", 1: "4"}, 2},
		{"one wrong", map[int]string{0: "Rome", 1: "4"}, 1},
		{"unknown label", map[int]string{0: "Lyon"}, 0},
		{"out of range index", map[int]string{5: "Paris", -1: "4"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(round, tt.selections))
		})
	}
}

func TestScoreDuplicateOfCorrectText(t *testing.T) {
	for _, answers := range [][]model.RenderedAnswer{
		{{Label: "Paris"}, {Label: "Paris", IsCorrect: true}},
		{{Label: "Paris", IsCorrect: true}, {Label: "Paris"}},
	} {
		round := &model.Round{
			State:     model.QuizStateAwaitingAnswers,
			Questions: []model.RenderedQuestion{{Index: 0, Answers: answers}},
		}
		assert.Equal(t, 1, Score(round, map[int]string{0: "Paris"}))
	}
}

func TestDescribe(t *testing.T) {
	scores := []model.ScoreEntry{{Username: "bob", Score: 1}}

	t.Run("no round shows loading", func(t *testing.T) {
		view := Describe(nil, "", nil)
		assert.True(t, view.Loading)
		assert.Empty(t, view.Questions)
		assert.NotNil(t, view.Scores)
		assert.False(t, view.NameLocked)
	})

	t.Run("loading round hides questions", func(t *testing.T) {
		view := Describe(sampleRound(model.QuizStateLoading), "", scores)
		assert.True(t, view.Loading)
		assert.Empty(t, view.Questions)
		assert.Equal(t, model.RoundID("R1"), view.RoundID)
	})

	t.Run("ready round shows questions", func(t *testing.T) {
		view := Describe(sampleRound(model.QuizStateAwaitingAnswers), "", scores)
		assert.False(t, view.Loading)
		assert.Len(t, view.Questions, 2)
		assert.Equal(t, scores, view.Scores)
	})

	t.Run("remembered name locks field", func(t *testing.T) {
		view := Describe(sampleRound(model.QuizStateAwaitingAnswers), "bob", scores)
		assert.Equal(t, "bob", view.Username)
		assert.True(t, view.NameLocked)
		assert.True(t, view.ShowNewPlayer)
	})

	t.Run("failed fetch", func(t *testing.T) {
		round := &model.Round{ID: "R2", State: model.QuizStateAwaitingAnswers, FetchFailed: true}
		view := Describe(round, "", nil)
		assert.False(t, view.Loading)
		assert.True(t, view.FetchFailed)
		assert.Empty(t, view.Questions)
	})
}
