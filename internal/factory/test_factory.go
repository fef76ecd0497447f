package factory

import (
	"fmt"
	"time"

	"github.com/mcoot/triviaquiz/internal/dependencies/mocks"
	"github.com/mcoot/triviaquiz/internal/model"
	"github.com/mcoot/triviaquiz/internal/services/quiz"
	"github.com/mcoot/triviaquiz/internal/storage/memory"
	"github.com/mcoot/triviaquiz/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockSource *mocks.MockQuestionSource

	// Memory is the concrete storage, for seeding corrupt data
	Memory *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The question source serves TestQuestions until told otherwise.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockSource := mocks.NewMockQuestionSource(TestQuestions(10)...)

	app := newWithDependencies(store, mockSource, mockClock, mockRandom, quiz.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockSource: mockSource,
		Memory:     store,
	}
}

// TestQuestions builds n questions whose correct answer to question i is "right-i"
func TestQuestions(n int) []model.Question {
	qs := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, model.Question{
			Text:             fmt.Sprintf("Test question %d?", i),
			Category:         "General Knowledge",
			Difficulty:       "easy",
			CorrectAnswer:    fmt.Sprintf("right-%d", i),
			IncorrectAnswers: []string{"wrong-a", "wrong-b", "wrong-c"},
		})
	}
	return qs
}

// AllCorrect returns selections answering every question in TestQuestions(n) correctly
func AllCorrect(n int) map[int]string {
	selections := make(map[int]string, n)
	for i := 0; i < n; i++ {
		selections[i] = fmt.Sprintf("right-%d", i)
	}
	return selections
}
