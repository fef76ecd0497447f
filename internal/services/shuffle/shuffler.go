// Package shuffle puts each question's answers into a random display order.
package shuffle

import (
	"sort"

	"github.com/mcoot/triviaquiz/internal/dependencies/random"
	"github.com/mcoot/triviaquiz/internal/model"
)

// Shuffler randomises answer order with a coin-flip comparator.
// The resulting permutation is not uniformly distributed.
type Shuffler struct {
	random random.Random
}

// New creates a new Shuffler
func New(rnd random.Random) *Shuffler {
	return &Shuffler{random: rnd}
}

// Shuffle returns the correct answer and every incorrect answer in random
// order, with exactly one entry flagged correct. Inputs are not modified.
func (s *Shuffler) Shuffle(correct string, incorrect []string) []model.RenderedAnswer {
	answers := make([]model.RenderedAnswer, 0, 1+len(incorrect))
	answers = append(answers, model.RenderedAnswer{Label: correct, IsCorrect: true})
	for _, label := range incorrect {
		answers = append(answers, model.RenderedAnswer{Label: label})
	}

	sort.SliceStable(answers, func(i, j int) bool {
		return s.random.Intn(2) == 0
	})

	return answers
}

// RenderQuestions shuffles the answers of every question in a batch
func (s *Shuffler) RenderQuestions(questions []model.Question) []model.RenderedQuestion {
	out := make([]model.RenderedQuestion, 0, len(questions))
	for i, q := range questions {
		out = append(out, model.RenderedQuestion{
			Index:      i,
			Text:       q.Text,
			Category:   q.Category,
			Difficulty: q.Difficulty,
			Answers:    s.Shuffle(q.CorrectAnswer, q.IncorrectAnswers),
		})
	}
	return out
}
