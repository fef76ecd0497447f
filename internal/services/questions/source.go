// Package questions fetches batches of multiple-choice trivia questions.
package questions

import (
	"context"
	"fmt"
	"html"

	"github.com/mcoot/triviaquiz/internal/model"
)

// Batch defaults match the Open Trivia DB query the quiz was built around
const (
	DefaultAmount = 10
	DefaultType   = "multiple"
	DefaultURL    = "https://opentdb.com/api.php"
)

// Source supplies a fresh batch of questions for each round
type Source interface {
	Fetch(ctx context.Context) ([]model.Question, error)
}

// apiResponse is the Open Trivia DB wire shape, also used for question bank files
type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []apiQuestion `json:"results"`
}

type apiQuestion struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// toModel decodes the HTML entities the API embeds in its text fields
func (q apiQuestion) toModel() model.Question {
	incorrect := make([]string, len(q.IncorrectAnswers))
	for i, a := range q.IncorrectAnswers {
		incorrect[i] = html.UnescapeString(a)
	}
	return model.Question{
		Text:             html.UnescapeString(q.Question),
		Category:         html.UnescapeString(q.Category),
		Difficulty:       q.Difficulty,
		CorrectAnswer:    html.UnescapeString(q.CorrectAnswer),
		IncorrectAnswers: incorrect,
	}
}

// validate rejects questions that cannot be rendered as multiple choice
func (q apiQuestion) validate() error {
	if q.Question == "" {
		return fmt.Errorf("%w: question text is empty", model.ErrMalformedBatch)
	}
	if q.CorrectAnswer == "" {
		return fmt.Errorf("%w: correct answer is empty", model.ErrMalformedBatch)
	}
	if len(q.IncorrectAnswers) == 0 {
		return fmt.Errorf("%w: no incorrect answers", model.ErrMalformedBatch)
	}
	return nil
}

func convertAll(results []apiQuestion) ([]model.Question, error) {
	out := make([]model.Question, 0, len(results))
	for i, q := range results {
		if err := q.validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		out = append(out, q.toModel())
	}
	return out, nil
}
