package model

// Question is a single multiple-choice trivia question as fetched
type Question struct {
	Text             string
	Category         string
	Difficulty       string
	CorrectAnswer    string
	IncorrectAnswers []string
}

// RenderedAnswer is one selectable answer for a rendered question
type RenderedAnswer struct {
	Label     string `json:"label"`
	IsCorrect bool   `json:"is_correct"`
}

// RenderedQuestion is a question with its answers in display order
type RenderedQuestion struct {
	Index      int              `json:"index"`
	Text       string           `json:"text"`
	Category   string           `json:"category,omitempty"`
	Difficulty string           `json:"difficulty,omitempty"`
	Answers    []RenderedAnswer `json:"answers"`
}

// CorrectCount returns how many answers are flagged correct
func (q RenderedQuestion) CorrectCount() int {
	n := 0
	for _, a := range q.Answers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}

// IsCorrectAnswer reports whether label is the correct answer for this question.
// Answers are matched by text, so a duplicate of the correct text also counts.
func (q RenderedQuestion) IsCorrectAnswer(label string) bool {
	for _, a := range q.Answers {
		if a.Label == label && a.IsCorrect {
			return true
		}
	}
	return false
}
