package model

import "time"

// ClientID identifies a browser or CLI installation. It scopes the
// remembered identity, the leaderboard and the current round.
type ClientID string

// RoundID uniquely identifies a round
type RoundID string

// QuizState represents the phase of a client's quiz
type QuizState string

const (
	QuizStateIdle            QuizState = "idle"             // No round started yet
	QuizStateLoading         QuizState = "loading"          // Questions are being fetched
	QuizStateAwaitingAnswers QuizState = "awaiting_answers" // Questions shown, waiting for submit
	QuizStateScored          QuizState = "scored"           // Submission scored, next round pending
)

// Round is a single pass through a batch of questions
type Round struct {
	ID        RoundID
	ClientID  ClientID
	State     QuizState
	Questions []RenderedQuestion

	// FetchFailed is set when the question source errored; Questions is empty
	FetchFailed bool

	StartedAt time.Time
	UpdatedAt time.Time
}

// IsLoading reports whether the loading indicator should be shown
func (r *Round) IsLoading() bool {
	return r.State == QuizStateLoading
}

// Question returns the rendered question at index, if any
func (r *Round) Question(index int) (RenderedQuestion, bool) {
	if index < 0 || index >= len(r.Questions) {
		return RenderedQuestion{}, false
	}
	return r.Questions[index], true
}

// Result is the outcome of a scored submission
type Result struct {
	Entry     ScoreEntry
	Total     int    // Number of questions in the scored round
	NextRound *Round // The freshly started round
}
