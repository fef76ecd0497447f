package response

import (
	"time"

	"github.com/mcoot/triviaquiz/internal/model"
)

// Client is returned when a new client id is issued
type Client struct {
	ClientID string `json:"client_id"`
}

// Round represents a round in API responses
type Round struct {
	ID          string                   `json:"id"`
	State       string                   `json:"state"`
	FetchFailed bool                     `json:"fetch_failed,omitempty"`
	Questions   []model.RenderedQuestion `json:"questions"`
	StartedAt   time.Time                `json:"started_at"`
}

// RoundFromModel converts model.Round
func RoundFromModel(r *model.Round) Round {
	questions := r.Questions
	if questions == nil {
		questions = []model.RenderedQuestion{}
	}
	return Round{
		ID:          string(r.ID),
		State:       string(r.State),
		FetchFailed: r.FetchFailed,
		Questions:   questions,
		StartedAt:   r.StartedAt,
	}
}

// Quiz is the full view of a client's quiz
type Quiz struct {
	State         string             `json:"state"`
	Loading       bool               `json:"loading"`
	Round         *Round             `json:"round,omitempty"`
	Username      string             `json:"username,omitempty"`
	NameLocked    bool               `json:"name_locked"`
	ShowNewPlayer bool               `json:"show_new_player"`
	Scores        []model.ScoreEntry `json:"scores"`
}

// QuizFromModel converts a view plus the round it was built from
func QuizFromModel(state model.QuizState, round *model.Round, v *model.QuizView) Quiz {
	q := Quiz{
		State:         string(state),
		Loading:       v.Loading,
		Username:      v.Username,
		NameLocked:    v.NameLocked,
		ShowNewPlayer: v.ShowNewPlayer,
		Scores:        v.Scores,
	}
	if round != nil {
		r := RoundFromModel(round)
		q.Round = &r
	}
	return q
}

// SubmitResult is the response after submitting answers
type SubmitResult struct {
	Username  string `json:"username"`
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	Message   string `json:"message"`
	NextRound Round  `json:"next_round"`
}

// SubmitResultFromModel converts model.Result
func SubmitResultFromModel(r *model.Result) SubmitResult {
	return SubmitResult{
		Username:  r.Entry.Username,
		Score:     r.Entry.Score,
		Total:     r.Total,
		Message:   model.GameOverMessage(r.Entry.Score),
		NextRound: RoundFromModel(r.NextRound),
	}
}

// Identity is the remembered player name
type Identity struct {
	Username string `json:"username"`
	Locked   bool   `json:"locked"`
}

// Scores is a client's leaderboard
type Scores struct {
	Scores []model.ScoreEntry `json:"scores"`
}

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}
