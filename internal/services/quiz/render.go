package quiz

import "github.com/mcoot/triviaquiz/internal/model"

// Score counts the questions whose selected label is the correct answer.
// Unanswered questions and unknown labels score nothing.
func Score(round *model.Round, selections map[int]string) int {
	score := 0
	for index, label := range selections {
		q, ok := round.Question(index)
		if !ok {
			continue
		}
		if q.IsCorrectAnswer(label) {
			score++
		}
	}
	return score
}

// Describe builds the UI description for a round. A nil round means no
// round has started yet, which shows the loading indicator like a fetch
// in flight does.
func Describe(round *model.Round, username string, scores []model.ScoreEntry) model.QuizView {
	if scores == nil {
		scores = []model.ScoreEntry{}
	}
	view := model.QuizView{
		Loading:       true,
		Questions:     []model.RenderedQuestion{},
		Username:      username,
		NameLocked:    username != "",
		ShowNewPlayer: username != "",
		Scores:        scores,
	}

	if round == nil {
		return view
	}
	view.RoundID = round.ID

	if round.State == model.QuizStateAwaitingAnswers {
		view.Loading = false
		view.FetchFailed = round.FetchFailed
		view.Questions = round.Questions
	}
	return view
}
