package model

// QuizView describes everything the UI shows for a client
type QuizView struct {
	Loading     bool
	FetchFailed bool
	RoundID     RoundID
	Questions   []RenderedQuestion

	// Username is the remembered name; NameLocked disables editing it
	Username      string
	NameLocked    bool
	ShowNewPlayer bool

	Scores []ScoreEntry
}
