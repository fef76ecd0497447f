package request

// SubmitRequest is the request body for submitting answers.
// Answers maps question index to the chosen answer label.
type SubmitRequest struct {
	Name    string         `json:"name"`
	Answers map[int]string `json:"answers"`
}
