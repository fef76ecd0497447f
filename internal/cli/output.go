package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	case ClientResult:
		fmt.Printf("Client: %s\n", v.ClientID)
	case IdentityResult:
		o.printIdentity(v)
	case ScoresResult:
		o.printScores(v)
	case SubmitResult:
		o.printSubmitResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// HealthResult response type (matches API)
type HealthResult struct {
	Status string `json:"status"`
}

// ClientResult response type
type ClientResult struct {
	ClientID string `json:"client_id"`
}

// Answer response type
type Answer struct {
	Label     string `json:"label"`
	IsCorrect bool   `json:"is_correct"`
}

// Question response type
type Question struct {
	Index      int      `json:"index"`
	Text       string   `json:"text"`
	Category   string   `json:"category,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Answers    []Answer `json:"answers"`
}

// Round response type
type Round struct {
	ID          string     `json:"id"`
	State       string     `json:"state"`
	FetchFailed bool       `json:"fetch_failed,omitempty"`
	Questions   []Question `json:"questions"`
}

// ScoreEntry response type
type ScoreEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// QuizResult response type
type QuizResult struct {
	State      string       `json:"state"`
	Loading    bool         `json:"loading"`
	Round      *Round       `json:"round,omitempty"`
	Username   string       `json:"username,omitempty"`
	NameLocked bool         `json:"name_locked"`
	Scores     []ScoreEntry `json:"scores"`
}

// SubmitRequest is the body of a submission
type SubmitRequest struct {
	Name    string         `json:"name"`
	Answers map[int]string `json:"answers"`
}

// SubmitResult response type
type SubmitResult struct {
	Username  string `json:"username"`
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	Message   string `json:"message"`
	NextRound Round  `json:"next_round"`
}

// IdentityResult response type
type IdentityResult struct {
	Username string `json:"username"`
	Locked   bool   `json:"locked"`
}

// ScoresResult response type
type ScoresResult struct {
	Scores []ScoreEntry `json:"scores"`
}

func (o *Output) printIdentity(i IdentityResult) {
	if !i.Locked {
		fmt.Println("No remembered player")
		return
	}
	fmt.Printf("Player: %s\n", i.Username)
}

func (o *Output) printScores(s ScoresResult) {
	if len(s.Scores) == 0 {
		fmt.Println("No scores yet")
		return
	}
	fmt.Printf("%-4s %-20s %s\n", "#", "Name", "Score")
	for i, e := range s.Scores {
		fmt.Printf("%-4d %-20s %d\n", i+1, e.Username, e.Score)
	}
}

func (o *Output) printSubmitResult(r SubmitResult) {
	fmt.Println(r.Message)
	fmt.Printf("%s answered %d of %d correctly\n", r.Username, r.Score, r.Total)
	if r.NextRound.FetchFailed {
		fmt.Println("The next round could not be loaded")
	}
}
