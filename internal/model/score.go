package model

import (
	"encoding/json"
	"fmt"
)

// ScoreEntry is one completed round on a client's leaderboard
type ScoreEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// DecodeScores parses a persisted score list.
// Absent or malformed data yields an empty list.
func DecodeScores(data []byte) []ScoreEntry {
	if len(data) == 0 {
		return []ScoreEntry{}
	}
	var scores []ScoreEntry
	if err := json.Unmarshal(data, &scores); err != nil || scores == nil {
		return []ScoreEntry{}
	}
	return scores
}

// EncodeScores serializes a score list for persistence
func EncodeScores(scores []ScoreEntry) ([]byte, error) {
	if scores == nil {
		scores = []ScoreEntry{}
	}
	return json.Marshal(scores)
}

// GameOverMessage is shown to the player after a round is scored
func GameOverMessage(score int) string {
	return fmt.Sprintf("Game over! Your score: %d", score)
}
