package redis

import (
	"fmt"

	"github.com/mcoot/triviaquiz/internal/model"
)

// Key prefix for all quiz data
const keyPrefix = "trivia"

// identityKey returns the Redis key for a client's remembered name
func identityKey(clientID model.ClientID) string {
	return fmt.Sprintf("%s:identity:%s", keyPrefix, clientID)
}

// scoresKey returns the Redis key for a client's JSON-encoded leaderboard
func scoresKey(clientID model.ClientID) string {
	return fmt.Sprintf("%s:scores:%s", keyPrefix, clientID)
}

// roundKey returns the Redis key for a client's current round
func roundKey(clientID model.ClientID) string {
	return fmt.Sprintf("%s:round:%s", keyPrefix, clientID)
}
