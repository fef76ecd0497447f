package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeScores(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []ScoreEntry
	}{
		{"absent", "", []ScoreEntry{}},
		{"null", "null", []ScoreEntry{}},
		{"malformed", "{not json", []ScoreEntry{}},
		{"wrong shape", `{"username":"bob"}`, []ScoreEntry{}},
		{"empty list", "[]", []ScoreEntry{}},
		{"entries", `[{"username":"bob","score":1},{"username":"amy","score":7}]`, []ScoreEntry{
			{Username: "bob", Score: 1},
			{Username: "amy", Score: 7},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeScores([]byte(tt.data)))
		})
	}
}

func TestEncodeScoresNil(t *testing.T) {
	data, err := EncodeScores(nil)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestIdentityRecordActive(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	rec := &IdentityRecord{ClientID: "c", Username: "bob", ExpiresAt: now.Add(time.Hour)}
	assert.True(t, rec.Active(now))
	assert.False(t, rec.Active(now.Add(time.Hour)))

	forgotten := &IdentityRecord{ClientID: "c", ExpiresAt: time.Unix(0, 0).UTC()}
	assert.False(t, forgotten.Active(now))
}
