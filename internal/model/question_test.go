package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCorrectAnswer(t *testing.T) {
	q := RenderedQuestion{Answers: []RenderedAnswer{
		{Label: "Paris"},
		{Label: "Rome"},
		{Label: "Paris", IsCorrect: true},
	}}

	// An incorrect duplicate listed first does not hide the correct one
	assert.True(t, q.IsCorrectAnswer("Paris"))
	assert.False(t, q.IsCorrectAnswer("Rome"))
	assert.False(t, q.IsCorrectAnswer("Lyon"))
}
