package model

import "errors"

// Common errors used across the application
var (
	// Client errors
	ErrClientRequired = errors.New("client id is required")

	// Identity errors
	ErrNameRequired     = errors.New("player name is required")
	ErrIdentityNotFound = errors.New("identity not found")

	// Round errors
	ErrRoundNotFound = errors.New("round not found")
	ErrRoundNotReady = errors.New("round is not awaiting answers")

	// Question source errors
	ErrFetchFailed    = errors.New("failed to fetch questions")
	ErrMalformedBatch = errors.New("malformed question batch")
)
