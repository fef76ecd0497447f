package clock

import "time"

// Clock provides the current time so expiry logic can be tested
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time in UTC so persisted timestamps compare cleanly
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}
