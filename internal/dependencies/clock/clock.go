package clock

import "time"

// Clock stamps finished games in the history. Tests use mocks.MockClock so
// summaries carry a known completion time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock
type RealClock struct{}

// New returns the clock the server runs with
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time in UTC, which is how summaries are stored
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}
