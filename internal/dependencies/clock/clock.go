package clock

import "time"

// Clock provides the current time; swapped for mocks.MockClock in tests
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed on c since t
func Since(c Clock, t time.Time) time.Duration {
	return c.Now().Sub(t)
}
