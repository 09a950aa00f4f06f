// Package clock abstracts wall-clock access so that aggregates which stamp
// lifecycle timestamps (paid, confirmed, delivered, cancelled) can be tested
// deterministically. Production code injects System; tests inject Fixed.
package clock

import "time"

// Clock supplies the current time to domain code.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by time.Now.
type System struct{}

// NewSystem creates a Clock that reads the real wall clock.
func NewSystem() System {
	return System{}
}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock that always returns the same instant.
type Fixed struct {
	instant time.Time
}

// NewFixed creates a Clock frozen at the given instant.
func NewFixed(instant time.Time) Fixed {
	return Fixed{instant: instant}
}

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return f.instant
}
