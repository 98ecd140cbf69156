// Package clock abstracts the current time and randomness so that
// date-stamping and recovery boosts can be controlled in tests.
package clock

import (
	"math/rand/v2"
	"time"
)

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// RealClock uses the system clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

var _ Clock = RealClock{}

// Rand draws integers in a closed range.
type Rand interface {
	// IntRange returns a value in [lo, hi].
	IntRange(lo, hi int) int
}

// DefaultRand uses the top-level math/rand/v2 source.
type DefaultRand struct{}

// IntRange returns a uniformly distributed value in [lo, hi].
func (DefaultRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + rand.IntN(hi-lo+1)
}

var _ Rand = DefaultRand{}
