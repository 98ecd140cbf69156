// Package testutil holds fakes shared by fitdeck's tests
package testutil

import (
	"sync"
	"time"

	"github.com/fitdeck/fitdeck/store"
)

// FixedClock always returns T.
type FixedClock struct {
	T time.Time
}

// Now implements clock.Clock.
func (c FixedClock) Now() time.Time {
	return c.T
}

// FixedRand always returns V, clamped to the requested range.
type FixedRand struct {
	V int
}

// IntRange implements clock.Rand.
func (r FixedRand) IntRange(lo, hi int) int {
	return min(max(r.V, lo), hi)
}

// FailingKV is a store whose operations fail with the configured errors. A
// nil LoadErr makes every key absent.
type FailingKV struct {
	LoadErr error
	SaveErr error

	mu    sync.Mutex
	Saves int
}

// Load implements store.KV.
func (f *FailingKV) Load(string) ([]byte, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}

	return nil, store.ErrNotFound
}

// Save implements store.KV.
func (f *FailingKV) Save(string, []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Saves++

	return f.SaveErr
}

// Close implements store.KV.
func (f *FailingKV) Close() error {
	return nil
}
