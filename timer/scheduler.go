package timer

import (
	"sync"
	"time"
)

// Scheduler runs fn repeatedly every d until the returned cancel function is
// called. Cancel must be safe to call more than once.
type Scheduler interface {
	Every(d time.Duration, fn func()) (cancel func())
}

// TickerScheduler drives callbacks from a time.Ticker in its own goroutine.
// If Dispatch is set, each callback is handed to it instead of being called
// directly, which lets an event loop run the callback on its own goroutine.
type TickerScheduler struct {
	Dispatch func(fn func())
}

// Every implements Scheduler.
func (s TickerScheduler) Every(d time.Duration, fn func()) func() {
	ticker := time.NewTicker(d)
	done := make(chan struct{})

	var once sync.Once

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if s.Dispatch != nil {
					s.Dispatch(fn)
				} else {
					fn()
				}
			}
		}
	}()

	return func() {
		once.Do(func() {
			close(done)
		})
	}
}

// ManualScheduler records scheduled callbacks without running them. Fire
// invokes every live callback once. It is intended for tests and for hosts
// that drive ticks themselves.
type ManualScheduler struct {
	mu      sync.Mutex
	entries map[int]func()
	next    int
}

// Every implements Scheduler.
func (s *ManualScheduler) Every(_ time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries == nil {
		s.entries = make(map[int]func())
	}

	id := s.next
	s.next++
	s.entries[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.entries, id)
	}
}

// Live returns the number of callbacks that have not been cancelled.
func (s *ManualScheduler) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Fire runs each live callback once.
func (s *ManualScheduler) Fire() {
	s.mu.Lock()

	fns := make([]func(), 0, len(s.entries))
	for _, fn := range s.entries {
		fns = append(fns, fn)
	}

	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
