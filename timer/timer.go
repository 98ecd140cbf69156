// Package timer implements the workout countdown: a one-second clock that can
// be started, paused, resumed and reset, and that signals once when it runs
// out
package timer

import (
	"log/slog"
	"sync"
	"time"

	"github.com/fitdeck/fitdeck/internal/duration"
)

const tickInterval = time.Second

// State is the state of a countdown.
type State int

const (
	Idle State = iota
	Running
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	}

	return "unknown"
}

// Option configures a Timer.
type Option func(*Timer)

// WithScheduler sets the scheduler that drives ticks while the timer runs.
func WithScheduler(s Scheduler) Option {
	return func(t *Timer) {
		t.sched = s
	}
}

// WithOnComplete registers the function called when the countdown reaches
// zero. It runs outside the timer's lock, so it may call back into the timer.
func WithOnComplete(fn func()) Option {
	return func(t *Timer) {
		t.onComplete = fn
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		t.log = l
	}
}

// Timer is a countdown clock derived from a free-text duration.
type Timer struct {
	sched      Scheduler
	log        *slog.Logger
	diag       error
	onComplete func()
	// cancel is non-nil exactly while the timer is Running
	cancel       func()
	durationText string
	total        int
	remaining    int
	state        State
	// gen changes every time the timer leaves Running so that callbacks
	// scheduled for an earlier run are ignored
	gen uint64
	mu  sync.Mutex
}

// Snapshot is a consistent view of a timer.
type Snapshot struct {
	DurationText string  `json:"duration_text"`
	State        string  `json:"state"`
	Total        int     `json:"total_seconds"`
	Remaining    int     `json:"remaining_seconds"`
	Percent      float64 `json:"percent"`
}

// New creates an idle timer for durationText.
func New(durationText string, opts ...Option) *Timer {
	t := &Timer{
		durationText: durationText,
		sched:        TickerScheduler{},
		log:          slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	t.derive()

	return t
}

// derive recomputes total and remaining seconds from the duration text.
func (t *Timer) derive() {
	secs, err := duration.Parse(t.durationText)
	if err != nil {
		t.log.Warn("using default duration", slog.Any("diagnostic", err))
	}

	t.diag = err
	t.total = secs
	t.remaining = secs
}

// stopLocked cancels the scheduled callback, if any.
func (t *Timer) stopLocked() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}

	t.gen++
}

// Start begins or resumes the countdown. Only idle and paused timers can be
// started.
func (t *Timer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Idle && t.state != Paused {
		return errInvalidTransition.Fmt("start", t.state)
	}

	t.state = Running
	t.gen++

	gen := t.gen

	t.cancel = t.sched.Every(tickInterval, func() {
		t.tick(gen, true)
	})

	return nil
}

// Pause suspends a running countdown.
func (t *Timer) Pause() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Running {
		return errInvalidTransition.Fmt("pause", t.state)
	}

	t.stopLocked()
	t.state = Paused

	return nil
}

// Toggle pauses a running timer and starts any other startable one.
func (t *Timer) Toggle() error {
	if t.State() == Running {
		return t.Pause()
	}

	return t.Start()
}

// Tick advances a running countdown by one second. It reports whether the
// tick was applied; ticks outside Running are ignored.
func (t *Timer) Tick() bool {
	return t.tick(0, false)
}

func (t *Timer) tick(gen uint64, checkGen bool) bool {
	t.mu.Lock()

	if t.state != Running || (checkGen && gen != t.gen) {
		t.mu.Unlock()
		return false
	}

	if t.remaining > 0 {
		t.remaining--
	}

	var done bool

	if t.remaining == 0 {
		t.stopLocked()
		t.state = Finished
		done = true
	}

	onComplete := t.onComplete

	t.mu.Unlock()

	if done && onComplete != nil {
		onComplete()
	}

	return true
}

// Reset returns the timer to Idle with the full duration re-derived from the
// original text. It is valid in every state.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.derive()
	t.state = Idle
}

// Stop cancels the scheduled callback without finishing the countdown. A
// running timer becomes paused. It is used when the owner is discarded.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()

	if t.state == Running {
		t.state = Paused
	}
}

// SetDuration replaces the duration text and restarts the countdown at the
// new length, keeping the current state. Finished timers cannot be changed.
func (t *Timer) SetDuration(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == Finished {
		return errInvalidTransition.Fmt("change the duration of", t.state)
	}

	t.durationText = text
	t.derive()

	return nil
}

// State returns the current state.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// Remaining returns the seconds left.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.remaining
}

// Total returns the seconds computed at construction or the last reset.
func (t *Timer) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.total
}

// DurationText returns the text the timer was derived from.
func (t *Timer) DurationText() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.durationText
}

// Diagnostic returns the parse diagnostic for the current duration text, or
// nil if the text was recognised.
func (t *Timer) Diagnostic() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.diag
}

func progress(remaining, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(remaining) / float64(total) * 100
}

// ProgressPercent returns the remaining share of the total duration.
func (t *Timer) ProgressPercent() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return progress(t.remaining, t.total)
}

// Snapshot returns the timer's current values.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Snapshot{
		DurationText: t.durationText,
		State:        t.state.String(),
		Total:        t.total,
		Remaining:    t.remaining,
		Percent:      progress(t.remaining, t.total),
	}
}
