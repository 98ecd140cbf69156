package session

import (
	"sync"

	"github.com/fitdeck/fitdeck/internal/models"
)

// Manager owns the single current session.
type Manager struct {
	sink    MetricsSink
	current *Session
	opts    []Option
	mu      sync.Mutex
}

// NewManager returns a manager whose sessions report to sink. opts apply to
// every session it starts.
func NewManager(sink MetricsSink, opts ...Option) *Manager {
	return &Manager{
		sink: sink,
		opts: opts,
	}
}

// Start begins a new session from tmpl. It fails with ErrSessionActive while
// the current session is still active.
func (m *Manager) Start(tmpl models.Template, opts ...Option) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && m.current.State() == Active {
		return nil, errSessionActive.Fmt(m.current.Metadata().Name)
	}

	all := append(append([]Option{}, m.opts...), opts...)

	m.current = StartFrom(tmpl, m.sink, all...)

	return m.current, nil
}

// Current returns the current session, if any. A completed session remains
// current until the next one starts or it is disposed.
func (m *Manager) Current() (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.current, m.current != nil
}

// Finish finishes the current session.
func (m *Manager) Finish() (models.HistoricalWorkout, error) {
	s, ok := m.Current()
	if !ok {
		return models.HistoricalWorkout{}, errNoSession
	}

	return s.Finish()
}

// Dispose discards the current session if it is still active and forgets it.
func (m *Manager) Dispose() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return
	}

	if m.current.State() == Active {
		_ = m.current.Discard()
	}

	m.current = nil
}
