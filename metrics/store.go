// Package metrics holds the dashboard aggregate (workout history, recovery
// scores and goals), derives its computed fields and persists every change
// through a key-value store.
package metrics

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/fitdeck/fitdeck/internal/clock"
	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/internal/timeutil"
	"github.com/fitdeck/fitdeck/store"
)

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for date stamps.
func WithClock(c clock.Clock) Option {
	return func(s *Store) {
		s.clock = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// Store is the dashboard metrics aggregate. Mutations are last-writer-wins and
// are saved immediately; if a save fails the in-memory state still reflects
// the change and ErrNotDurable is returned.
type Store struct {
	kv    store.KV
	clock clock.Clock
	log   *slog.Logger
	newID func() string
	data  models.Dashboard
	mu    sync.RWMutex
}

// DefaultDashboard is the aggregate used when nothing has been saved yet.
func DefaultDashboard() models.Dashboard {
	r := models.Recovery{
		SleepQuality:   70,
		MuscleRecovery: 65,
		ReadinessScore: 68,
	}

	r.RecommendedIntensity = RecommendedIntensity(r.ReadinessScore)

	return models.Dashboard{
		History:  []models.HistoricalWorkout{},
		Goals:    []models.Goal{},
		Recovery: r,
	}
}

// Open loads the dashboard from kv, substituting the default aggregate when
// the key is missing or malformed.
func Open(kv store.KV, opts ...Option) (*Store, error) {
	s := &Store{
		kv:    kv,
		clock: clock.RealClock{},
		log:   slog.Default(),
		newID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	var d models.Dashboard

	found, err := store.LoadJSON(kv, store.DashboardKey, &d)
	if err != nil {
		return nil, errLoad.Wrap(err)
	}

	if !found {
		d = DefaultDashboard()
	}

	if d.History == nil {
		d.History = []models.HistoricalWorkout{}
	}

	if d.Goals == nil {
		d.Goals = []models.Goal{}
	}

	s.data = d

	return s, nil
}

func (s *Store) persistLocked() error {
	err := store.SaveJSON(s.kv, store.DashboardKey, s.data)
	if err != nil {
		s.log.Warn("dashboard not saved", slog.Any("error", err))
		return errNotDurable.Wrap(err)
	}

	return nil
}

// Snapshot returns a deep copy of the aggregate.
func (s *Store) Snapshot() models.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.Clone()
}

// History returns the workout history, most recent first.
func (s *Store) History() []models.HistoricalWorkout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.History)
}

// Recovery returns the recovery scores.
func (s *Store) Recovery() models.Recovery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.Recovery
}

// Goals returns the goals.
func (s *Store) Goals() []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.Goals)
}

// PrependHistory inserts rec at the head of the history. A missing id or
// date is filled in.
func (s *Store) PrependHistory(rec models.HistoricalWorkout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = s.newID()
	}

	if rec.Date == "" {
		rec.Date = timeutil.DayKey(s.clock.Now())
	}

	s.data.History = slices.Insert(s.data.History, 0, rec)

	return s.persistLocked()
}

// DeleteHistory removes the history entry with the given id.
func (s *Store) DeleteHistory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.data.History, func(h models.HistoricalWorkout) bool {
		return h.ID == id
	})
	if i < 0 {
		return errUnknownRecord.Fmt("workout", id)
	}

	s.data.History = slices.Delete(s.data.History, i, i+1)

	return s.persistLocked()
}

// DayStatus returns the stored day-status gauge. A missing or malformed value
// yields a zero gauge for today.
func (s *Store) DayStatus() (models.DayStatus, error) {
	var ds models.DayStatus

	found, err := store.LoadJSON(s.kv, store.DayStatusKey, &ds)
	if err != nil {
		return ds, err
	}

	if !found {
		ds = models.DayStatus{Date: timeutil.DayKey(s.clock.Now())}
	}

	return ds, nil
}

// SetDayStatus stores value (clamped to [0,100]) stamped with today's date.
func (s *Store) SetDayStatus(value int) (models.DayStatus, error) {
	ds := models.DayStatus{
		Date:  timeutil.DayKey(s.clock.Now()),
		Value: clamp(value),
	}

	if err := store.SaveJSON(s.kv, store.DayStatusKey, ds); err != nil {
		s.log.Warn("day status not saved", slog.Any("error", err))
		return ds, errNotDurable.Wrap(err)
	}

	return ds, nil
}

func clamp(v int) int {
	return min(max(v, 0), 100)
}
