// Package session implements the active workout: a countdown, an editable
// exercise list and workout metadata which, once finished, are folded into
// the dashboard metrics.
package session

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/fitdeck/fitdeck/internal/clock"
	"github.com/fitdeck/fitdeck/internal/duration"
	"github.com/fitdeck/fitdeck/internal/exercise"
	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/internal/timeutil"
	"github.com/fitdeck/fitdeck/timer"
)

const (
	// RecoveryFocus is the focus that boosts recovery scores on completion.
	RecoveryFocus = "Recovery"
	// DefaultTarget is recorded when a workout has no focus.
	DefaultTarget = "General"
	// DefaultName is used for templates without a name.
	DefaultName = "Custom Workout"

	DefaultBoostMin = 10
	DefaultBoostMax = 20
)

// State is the lifecycle state of a session.
type State int

const (
	Active State = iota
	Completed
	Discarded
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Completed:
		return "completed"
	case Discarded:
		return "discarded"
	}

	return "unknown"
}

// MetricsSink receives the result of a finished session.
type MetricsSink interface {
	PrependHistory(rec models.HistoricalWorkout) error
	BoostRecovery(amount int) error
}

// Metadata is the editable description of a workout.
type Metadata struct {
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Difficulty  string `json:"difficulty"`
	Target      string `json:"target"`
	Equipment   string `json:"equipment,omitempty"`
	Description string `json:"description,omitempty"`
}

// FinishFunc is called after a session finishes, manually or because its
// countdown ran out. err holds any best-effort persistence failure.
type FinishFunc func(rec models.HistoricalWorkout, err error)

type settings struct {
	clock       clock.Clock
	rand        clock.Rand
	intensities *models.IntensityMap
	sched       timer.Scheduler
	log         *slog.Logger
	onFinish    FinishFunc
	boostMin    int
	boostMax    int
}

// Option configures a Session.
type Option func(*settings)

// WithClock sets the clock used to date history records.
func WithClock(c clock.Clock) Option {
	return func(s *settings) {
		s.clock = c
	}
}

// WithRand sets the source for recovery boosts.
func WithRand(r clock.Rand) Option {
	return func(s *settings) {
		s.rand = r
	}
}

// WithBoostRange sets the closed range of recovery boosts.
func WithBoostRange(lo, hi int) Option {
	return func(s *settings) {
		s.boostMin, s.boostMax = lo, hi
	}
}

// WithIntensityMap sets how difficulty labels map to intensities.
func WithIntensityMap(m *models.IntensityMap) Option {
	return func(s *settings) {
		s.intensities = m
	}
}

// WithScheduler sets the scheduler that drives the countdown.
func WithScheduler(sched timer.Scheduler) Option {
	return func(s *settings) {
		s.sched = sched
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.log = l
	}
}

// WithOnFinish registers the host's completion callback.
func WithOnFinish(fn FinishFunc) Option {
	return func(s *settings) {
		s.onFinish = fn
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		clock:       clock.RealClock{},
		rand:        clock.DefaultRand{},
		intensities: models.DefaultIntensityMap(),
		sched:       timer.TickerScheduler{},
		log:         slog.Default(),
		boostMin:    DefaultBoostMin,
		boostMax:    DefaultBoostMax,
	}

	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// Session is an active workout.
type Session struct {
	cfg       settings
	sink      MetricsSink
	timer     *timer.Timer
	exercises *exercise.List
	record    *models.HistoricalWorkout
	id        string
	meta      Metadata
	state     State
	mu        sync.Mutex
}

// View is a consistent snapshot of a session.
type View struct {
	ID        string              `json:"id"`
	State     string              `json:"state"`
	Metadata  Metadata            `json:"metadata"`
	Intensity models.Intensity    `json:"intensity"`
	Timer     timer.Snapshot      `json:"timer"`
	Exercises []exercise.Exercise `json:"exercises"`
}

// StartFrom creates an active session from a template. The countdown is idle
// until Start is called. A duration without a unit is taken as minutes.
func StartFrom(
	tmpl models.Template,
	sink MetricsSink,
	opts ...Option,
) *Session {
	s := &Session{
		cfg:       newSettings(opts),
		sink:      sink,
		exercises: exercise.NewList(),
		id:        uuid.NewString(),
		state:     Active,
	}

	name := strings.TrimSpace(tmpl.Name)
	if name == "" {
		name = DefaultName
	}

	s.meta = Metadata{
		Name:        name,
		Duration:    duration.Normalise(tmpl.Duration),
		Difficulty:  tmpl.Level,
		Target:      tmpl.Focus,
		Equipment:   tmpl.Equipment,
		Description: tmpl.Description,
	}

	for _, e := range tmpl.Details.Exercises {
		if _, ok := s.exercises.Add(e.Name, e.Duration); !ok {
			s.cfg.log.Warn(
				"skipping incomplete template exercise",
				slog.String("template", name),
				slog.String("exercise", e.Name),
			)
		}
	}

	// the timer keeps the given text so its parse diagnostic is reported
	s.timer = timer.New(
		duration.WithUnit(tmpl.Duration),
		timer.WithScheduler(s.cfg.sched),
		timer.WithLogger(s.cfg.log),
		timer.WithOnComplete(s.expired),
	)

	s.cfg.log.Info(
		"workout started",
		slog.String("id", s.id),
		slog.String("name", name),
		slog.String("duration", s.meta.Duration),
	)

	return s
}

// expired finishes the session when the countdown runs out.
func (s *Session) expired() {
	if _, err := s.Finish(); err != nil && !errors.Is(err, ErrNotActive) {
		s.cfg.log.Warn("automatic finish", slog.Any("error", err))
	}
}

// ID returns the session's identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Metadata returns the current metadata.
func (s *Session) Metadata() Metadata {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.meta
}

// Timer exposes the countdown for reading.
func (s *Session) Timer() *timer.Timer {
	return s.timer
}

// Diagnostic returns the duration parse diagnostic, if the default duration
// is in use.
func (s *Session) Diagnostic() error {
	return s.timer.Diagnostic()
}

// Record returns the history record of a completed session.
func (s *Session) Record() (models.HistoricalWorkout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record == nil {
		return models.HistoricalWorkout{}, false
	}

	return *s.record, true
}

func (s *Session) activeLocked(op string) error {
	if s.state != Active {
		return errNotActive.Fmt(op, s.state)
	}

	return nil
}

// Start starts or resumes the countdown.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.activeLocked("start"); err != nil {
		return err
	}

	return s.timer.Start()
}

// Pause pauses the countdown.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.activeLocked("pause"); err != nil {
		return err
	}

	return s.timer.Pause()
}

// Toggle pauses a running countdown or starts a stopped one.
func (s *Session) Toggle() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.activeLocked("toggle"); err != nil {
		return err
	}

	return s.timer.Toggle()
}

// ResetTimer restores the full duration and stops the countdown.
func (s *Session) ResetTimer() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.activeLocked("reset"); err != nil {
		return err
	}

	s.timer.Reset()

	return nil
}

// Discard stops the countdown and abandons the session without recording it.
func (s *Session) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.activeLocked("discard"); err != nil {
		return err
	}

	s.timer.Stop()
	s.state = Discarded

	s.cfg.log.Info("workout discarded", slog.String("id", s.id))

	return nil
}

func (s *Session) intensityLocked() models.Intensity {
	in, ok := s.cfg.intensities.Resolve(s.meta.Difficulty)
	if !ok {
		s.cfg.log.Warn(
			"unknown difficulty, using fallback intensity",
			slog.String("difficulty", s.meta.Difficulty),
			slog.String("intensity", string(in)),
		)
	}

	return in
}

func (s *Session) targetLocked() string {
	if strings.TrimSpace(s.meta.Target) == "" {
		return DefaultTarget
	}

	return s.meta.Target
}

// Finish records the workout in the history, boosts recovery for recovery
// workouts and completes the session. It is valid in any countdown state.
// Persistence failures do not stop the session from completing and are
// returned combined.
func (s *Session) Finish() (models.HistoricalWorkout, error) {
	s.mu.Lock()

	if err := s.activeLocked("finish"); err != nil {
		s.mu.Unlock()
		return models.HistoricalWorkout{}, err
	}

	s.timer.Stop()

	rec := models.HistoricalWorkout{
		ID:        uuid.NewString(),
		Name:      s.meta.Name,
		Date:      timeutil.DayKey(s.cfg.clock.Now()),
		Duration:  s.meta.Duration,
		Intensity: s.intensityLocked(),
		Target:    s.targetLocked(),
	}

	var err error

	err = multierr.Append(err, s.sink.PrependHistory(rec))

	if strings.EqualFold(strings.TrimSpace(s.meta.Target), RecoveryFocus) {
		boost := s.cfg.rand.IntRange(s.cfg.boostMin, s.cfg.boostMax)
		err = multierr.Append(err, s.sink.BoostRecovery(boost))

		s.cfg.log.Info("recovery boosted", slog.Int("amount", boost))
	}

	s.record = &rec
	s.state = Completed

	onFinish := s.cfg.onFinish

	s.mu.Unlock()

	s.cfg.log.Info(
		"workout finished",
		slog.String("id", s.id),
		slog.String("record", rec.ID),
		slog.String("intensity", string(rec.Intensity)),
	)

	if onFinish != nil {
		onFinish(rec, err)
	}

	return rec, err
}

// EditMetadata replaces the workout's metadata. A changed duration restarts
// the countdown at the new length.
func (s *Session) EditMetadata(m Metadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.activeLocked("edit"); err != nil {
		return err
	}

	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		m.Name = s.meta.Name
	}

	given := duration.WithUnit(m.Duration)
	m.Duration = duration.Normalise(given)

	if m.Duration != s.meta.Duration {
		if err := s.timer.SetDuration(given); err != nil {
			return err
		}
	}

	s.meta = m

	return nil
}

// AddExercise appends an exercise. Both fields must be non-empty.
func (s *Session) AddExercise(name, durationOrReps string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Active {
		return "", false
	}

	return s.exercises.Add(name, durationOrReps)
}

// EditExercise puts an exercise into editing mode.
func (s *Session) EditExercise(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state == Active && s.exercises.Edit(id)
}

// CancelExerciseEdit leaves editing mode without changes.
func (s *Session) CancelExerciseEdit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.exercises.CancelEdit(id)
}

// UpdateExercise changes an exercise that is in editing mode.
func (s *Session) UpdateExercise(id, name, durationOrReps string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state == Active && s.exercises.Update(id, name, durationOrReps)
}

// RemoveExercise deletes an exercise.
func (s *Session) RemoveExercise(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state == Active && s.exercises.Remove(id)
}

// ToggleExercise flips an exercise's completed flag.
func (s *Session) ToggleExercise(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state == Active && s.exercises.ToggleCompleted(id)
}

// Exercises returns the exercise list in display order.
func (s *Session) Exercises() []exercise.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.exercises.Items()
}

// View returns a snapshot of the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	in, _ := s.cfg.intensities.Resolve(s.meta.Difficulty)

	return View{
		ID:        s.id,
		State:     s.state.String(),
		Metadata:  s.meta,
		Intensity: in,
		Timer:     s.timer.Snapshot(),
		Exercises: s.exercises.Items(),
	}
}
