// Package tui renders the active workout in the terminal: the countdown with
// a progress bar, the exercise checklist and forms for editing both.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/multierr"

	"github.com/fitdeck/fitdeck/internal/clock"
	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/session"
)

// Options controls the interactive timer.
type Options struct {
	// OnFinish runs after the workout finishes, outside the event loop.
	OnFinish       func(rec models.HistoricalWorkout) error
	Clock          clock.Clock
	DarkTheme      bool
	TwentyFourHour bool
	AutoStart      bool
}

// tickMsg carries a countdown callback onto the event loop.
type tickMsg struct {
	fn func()
}

// finishedMsg reports that the session finished.
type finishedMsg struct {
	err error
	rec models.HistoricalWorkout
}

// hooksDoneMsg reports the outcome of the OnFinish hook.
type hooksDoneMsg struct {
	err error
}

type formKind int

const (
	noForm formKind = iota
	addExerciseForm
	editExerciseForm
	metadataForm
)

// formInput holds the values bound to the active form.
type formInput struct {
	name     string
	duration string
	meta     session.Metadata
}

// Model is the bubbletea model for an active session.
type Model struct {
	sess      *session.Session
	finished  <-chan finishedMsg
	opts      Options
	form      *huh.Form
	input     *formInput
	record    *models.HistoricalWorkout
	finishErr error
	hookErr   error
	lastErr   error
	editingID string
	styles    styles
	keys      keymap
	help      help.Model
	progress  progress.Model
	cursor    int
	formKind  formKind
	hooksDone bool
}

// New returns a model for sess. finished must receive the session's
// completion.
func New(sess *session.Session, finished <-chan finishedMsg, opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}

	return &Model{
		sess:     sess,
		finished: finished,
		opts:     opts,
		styles:   newStyles(opts.DarkTheme),
		keys:     defaultKeymap,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

// waitForFinish blocks until the session reports completion.
func waitForFinish(ch <-chan finishedMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.opts.AutoStart {
		m.setErr(m.sess.Start())
	}

	return waitForFinish(m.finished)
}

func (m *Model) setErr(err error) {
	m.lastErr = err
	if err != nil {
		slog.Warn("session action rejected", slog.Any("error", err))
	}
}

// Record returns the history record once the workout has finished.
func (m *Model) Record() (models.HistoricalWorkout, bool) {
	if m.record == nil {
		return models.HistoricalWorkout{}, false
	}

	return *m.record, true
}

// Err returns the combined persistence and hook error of a finished workout.
func (m *Model) Err() error {
	return multierr.Append(m.finishErr, m.hookErr)
}

func (m *Model) runHooks(rec models.HistoricalWorkout) tea.Cmd {
	if m.opts.OnFinish == nil {
		return nil
	}

	return func() tea.Msg {
		return hooksDoneMsg{err: m.opts.OnFinish(rec)}
	}
}

func (m *Model) clampCursor() {
	n := len(m.sess.Exercises())

	if m.cursor >= n {
		m.cursor = n - 1
	}

	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the id of the exercise under the cursor.
func (m *Model) selected() (string, bool) {
	ex := m.sess.Exercises()
	if len(ex) == 0 {
		return "", false
	}

	m.clampCursor()

	return ex[m.cursor].ID, true
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.record != nil {
		if key.Matches(msg, m.keys.quit, m.keys.done, m.keys.esc) {
			return m, tea.Quit
		}

		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.togglePlay):
		m.setErr(m.sess.Toggle())

	case key.Matches(msg, m.keys.finish):
		_, err := m.sess.Finish()
		if err != nil && !isPersistence(err) {
			m.setErr(err)
		}

	case key.Matches(msg, m.keys.reset):
		m.setErr(m.sess.ResetTimer())

	case key.Matches(msg, m.keys.up):
		m.cursor--
		m.clampCursor()

	case key.Matches(msg, m.keys.down):
		m.cursor++
		m.clampCursor()

	case key.Matches(msg, m.keys.done):
		if id, ok := m.selected(); ok {
			m.sess.ToggleExercise(id)
		}

	case key.Matches(msg, m.keys.remove):
		if id, ok := m.selected(); ok {
			m.sess.RemoveExercise(id)
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.add):
		return m, m.openAddExercise()

	case key.Matches(msg, m.keys.edit):
		return m, m.openEditExercise()

	case key.Matches(msg, m.keys.metadata):
		return m, m.openMetadata()

	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		msg.fn()
		return m, nil

	case finishedMsg:
		m.record = &msg.rec
		m.finishErr = msg.err

		return m, m.runHooks(msg.rec)

	case hooksDoneMsg:
		m.hooksDone = true
		m.hookErr = msg.err

		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		m.help.Width = msg.Width

		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("tui message", slog.String("msg", spew.Sdump(msg)))
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(msg)
	}

	return m, nil
}
