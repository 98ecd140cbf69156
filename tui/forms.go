package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/fitdeck/fitdeck/internal/duration"
	"github.com/fitdeck/fitdeck/metrics"
)

var errRequired = errors.New("required")

func required(s string) error {
	if s == "" {
		return errRequired
	}

	return nil
}

// isPersistence reports whether err only describes a save failure.
func isPersistence(err error) bool {
	return errors.Is(err, metrics.ErrNotDurable)
}

func (m *Model) exerciseForm(title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("Push-ups").
				Validate(required).
				Value(&m.input.name),
			huh.NewInput().
				Title("Duration or reps").
				Placeholder("3x12").
				Validate(required).
				Value(&m.input.duration),
		),
	).WithShowHelp(false)
}

func (m *Model) openAddExercise() tea.Cmd {
	m.input = &formInput{}
	m.formKind = addExerciseForm
	m.form = m.exerciseForm("New exercise")

	return m.form.Init()
}

func (m *Model) openEditExercise() tea.Cmd {
	id, ok := m.selected()
	if !ok || !m.sess.EditExercise(id) {
		return nil
	}

	ex := m.sess.Exercises()[m.cursor]

	m.editingID = id
	m.input = &formInput{name: ex.Name, duration: ex.DurationOrReps}
	m.formKind = editExerciseForm
	m.form = m.exerciseForm("Exercise")

	return m.form.Init()
}

func (m *Model) openMetadata() tea.Cmd {
	m.input = &formInput{meta: m.sess.Metadata()}
	m.formKind = metadataForm

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&m.input.meta.Name),
			huh.NewInput().
				Title("Duration").
				Validate(func(s string) error {
					_, err := duration.Parse(duration.WithUnit(s))
					return err
				}).
				Value(&m.input.meta.Duration),
			huh.NewInput().Title("Difficulty").Value(&m.input.meta.Difficulty),
			huh.NewInput().Title("Target").Value(&m.input.meta.Target),
			huh.NewInput().Title("Equipment").Value(&m.input.meta.Equipment),
			huh.NewText().Title("Description").Value(&m.input.meta.Description),
		),
	).WithShowHelp(false)

	return m.form.Init()
}

// closeForm leaves form mode, cancelling any pending exercise edit.
func (m *Model) closeForm() {
	if m.formKind == editExerciseForm {
		m.sess.CancelExerciseEdit(m.editingID)
	}

	m.form = nil
	m.input = nil
	m.formKind = noForm
	m.editingID = ""
}

// applyForm commits the values of a completed form.
func (m *Model) applyForm() {
	switch m.formKind {
	case addExerciseForm:
		if _, ok := m.sess.AddExercise(m.input.name, m.input.duration); ok {
			m.cursor = len(m.sess.Exercises()) - 1
		}
	case editExerciseForm:
		m.sess.UpdateExercise(m.editingID, m.input.name, m.input.duration)
	case metadataForm:
		m.setErr(m.sess.EditMetadata(m.input.meta))
	}

	m.closeForm()
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.esc) {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}

	return m, cmd
}
