package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/fitdeck/fitdeck/internal/timeutil"
	"github.com/fitdeck/fitdeck/timer"
)

func (m *Model) headerView() string {
	v := m.sess.View()

	var s strings.Builder

	s.WriteString(m.styles.title.Render(v.Metadata.Name))

	details := []string{string(v.Intensity)}
	if v.Metadata.Target != "" {
		details = append(details, v.Metadata.Target)
	}

	if v.Metadata.Equipment != "" {
		details = append(details, v.Metadata.Equipment)
	}

	s.WriteString(" " + m.styles.hint.Render(strings.Join(details, " · ")))

	if v.Metadata.Description != "" {
		s.WriteString("\n" + m.styles.hint.Render(v.Metadata.Description))
	}

	return s.String()
}

func (m *Model) timerView() string {
	snap := m.sess.Timer().Snapshot()

	var s strings.Builder

	switch m.sess.Timer().State() {
	case timer.Idle:
		s.WriteString(m.styles.secondary.Render("[Ready]"))
	case timer.Paused:
		s.WriteString(m.styles.secondary.Render("[Paused]"))
	case timer.Running:
		timeFormat := "03:04:05 PM"
		if m.opts.TwentyFourHour {
			timeFormat = "15:04:05"
		}

		end := m.opts.Clock.Now().Add(time.Duration(snap.Remaining) * time.Second)
		s.WriteString(m.styles.hint.Render("until " + end.Format(timeFormat)))
	}

	if diag := m.sess.Diagnostic(); diag != nil {
		s.WriteString(" " + m.styles.err.Render(diag.Error()))
	}

	s.WriteString("\n\n")
	s.WriteString(m.styles.main.Render(timeutil.Clock(snap.Remaining)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(1 - snap.Percent/100))

	return s.String()
}

func (m *Model) exercisesView() string {
	ex := m.sess.Exercises()
	if len(ex) == 0 {
		return m.styles.hint.Render("No exercises yet. Press a to add one.")
	}

	var s strings.Builder

	for i, e := range ex {
		prefix := "  "
		if i == m.cursor {
			prefix = m.styles.cursor.Render("> ")
		}

		check := "[ ]"
		line := fmt.Sprintf("%s  %s", e.Name, m.styles.hint.Render(e.DurationOrReps))

		if e.Completed {
			check = "[x]"
			line = m.styles.done.Render(e.Name + "  " + e.DurationOrReps)
		}

		s.WriteString(prefix + check + " " + line + "\n")
	}

	return strings.TrimRight(s.String(), "\n")
}

func (m *Model) completedView() string {
	var s strings.Builder

	rec := m.record

	s.WriteString(m.styles.title.Render("Workout complete"))
	s.WriteString("\n\n")
	s.WriteString(m.styles.main.Render(rec.Name))
	s.WriteString("\n")
	s.WriteString(m.styles.hint.Render(fmt.Sprintf(
		"%s · %s · %s intensity · %s",
		rec.Date,
		rec.Duration,
		rec.Intensity,
		rec.Target,
	)))

	done := 0
	ex := m.sess.Exercises()

	for _, e := range ex {
		if e.Completed {
			done++
		}
	}

	if len(ex) > 0 {
		s.WriteString("\n" + m.styles.secondary.Render(
			fmt.Sprintf("%d/%d exercises completed", done, len(ex)),
		))
	}

	if m.finishErr != nil {
		s.WriteString("\n\n" + m.styles.err.Render(m.finishErr.Error()))
	}

	if m.hookErr != nil {
		s.WriteString("\n\n" + m.styles.err.Render(m.hookErr.Error()))
	}

	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		m.keys.done,
		m.keys.quit,
	}))

	return s.String()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.record != nil {
		return m.styles.base.Render(m.completedView())
	}

	var s strings.Builder

	s.WriteString(m.headerView())
	s.WriteString("\n\n")
	s.WriteString(m.timerView())
	s.WriteString("\n\n")
	s.WriteString(m.exercisesView())

	if m.form != nil {
		s.WriteString("\n\n" + m.form.View())
	} else if m.lastErr != nil {
		s.WriteString("\n\n" + m.styles.err.Render(m.lastErr.Error()))
	}

	s.WriteString("\n\n" + m.help.View(m.keys))

	return m.styles.base.Render(s.String())
}
