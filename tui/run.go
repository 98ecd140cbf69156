package tui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/session"
	"github.com/fitdeck/fitdeck/timer"
)

// sender forwards countdown callbacks to the running program.
type sender struct {
	p atomic.Pointer[tea.Program]
}

func (s *sender) dispatch(fn func()) {
	if p := s.p.Load(); p != nil {
		p.Send(tickMsg{fn: fn})
	}
}

// sessionOptions returns the session options that connect a session to the
// model's event loop, and the channel the model reads completion from.
func sessionOptions(snd *sender) ([]session.Option, chan finishedMsg) {
	ch := make(chan finishedMsg, 1)

	opts := []session.Option{
		session.WithScheduler(timer.TickerScheduler{Dispatch: snd.dispatch}),
		session.WithOnFinish(func(rec models.HistoricalWorkout, err error) {
			ch <- finishedMsg{rec: rec, err: err}
		}),
	}

	return opts, ch
}

// Run starts a session from tmpl and runs the interactive timer until the
// user quits. A session that has not finished by then is discarded. The
// returned model reports the record of a finished workout.
func Run(
	mgr *session.Manager,
	tmpl models.Template,
	opts Options,
	sessOpts ...session.Option,
) (*Model, error) {
	snd := &sender{}

	own, finished := sessionOptions(snd)

	sess, err := mgr.Start(tmpl, append(sessOpts, own...)...)
	if err != nil {
		return nil, err
	}

	defer mgr.Dispose()

	m := New(sess, finished, opts)

	p := tea.NewProgram(m, tea.WithAltScreen())
	snd.p.Store(p)

	if _, err := p.Run(); err != nil {
		return nil, err
	}

	return m, nil
}
