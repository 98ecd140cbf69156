package app

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/pterm/pterm"
	"go.uber.org/multierr"

	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/metrics"
)

// confirm prints msg and waits for the user to press ENTER.
func confirm(r io.Reader, w io.Writer, msg string) {
	fmt.Fprint(w, pterm.Warning.Sprint(msg+". Press ENTER to proceed"))

	reader := bufio.NewReader(r)

	_, _ = reader.ReadString('\n')
}

// delHistory deletes the workouts with the given ids. It requests
// confirmation before proceeding unless skipConfirm is set. Every id is
// attempted; the failures are combined.
func delHistory(
	st *metrics.Store,
	ids []string,
	skipConfirm bool,
	r io.Reader,
	w io.Writer,
) error {
	if len(ids) == 0 {
		return errMissingArg.Fmt("workout id")
	}

	if !skipConfirm {
		matched := slices.DeleteFunc(st.History(), func(h models.HistoricalWorkout) bool {
			return !slices.Contains(ids, h.ID)
		})

		printHistoryTable(w, matched)
		confirm(r, w, "The above workouts will be deleted permanently")
	}

	var err error

	for _, id := range ids {
		err = multierr.Append(err, st.DeleteHistory(id))
	}

	return reportResult(w, err, "Deleted %d workout(s)", len(ids))
}

// delGoals deletes the goals with the given ids.
func delGoals(
	st *metrics.Store,
	ids []string,
	skipConfirm bool,
	r io.Reader,
	w io.Writer,
) error {
	if len(ids) == 0 {
		return errMissingArg.Fmt("goal id")
	}

	if !skipConfirm {
		matched := slices.DeleteFunc(st.Goals(), func(g models.Goal) bool {
			return !slices.Contains(ids, g.ID)
		})

		printGoalsTable(w, matched)
		confirm(r, w, "The above goals will be deleted permanently")
	}

	var err error

	for _, id := range ids {
		err = multierr.Append(err, st.DeleteGoal(id))
	}

	return reportResult(w, err, "Deleted %d goal(s)", len(ids))
}
