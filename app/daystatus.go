package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/fitdeck/fitdeck/internal/config"
	"github.com/fitdeck/fitdeck/metrics"
)

// dayStatus prints the day-status gauge, setting it first when value is
// given.
func dayStatus(st *metrics.Store, value string, w io.Writer) error {
	if value == "" {
		ds, err := st.DayStatus()
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s  %s\n", ds.Date, progressBar(ds.Value))

		return nil
	}

	v, err := strconv.Atoi(value)
	if err != nil {
		return errInvalidArg.Fmt("day status", value)
	}

	ds, err := st.SetDayStatus(v)

	return reportResult(w, err, "Day status for %s set to %d", ds.Date, ds.Value)
}

// dayStatusAction handles the day-status command.
func dayStatusAction(ctx *cli.Context) error {
	return withMetrics(ctx, func(_ *config.Config, st *metrics.Store) error {
		return dayStatus(st, ctx.Args().First(), config.Stdout)
	})
}
