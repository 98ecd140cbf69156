package app

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/fitdeck/fitdeck/internal/config"
	"github.com/fitdeck/fitdeck/internal/timeutil"
	"github.com/fitdeck/fitdeck/metrics"
)

// historyAction handles the history command and prints the finished
// workouts, newest first.
func historyAction(ctx *cli.Context) error {
	return withMetrics(ctx, func(_ *config.Config, st *metrics.Store) error {
		history := st.History()

		if since := ctx.String("since"); since != "" {
			day, err := timeutil.FromStr(since, time.Now())
			if err != nil {
				return errInvalidArg.Fmt("--since value", since)
			}

			history = metrics.Since(history, day)
		}

		if ctx.Bool("json") {
			return printJSON(config.Stdout, history)
		}

		printHistoryTable(config.Stdout, history)

		return nil
	})
}

// deleteHistoryAction handles the history delete command.
func deleteHistoryAction(ctx *cli.Context) error {
	return withMetrics(ctx, func(_ *config.Config, st *metrics.Store) error {
		return delHistory(
			st,
			ctx.Args().Slice(),
			ctx.Bool("yes"),
			config.Stdin,
			config.Stdout,
		)
	})
}
