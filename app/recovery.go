package app

import (
	"io"

	"github.com/urfave/cli/v2"

	"github.com/fitdeck/fitdeck/internal/config"
	"github.com/fitdeck/fitdeck/metrics"
)

// recoveryAction handles the recovery command.
func recoveryAction(ctx *cli.Context) error {
	return withMetrics(ctx, func(_ *config.Config, st *metrics.Store) error {
		if ctx.Bool("json") {
			return printJSON(config.Stdout, st.Recovery())
		}

		printRecovery(config.Stdout, st.Recovery())

		return nil
	})
}

// adjustRecovery nudges one recovery score by step in the given direction.
func adjustRecovery(
	st *metrics.Store,
	name string,
	step, direction int,
	w io.Writer,
) error {
	if name == "" {
		return errMissingArg.Fmt("recovery field (sleep, muscle or readiness)")
	}

	field, err := metrics.ParseField(name)
	if err != nil {
		return err
	}

	err = st.AdjustRecovery(field, step*direction)

	r := st.Recovery()

	return reportResult(
		w,
		err,
		"Readiness %d: %s intensity recommended",
		r.ReadinessScore,
		r.RecommendedIntensity,
	)
}

// adjustRecoveryAction returns the action for recovery up (direction 1) and
// recovery down (direction -1).
func adjustRecoveryAction(direction int) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		return withMetrics(ctx, func(cfg *config.Config, st *metrics.Store) error {
			step := cfg.Recovery.Step
			if ctx.Int("step") > 0 {
				step = ctx.Int("step")
			}

			return adjustRecovery(
				st,
				ctx.Args().First(),
				step,
				direction,
				config.Stdout,
			)
		})
	}
}

// resetRecoveryAction handles the recovery reset command.
func resetRecoveryAction(ctx *cli.Context) error {
	return withMetrics(ctx, func(_ *config.Config, st *metrics.Store) error {
		return reportResult(
			config.Stdout,
			st.ResetRecovery(),
			"Recovery scores reset",
		)
	})
}
