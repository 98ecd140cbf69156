package app

import (
	"io"

	"github.com/urfave/cli/v2"

	"github.com/fitdeck/fitdeck/internal/config"
	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/metrics"
)

// goalsAction handles the goals command.
func goalsAction(ctx *cli.Context) error {
	return withMetrics(ctx, func(_ *config.Config, st *metrics.Store) error {
		if ctx.Bool("json") {
			return printJSON(config.Stdout, st.Goals())
		}

		printGoalsTable(config.Stdout, st.Goals())

		return nil
	})
}

// addGoal creates a goal and prints it.
func addGoal(st *metrics.Store, g models.Goal, w io.Writer) error {
	added, err := st.AddGoal(g)

	printGoalsTable(w, []models.Goal{added})

	return reportResult(w, err, "Added goal %s", added.ID)
}

// addGoalAction handles the goals add command.
func addGoalAction(ctx *cli.Context) error {
	return withMetrics(ctx, func(_ *config.Config, st *metrics.Store) error {
		return addGoal(st, models.Goal{
			Name:     ctx.String("name"),
			Target:   ctx.String("target"),
			Current:  ctx.String("current"),
			Category: ctx.String("category"),
		}, config.Stdout)
	})
}

// updateGoal records the current value of a goal and prints its progress.
func updateGoal(st *metrics.Store, id, current string, w io.Writer) error {
	if id == "" {
		return errMissingArg.Fmt("goal id")
	}

	g, err := st.SubmitGoalUpdate(id, current)
	if err != nil && g.ID == "" {
		return err
	}

	printGoalsTable(w, []models.Goal{g})

	return reportResult(w, err, "%s is %d%% complete", g.Name, g.Progress)
}

// updateGoalAction handles the goals update command.
func updateGoalAction(ctx *cli.Context) error {
	return withMetrics(ctx, func(_ *config.Config, st *metrics.Store) error {
		return updateGoal(
			st,
			ctx.Args().First(),
			ctx.String("current"),
			config.Stdout,
		)
	})
}

// deleteGoalAction handles the goals delete command.
func deleteGoalAction(ctx *cli.Context) error {
	return withMetrics(ctx, func(_ *config.Config, st *metrics.Store) error {
		return delGoals(
			st,
			ctx.Args().Slice(),
			ctx.Bool("yes"),
			config.Stdin,
			config.Stdout,
		)
	})
}
