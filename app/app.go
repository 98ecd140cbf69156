package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/fitdeck/fitdeck/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the fitdeck app instance.
func Get() *cli.App {
	fitdeckApp := &cli.App{
		Name: "fitdeck",
		Usage: `
		Fitdeck runs timed workouts from the command-line. Pick a template or
		describe your own workout, tick off exercises as you go, and track
		history, recovery and goals on a local dashboard.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Metadata:             map[string]any{},
		Commands: []*cli.Command{
			{
				Name:      "start",
				Usage:     "Start a workout from a template or from the given options",
				ArgsUsage: "[template]",
				Flags:     startFlags,
				Action:    startAction,
			},
			{
				Name:   "templates",
				Usage:  "List the workout templates",
				Flags:  []cli.Flag{jsonFlag},
				Action: templatesAction,
			},
			{
				Name:   "history",
				Usage:  "List finished workouts, newest first",
				Flags:  []cli.Flag{sinceFlag, jsonFlag},
				Action: historyAction,
				Subcommands: []*cli.Command{
					{
						Name:      "delete",
						Usage:     "Delete one or more workouts from the history",
						ArgsUsage: "<id>...",
						Flags:     []cli.Flag{yesFlag},
						Action:    deleteHistoryAction,
					},
				},
			},
			{
				Name:   "recovery",
				Usage:  "Show the recovery scores and the recommended intensity",
				Flags:  []cli.Flag{jsonFlag},
				Action: recoveryAction,
				Subcommands: []*cli.Command{
					{
						Name:      "up",
						Usage:     "Raise a recovery score (sleep, muscle or readiness)",
						ArgsUsage: "<field>",
						Flags:     []cli.Flag{stepFlag},
						Action:    adjustRecoveryAction(1),
					},
					{
						Name:      "down",
						Usage:     "Lower a recovery score (sleep, muscle or readiness)",
						ArgsUsage: "<field>",
						Flags:     []cli.Flag{stepFlag},
						Action:    adjustRecoveryAction(-1),
					},
					{
						Name:   "reset",
						Usage:  "Reset every recovery score to zero",
						Action: resetRecoveryAction,
					},
				},
			},
			{
				Name:   "goals",
				Usage:  "List fitness goals and their progress",
				Flags:  []cli.Flag{jsonFlag},
				Action: goalsAction,
				Subcommands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Track a new goal",
						Flags:  goalFlags,
						Action: addGoalAction,
					},
					{
						Name:      "update",
						Usage:     "Record the current value of a goal",
						ArgsUsage: "<id>",
						Flags:     []cli.Flag{currentFlag},
						Action:    updateGoalAction,
					},
					{
						Name:      "delete",
						Usage:     "Stop tracking one or more goals",
						ArgsUsage: "<id>...",
						Flags:     []cli.Flag{yesFlag},
						Action:    deleteGoalAction,
					},
				},
			},
			{
				Name:      "day-status",
				Usage:     "Show or set today's status gauge (0-100)",
				ArgsUsage: "[value]",
				Action:    dayStatusAction,
			},
			{
				Name:   "dashboard",
				Usage:  "Serve the dashboard over HTTP",
				Action: dashboardAction,
			},
			{
				Name:  "store",
				Usage: "Manage the persistence backend",
				Subcommands: []*cli.Command{
					{
						Name:   "migrate",
						Usage:  "Copy all saved data into another driver",
						Flags:  migrateFlags,
						Action: migrateAction,
					},
				},
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			storeFlag,
			dbFlag,
			redisAddrFlag,
			sessionCmdFlag,
			disableNotificationFlag,
			soundFlag,
			portFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return fitdeckApp
}
