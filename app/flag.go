package app

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/fitdeck/fitdeck/store"
)

var (
	storeFlag = &cli.StringFlag{
		Name:  "store",
		Usage: "Persistence driver: " + strings.Join(store.Drivers, ", "),
	}

	dbFlag = &cli.StringFlag{
		Name:  "db",
		Usage: "Path to the database file used by the bolt and sqlite drivers",
	}

	redisAddrFlag = &cli.StringFlag{
		Name:  "redis-addr",
		Usage: "Address of the redis server used by the redis driver",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a workout is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each workout",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Play this audio file (ogg, mp3, flac or wav) when a workout is completed",
	}

	portFlag = &cli.IntFlag{
		Name:  "port",
		Usage: "Specify the port for the dashboard server (default: 1111)",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only list workouts on or after this day (e.g. '2 weeks ago', 'last monday', '2026-03-01')",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}

	stepFlag = &cli.IntFlag{
		Name:  "step",
		Usage: "Amount to change the score by (default: recovery.step from the config)",
	}

	currentFlag = &cli.StringFlag{
		Name:     "current",
		Aliases:  []string{"c"},
		Usage:    "The current value, e.g. '85kg' or '12 reps'",
		Required: true,
	}

	goalFlags = []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Aliases:  []string{"n"},
			Usage:    "Name of the goal, e.g. 'Bench press'",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "target",
			Aliases:  []string{"t"},
			Usage:    "Target value, e.g. '100kg'",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "current",
			Usage: "Starting value",
		},
		&cli.StringFlag{
			Name:  "category",
			Usage: "Free-form category, e.g. 'Strength'",
		},
	}

	startFlags = []cli.Flag{
		&cli.StringFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   "Workout name (default: Custom Workout)",
		},
		&cli.StringFlag{
			Name:    "duration",
			Aliases: []string{"t"},
			Usage:   "Workout duration, e.g. '45 min' or '1 hr' (default: 30 min)",
		},
		&cli.StringFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Usage:   "Difficulty label, e.g. 'Beginner' or 'Advanced'",
		},
		&cli.StringFlag{
			Name:    "focus",
			Aliases: []string{"f"},
			Usage:   "Target of the workout, e.g. 'Strength' or 'Recovery'",
		},
		&cli.StringFlag{
			Name:  "equipment",
			Usage: "Equipment needed for the workout",
		},
		&cli.BoolFlag{
			Name:  "form",
			Usage: "Describe the workout in an interactive form",
		},
		&cli.BoolFlag{
			Name:  "paused",
			Usage: "Open the workout without starting the countdown",
		},
		&cli.BoolFlag{
			Name:  "serve",
			Usage: "Serve the dashboard, including the live workout at /api/session, while the timer runs",
		},
	}

	migrateFlags = []cli.Flag{
		&cli.StringFlag{
			Name:     "to",
			Usage:    "Destination driver: " + strings.Join(store.Drivers, ", "),
			Required: true,
		},
		&cli.StringFlag{
			Name:  "to-path",
			Usage: "Destination database file for the bolt and sqlite drivers",
		},
		&cli.StringFlag{
			Name:  "to-redis-addr",
			Usage: "Destination redis server",
		},
	}
)
