package app

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
	"go.uber.org/multierr"

	"github.com/fitdeck/fitdeck/internal/config"
	"github.com/fitdeck/fitdeck/internal/models"
)

// notify is replaced in tests.
var notify = func(title, msg string) error {
	return beeep.Notify(title, msg, "")
}

// workoutHooks returns the function run after each finished workout. It
// notifies, plays the completion sound and runs the session command.
func workoutHooks(cfg *config.Config) func(models.HistoricalWorkout) error {
	return func(rec models.HistoricalWorkout) error {
		var err error

		if cfg.Session.Notify {
			err = multierr.Append(err, notifyFinished(rec))
		}

		err = multierr.Append(err, playFinishedSound(cfg.Session.Sound))
		err = multierr.Append(err, runSessionCmd(cfg.Session.Cmd, rec))

		return err
	}
}

func notifyFinished(rec models.HistoricalWorkout) error {
	msg := fmt.Sprintf("%s done in %s. Nice work!", rec.Name, rec.Duration)

	if err := notify("Workout complete", msg); err != nil {
		return errNotify.Wrap(err)
	}

	return nil
}

// sessionCmd builds the command configured to run after a workout. The
// workout is described to it through FITDECK_* environment variables. It
// returns nil when no command is configured.
func sessionCmd(command string, rec models.HistoricalWorkout) (*exec.Cmd, error) {
	cmdSlice, err := shellquote.Split(command)
	if err != nil {
		return nil, errSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil, nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)
	cmd.Env = append(
		os.Environ(),
		"FITDECK_WORKOUT_ID="+rec.ID,
		"FITDECK_WORKOUT_NAME="+rec.Name,
		"FITDECK_WORKOUT_DATE="+rec.Date,
		"FITDECK_WORKOUT_DURATION="+rec.Duration,
		"FITDECK_WORKOUT_INTENSITY="+string(rec.Intensity),
		"FITDECK_WORKOUT_TARGET="+rec.Target,
	)

	return cmd, nil
}

// runSessionCmd runs the configured command. Its output is logged since the
// terminal belongs to the timer while it runs.
func runSessionCmd(command string, rec models.HistoricalWorkout) error {
	cmd, err := sessionCmd(command, rec)
	if err != nil || cmd == nil {
		return err
	}

	var out bytes.Buffer

	cmd.Stdout = &out
	cmd.Stderr = &out

	err = cmd.Run()

	slog.Info(
		"session command finished",
		slog.String("cmd", command),
		slog.String("output", out.String()),
		slog.Any("error", err),
	)

	if err != nil {
		return errSessionCmd.Wrap(err)
	}

	return nil
}
