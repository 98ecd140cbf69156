package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/fitdeck/fitdeck/internal/config"
	"github.com/fitdeck/fitdeck/internal/duration"
	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/internal/pathutil"
	"github.com/fitdeck/fitdeck/internal/static"
	"github.com/fitdeck/fitdeck/session"
	"github.com/fitdeck/fitdeck/tui"
)

const customChoice = "Custom workout"

// templateFlags holds the workout description given on the command-line.
type templateFlags struct {
	name      string
	duration  string
	level     string
	focus     string
	equipment string
}

func readTemplateFlags(ctx *cli.Context) templateFlags {
	return templateFlags{
		name:      ctx.String("name"),
		duration:  ctx.String("duration"),
		level:     ctx.String("level"),
		focus:     ctx.String("focus"),
		equipment: ctx.String("equipment"),
	}
}

// apply overrides the template fields for which a flag was given.
func (f templateFlags) apply(tmpl models.Template) models.Template {
	if f.name != "" {
		tmpl.Name = f.name
	}

	if f.duration != "" {
		tmpl.Duration = f.duration
	}

	if f.level != "" {
		tmpl.Level = f.level
	}

	if f.focus != "" {
		tmpl.Focus = f.focus
	}

	if f.equipment != "" {
		tmpl.Equipment = f.equipment
	}

	return tmpl
}

// resolveTemplate picks the template named by the first argument, or builds
// an ad hoc one from the flags.
func resolveTemplate(
	templates []models.Template,
	name string,
	flags templateFlags,
) (models.Template, error) {
	if name == "" {
		return flags.apply(models.Template{}), nil
	}

	tmpl, ok := static.Find(templates, name)
	if !ok {
		return models.Template{}, errUnknownTemplate.Fmt(name)
	}

	return flags.apply(tmpl), nil
}

// customWorkoutForm asks for the details of an ad hoc workout, starting from
// tmpl.
func customWorkoutForm(tmpl models.Template) (models.Template, error) {
	if tmpl.Duration == "" {
		tmpl.Duration = "30 min"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder(session.DefaultName).
				Value(&tmpl.Name),
			huh.NewInput().
				Title("Duration").
				Description("e.g. 45 min, 1 hr, 20").
				Value(&tmpl.Duration).
				Validate(func(s string) error {
					if _, err := duration.Parse(s); err != nil {
						return err
					}

					return nil
				}),
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(huh.NewOptions("Beginner", "Intermediate", "Advanced", "Very High")...).
				Value(&tmpl.Level),
			huh.NewInput().
				Title("Focus").
				Placeholder(session.DefaultTarget).
				Value(&tmpl.Focus),
			huh.NewInput().
				Title("Equipment").
				Value(&tmpl.Equipment),
		),
	)

	if err := form.Run(); err != nil {
		return models.Template{}, err
	}

	return tmpl, nil
}

// chooseTemplate asks the user to pick a template from the catalog, or to
// describe a custom workout.
func chooseTemplate(templates []models.Template) (models.Template, error) {
	options := make([]huh.Option[string], 0, len(templates)+1)

	for _, t := range templates {
		label := fmt.Sprintf("%s (%s, %s)", t.Name, t.Duration, t.Level)
		options = append(options, huh.NewOption(label, t.Name))
	}

	options = append(options, huh.NewOption(customChoice, customChoice))

	var choice string

	err := huh.NewSelect[string]().
		Title("Pick a workout").
		Options(options...).
		Value(&choice).
		Run()
	if err != nil {
		return models.Template{}, err
	}

	if choice == customChoice {
		return customWorkoutForm(models.Template{})
	}

	tmpl, _ := static.Find(templates, choice)

	return tmpl, nil
}

// runWorkout runs the interactive timer for tmpl and reports the outcome.
func runWorkout(
	cfg *config.Config,
	tmpl models.Template,
	autoStart, serve bool,
	w io.Writer,
) error {
	intensities, err := cfg.Intensities()
	if err != nil {
		return err
	}

	st, closeStore, err := openMetrics(cfg)
	if err != nil {
		return err
	}

	defer closeStore()

	mgr := session.NewManager(
		st,
		session.WithIntensityMap(intensities),
		session.WithBoostRange(
			cfg.Session.RecoveryBoostMin,
			cfg.Session.RecoveryBoostMax,
		),
	)

	if serve {
		addr := cfg.DashboardAddr()

		stop := serveInBackground(newDashboard(st, mgr), addr)
		defer stop()

		slog.Info("serving dashboard during workout", slog.String("addr", addr))
	}

	m, err := tui.Run(mgr, tmpl, tui.Options{
		OnFinish:       workoutHooks(cfg),
		DarkTheme:      cfg.Display.DarkTheme,
		TwentyFourHour: cfg.Display.TwentyFourHour,
		AutoStart:      autoStart,
	})
	if err != nil {
		return err
	}

	rec, ok := m.Record()
	if !ok {
		fmt.Fprintln(w, pterm.Info.Sprint("Workout discarded"))
		return nil
	}

	return reportResult(
		w,
		m.Err(),
		"%s finished: %s at %s intensity",
		rec.Name,
		rec.Duration,
		rec.Intensity,
	)
}

// startAction handles the start command.
func startAction(ctx *cli.Context) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	templates, err := static.LoadTemplates(pathutil.DataDir())
	if err != nil {
		return err
	}

	tmpl, err := resolveTemplate(
		templates,
		strings.Join(ctx.Args().Slice(), " "),
		readTemplateFlags(ctx),
	)
	if err != nil {
		return err
	}

	if ctx.Bool("form") {
		tmpl, err = customWorkoutForm(tmpl)
		if err != nil {
			return err
		}
	}

	return runWorkout(
		cfg,
		tmpl,
		!ctx.Bool("paused"),
		ctx.Bool("serve"),
		config.Stdout,
	)
}

// defaultAction asks which workout to start and runs it.
func defaultAction(ctx *cli.Context) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	if ctx.Args().Present() {
		return cli.ShowAppHelp(ctx)
	}

	templates, err := static.LoadTemplates(pathutil.DataDir())
	if err != nil {
		return err
	}

	static.SortTemplates(templates)

	tmpl, err := chooseTemplate(templates)
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}

	if err != nil {
		return err
	}

	return runWorkout(cfg, tmpl, true, false, config.Stdout)
}
