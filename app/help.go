package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	keys := fmt.Sprintf(
		"%s\n\t\t%s\n",
		pterm.Yellow("TIMER KEYS"),
		"space/p start or pause · f finish · r reset · a add exercise · x toggle done · m edit workout · ? more",
	)

	return description + usage + version + commands + options + env + keys
}

func envHelp() string {
	return `
FITDECK_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

FITDECK_ENV: set to a name such as 'dev' to keep a separate config file, database and log for that environment.

The session command receives FITDECK_WORKOUT_ID, FITDECK_WORKOUT_NAME, FITDECK_WORKOUT_DATE,
FITDECK_WORKOUT_DURATION, FITDECK_WORKOUT_INTENSITY and FITDECK_WORKOUT_TARGET.`
}
