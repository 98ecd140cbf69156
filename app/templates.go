package app

import (
	"github.com/urfave/cli/v2"

	"github.com/fitdeck/fitdeck/internal/config"
	"github.com/fitdeck/fitdeck/internal/pathutil"
	"github.com/fitdeck/fitdeck/internal/static"
)

// templatesAction prints the template catalog in natural name order.
func templatesAction(ctx *cli.Context) error {
	templates, err := static.LoadTemplates(pathutil.DataDir())
	if err != nil {
		return err
	}

	static.SortTemplates(templates)

	if ctx.Bool("json") {
		return printJSON(config.Stdout, templates)
	}

	printTemplatesTable(config.Stdout, templates)

	return nil
}
