package main

import (
	"os"

	"github.com/fitdeck/fitdeck/app"
	"github.com/fitdeck/fitdeck/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
