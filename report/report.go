// Package report prints fatal errors for the command-line entry point.
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/fitdeck/fitdeck/internal/osutil"
)

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
