package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/fitdeck/fitdeck/internal/config"
	"github.com/fitdeck/fitdeck/internal/logging"
	"github.com/fitdeck/fitdeck/internal/osutil"
	"github.com/fitdeck/fitdeck/internal/pathutil"
	"github.com/fitdeck/fitdeck/internal/static"
	"github.com/fitdeck/fitdeck/internal/ui"
	"github.com/fitdeck/fitdeck/metrics"
	"github.com/fitdeck/fitdeck/store"
)

const (
	envNoColor        = "NO_COLOR"
	envFitdeckNoColor = "FITDECK_NO_COLOR"

	metaConfig = "config"
	metaLog    = "log"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// appConfig returns the configuration loaded by beforeAction.
func appConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, ok := ctx.App.Metadata[metaConfig].(*config.Config)
	if !ok {
		return nil, errNoConfig
	}

	return cfg, nil
}

// openMetrics opens the configured store and loads the dashboard from it.
// The returned function closes the store.
func openMetrics(cfg *config.Config) (*metrics.Store, func(), error) {
	kv, err := store.Open(cfg.StoreOptions())
	if err != nil {
		return nil, nil, errOpenStore.Wrap(err)
	}

	closeStore := func() {
		if err := kv.Close(); err != nil {
			slog.Warn("closing store", slog.Any("error", err))
		}
	}

	st, err := metrics.Open(kv)
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	return st, closeStore, nil
}

// withMetrics loads the config, opens the store and runs fn with it.
func withMetrics(
	ctx *cli.Context,
	fn func(cfg *config.Config, st *metrics.Store) error,
) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	st, closeStore, err := openMetrics(cfg)
	if err != nil {
		return err
	}

	defer closeStore()

	return fn(cfg, st)
}

// reportResult prints a success message for a write. Writes that could not
// be saved are reported as warnings since the change still applies to the
// current process.
func reportResult(w io.Writer, err error, msg string, args ...any) error {
	if err == nil {
		fmt.Fprintln(w, pterm.Success.Sprintf(msg, args...))
		return nil
	}

	var rest error

	for _, e := range multierr.Errors(err) {
		if errors.Is(e, metrics.ErrNotDurable) {
			fmt.Fprintln(w, pterm.Warning.Sprint(e))
			continue
		}

		rest = multierr.Append(rest, e)
	}

	return rest
}

// editConfigAction handles the edit-config command which opens the fitdeck
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfg.System.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if FITDECK_NO_COLOR is set
	if _, exists := os.LookupEnv(envFitdeckNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	ctx.App.Metadata[metaConfig] = cfg

	logFile, err := logging.Setup(logging.Options{
		Path:       pathutil.LogFilePath(),
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return err
	}

	ctx.App.Metadata[metaLog] = logFile

	ui.DarkTheme = cfg.Display.DarkTheme

	if err := static.Install(pathutil.DataDir()); err != nil {
		slog.WarnContext(
			ctx.Context,
			"installing template catalog",
			slog.Any("error", err),
		)
	}

	slog.DebugContext(
		ctx.Context,
		"starting fitdeck",
		slog.String("store", cfg.Store.Driver),
		slog.String("config", configPath),
	)

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting fitdeck")

	if logFile, ok := ctx.App.Metadata[metaLog].(io.Closer); ok {
		return logFile.Close()
	}

	return nil
}
