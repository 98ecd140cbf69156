package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/fitdeck/fitdeck/store"
)

const asciiLogo = `
███████╗██╗████████╗██████╗ ███████╗ ██████╗██╗  ██╗
██╔════╝██║╚══██╔══╝██╔══██╗██╔════╝██╔════╝██║ ██╔╝
█████╗  ██║   ██║   ██║  ██║█████╗  ██║     █████╔╝
██╔══╝  ██║   ██║   ██║  ██║██╔══╝  ██║     ██╔═██╗
██║     ██║   ██║   ██████╔╝███████╗╚██████╗██║  ██╗
╚═╝     ╚═╝   ╚═╝   ╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Driver    string
	Notify    bool
	DarkTheme bool
}

// WithPromptConfig returns an Option that asks for the essential settings
// when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Driver:    store.DriverBolt,
		Notify:    true,
		DarkTheme: true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure fitdeck for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'fitdeck edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should your dashboard be stored?").
				Options(
					huh.NewOption("Local file (bolt)", store.DriverBolt).Selected(true),
					huh.NewOption("Local SQLite database", store.DriverSQLite),
					huh.NewOption("Redis server", store.DriverRedis),
					huh.NewOption("Memory only (nothing is saved)", store.DriverMemory),
				).
				Value(&opts.Driver),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show a desktop notification when a workout ends?").
				Value(&opts.Notify),
			huh.NewConfirm().
				Title("Is your terminal using a dark theme?").
				Value(&opts.DarkTheme),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Store.Driver = opts.Driver
	c.Session.Notify = opts.Notify
	c.Display.DarkTheme = opts.DarkTheme
	c.System.Prompted = true
}
