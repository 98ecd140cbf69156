package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Driver        string
	DBPath        string
	RedisAddr     string
	SessionCmd    string
	Sound         string
	Port          int
	DisableNotify bool
}

// WithCLIConfig returns an Option that applies global command-line flags on
// top of the file configuration.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Driver:        ctx.String("store"),
			DBPath:        ctx.String("db"),
			RedisAddr:     ctx.String("redis-addr"),
			SessionCmd:    ctx.String("session-cmd"),
			Sound:         ctx.String("sound"),
			Port:          ctx.Int("port"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies non-zero CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Driver != "" {
		c.Store.Driver = opts.Driver
	}

	if opts.DBPath != "" {
		c.Store.Path = opts.DBPath
	}

	if opts.RedisAddr != "" {
		c.Store.RedisAddr = opts.RedisAddr
	}

	if opts.SessionCmd != "" {
		c.Session.Cmd = opts.SessionCmd
	}

	if opts.Sound != "" {
		c.Session.Sound = opts.Sound
	}

	if opts.Port > 0 {
		c.Dashboard.Port = opts.Port
	}

	if opts.DisableNotify {
		c.Session.Notify = false
	}
}
