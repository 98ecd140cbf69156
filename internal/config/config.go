package config

import (
	"fmt"
	"io"
	"os"

	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/internal/pathutil"
	"github.com/fitdeck/fitdeck/store"
)

type (
	// Config holds all configuration settings
	Config struct {
		Store     StoreConfig     `mapstructure:"store"`
		Session   SessionConfig   `mapstructure:"session"`
		Intensity IntensityConfig `mapstructure:"intensity"`
		Recovery  RecoveryConfig  `mapstructure:"recovery"`
		Display   DisplayConfig   `mapstructure:"display"`
		Dashboard DashboardConfig `mapstructure:"dashboard"`
		Log       LogConfig       `mapstructure:"log"`
		System    SystemConfig    `mapstructure:"-"`
	}

	// StoreConfig selects and configures the key-value driver
	StoreConfig struct {
		Driver      string `mapstructure:"driver"`
		Path        string `mapstructure:"path"`
		RedisAddr   string `mapstructure:"redis_addr"`
		RedisPrefix string `mapstructure:"redis_prefix"`
		MemorySize  int    `mapstructure:"memory_size"`
	}

	// SessionConfig holds workout session settings
	SessionConfig struct {
		Cmd              string `mapstructure:"cmd"`
		Sound            string `mapstructure:"sound"`
		RecoveryBoostMin int    `mapstructure:"recovery_boost_min"`
		RecoveryBoostMax int    `mapstructure:"recovery_boost_max"`
		Notify           bool   `mapstructure:"notify"`
	}

	// IntensityConfig maps difficulty labels to intensities
	IntensityConfig struct {
		Mapping  map[string]string `mapstructure:"mapping"`
		Fallback string            `mapstructure:"fallback"`
	}

	// RecoveryConfig holds recovery score settings
	RecoveryConfig struct {
		Step int `mapstructure:"step"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// DashboardConfig holds dashboard server settings
	DashboardConfig struct {
		Port int `mapstructure:"port"`
	}

	// LogConfig controls the log file
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
	}

	// SystemConfig holds values that are not read from the config file
	SystemConfig struct {
		ConfigPath string
		Prompted   bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.4.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies options and validates the result
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Intensities builds the difficulty label table.
func (c *Config) Intensities() (*models.IntensityMap, error) {
	if len(c.Intensity.Mapping) == 0 {
		return models.NewIntensityMap(
			models.DefaultIntensityLabels,
			c.Intensity.Fallback,
		)
	}

	return models.NewIntensityMap(c.Intensity.Mapping, c.Intensity.Fallback)
}

// StoreOptions returns the options for store.Open. File-backed drivers
// without an explicit path use the XDG data directory.
func (c *Config) StoreOptions() store.Options {
	opts := store.Options{
		Driver:      c.Store.Driver,
		Path:        c.Store.Path,
		RedisAddr:   c.Store.RedisAddr,
		RedisPrefix: c.Store.RedisPrefix,
		MemorySize:  c.Store.MemorySize,
	}

	if opts.Path == "" {
		switch opts.Driver {
		case store.DriverBolt:
			opts.Path = pathutil.DBFilePath()
		case store.DriverSQLite:
			opts.Path = pathutil.SQLiteFilePath()
		}
	}

	return opts
}

// DashboardAddr is the listen address of the dashboard server.
func (c *Config) DashboardAddr() string {
	return fmt.Sprintf("127.0.0.1:%d", c.Dashboard.Port)
}
