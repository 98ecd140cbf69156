package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/session"
	"github.com/fitdeck/fitdeck/store"
)

const (
	keyStoreDriver      = "store.driver"
	keyStorePath        = "store.path"
	keyRedisAddr        = "store.redis_addr"
	keyRedisPrefix      = "store.redis_prefix"
	keyMemorySize       = "store.memory_size"
	keyNotify           = "session.notify"
	keySessionCmd       = "session.cmd"
	keySessionSound     = "session.sound"
	keyBoostMin         = "session.recovery_boost_min"
	keyBoostMax         = "session.recovery_boost_max"
	keyIntensityMapping = "intensity.mapping"
	keyIntensityDefault = "intensity.fallback"
	keyRecoveryStep     = "recovery.step"
	keyDarkTheme        = "display.dark_theme"
	keyTwentyFourHour   = "display.24hr_clock"
	keyDashboardPort    = "dashboard.port"
	keyLogLevel         = "log.level"
	keyLogMaxSize       = "log.max_size"
	keyLogMaxBackups    = "log.max_backups"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing a default file on first run.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		c.System.ConfigPath = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper sets defaults and any values chosen at the first-run prompt.
func setupViper(v *viper.Viper, c *Config) {
	mapping := make(map[string]any, len(models.DefaultIntensityLabels))
	for label, intensity := range models.DefaultIntensityLabels {
		mapping[label] = intensity
	}

	v.SetDefault(keyStoreDriver, store.DriverBolt)
	v.SetDefault(keyStorePath, "")
	v.SetDefault(keyRedisAddr, "localhost:6379")
	v.SetDefault(keyRedisPrefix, "fitdeck:")
	v.SetDefault(keyMemorySize, store.DefaultMemorySize)
	v.SetDefault(keyNotify, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keySessionSound, "")
	v.SetDefault(keyBoostMin, session.DefaultBoostMin)
	v.SetDefault(keyBoostMax, session.DefaultBoostMax)
	v.SetDefault(keyIntensityMapping, mapping)
	v.SetDefault(keyIntensityDefault, string(models.Medium))
	v.SetDefault(keyRecoveryStep, 5)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDashboardPort, 1111)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSize, 10)
	v.SetDefault(keyLogMaxBackups, 3)

	if c.System.Prompted {
		v.Set(keyStoreDriver, c.Store.Driver)
		v.Set(keyNotify, c.Session.Notify)
		v.Set(keyDarkTheme, c.Display.DarkTheme)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
