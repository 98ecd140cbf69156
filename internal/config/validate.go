package config

import (
	"slices"

	"github.com/fitdeck/fitdeck/internal/logging"
	"github.com/fitdeck/fitdeck/store"
)

const (
	minRecoveryStep = 1
	maxRecoveryStep = 50
	maxScore        = 100
	minPort         = 1
	maxPort         = 65535
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if !slices.Contains(store.Drivers, c.Store.Driver) {
		return errUnknownDriver.Fmt(c.Store.Driver, store.Drivers)
	}

	if err := c.validateSession(); err != nil {
		return err
	}

	if c.Recovery.Step < minRecoveryStep || c.Recovery.Step > maxRecoveryStep {
		return errInvalidStep.Fmt(minRecoveryStep, maxRecoveryStep)
	}

	if _, err := c.Intensities(); err != nil {
		return errInvalidIntensity.Wrap(err)
	}

	if c.Dashboard.Port < minPort || c.Dashboard.Port > maxPort {
		return errInvalidPort.Fmt(c.Dashboard.Port)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return errInvalidLogLevel.Wrap(err)
	}

	return nil
}

// validateSession checks the recovery boost range.
func (c *Config) validateSession() error {
	lo, hi := c.Session.RecoveryBoostMin, c.Session.RecoveryBoostMax

	if lo < 0 || hi > maxScore || lo > hi {
		return errInvalidBoost.Fmt(lo, hi)
	}

	return nil
}
