// Package store provides the key-value persistence used by fitdeck. Values are
// opaque bytes (JSON documents in practice); a key that was never saved is
// reported with ErrNotFound.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Keys used by fitdeck.
const (
	DashboardKey = "dashboard"
	DayStatusKey = "day-status"
)

// Keys lists every key fitdeck persists.
var Keys = []string{DashboardKey, DayStatusKey}

// Drivers.
const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Drivers lists the supported driver names.
var Drivers = []string{DriverBolt, DriverSQLite, DriverRedis, DriverMemory}

// KV is the persistence contract: a write must be visible to the next read
// of the same key.
type KV interface {
	// Load returns the value stored under key, or ErrNotFound.
	Load(key string) ([]byte, error)
	// Save stores value under key, replacing any previous value.
	Save(key string, value []byte) error
	// Close releases the underlying resources.
	Close() error
}

// Options selects and configures a driver.
type Options struct {
	Driver      string
	Path        string
	RedisAddr   string
	RedisPrefix string
	MemorySize  int
}

// Open returns the KV store for the configured driver.
func Open(opts Options) (KV, error) {
	switch opts.Driver {
	case DriverBolt, "":
		return NewBolt(opts.Path)
	case DriverSQLite:
		return NewSQLite(opts.Path)
	case DriverRedis:
		return NewRedis(opts.RedisAddr, opts.RedisPrefix)
	case DriverMemory:
		return NewMemory(opts.MemorySize), nil
	}

	return nil, errUnknownDriver.Fmt(opts.Driver)
}

// LoadJSON decodes the value stored under key into v. It reports false when
// the key is absent or holds a malformed document; callers should then
// substitute a default.
func LoadJSON(kv KV, key string, v any) (bool, error) {
	b, err := kv.Load(key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(b, v); err != nil {
		slog.Warn(
			"ignoring malformed value",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return false, nil
	}

	return true, nil
}

// SaveJSON encodes v and stores it under key.
func SaveJSON(kv KV, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	return kv.Save(key, b)
}
