package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/store"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig(path string) *Config {
	return &Config{
		Store: StoreConfig{
			Driver:      store.DriverBolt,
			RedisAddr:   "localhost:6379",
			RedisPrefix: "fitdeck:",
			MemorySize:  store.DefaultMemorySize,
		},
		Session: SessionConfig{
			Notify:           true,
			RecoveryBoostMin: 10,
			RecoveryBoostMax: 20,
		},
		Intensity: IntensityConfig{
			Mapping:  models.DefaultIntensityLabels,
			Fallback: "Medium",
		},
		Recovery: RecoveryConfig{
			Step: 5,
		},
		Display: DisplayConfig{
			DarkTheme: true,
		},
		Dashboard: DashboardConfig{
			Port: 1111,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
		},
		System: SystemConfig{
			ConfigPath: path,
		},
	}
}

func TestDefaultConfigWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(path), cfg)
	assert.FileExists(t, path)

	// a second load reads the file that was just written
	again, err := New(WithViperConfig(path))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestConfigFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	yml := `store:
  driver: sqlite
  path: /tmp/fitdeck.sqlite
session:
  notify: false
  sound: /usr/share/sounds/gong.mp3
  recovery_boost_min: 5
  recovery_boost_max: 8
intensity:
  mapping:
    easy: low
    brutal: very high
  fallback: low
dashboard:
  port: 8080
`

	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, store.DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/fitdeck.sqlite", cfg.StoreOptions().Path)
	assert.False(t, cfg.Session.Notify)
	assert.Equal(t, "/usr/share/sounds/gong.mp3", cfg.Session.Sound)
	assert.Equal(t, 5, cfg.Session.RecoveryBoostMin)
	assert.Equal(t, 8, cfg.Session.RecoveryBoostMax)
	assert.Equal(t, "127.0.0.1:8080", cfg.DashboardAddr())

	m, err := cfg.Intensities()
	require.NoError(t, err)

	got, ok := m.Resolve("Brutal")
	assert.True(t, ok)
	assert.Equal(t, models.VeryHigh, got)
	assert.Equal(t, models.Low, m.Fallback())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Store.Driver = "postgres" },
			wantErr: errUnknownDriver,
		},
		{
			name: "inverted boost range",
			mutate: func(c *Config) {
				c.Session.RecoveryBoostMin = 20
				c.Session.RecoveryBoostMax = 10
			},
			wantErr: errInvalidBoost,
		},
		{
			name:    "boost above 100",
			mutate:  func(c *Config) { c.Session.RecoveryBoostMax = 120 },
			wantErr: errInvalidBoost,
		},
		{
			name:    "zero step",
			mutate:  func(c *Config) { c.Recovery.Step = 0 },
			wantErr: errInvalidStep,
		},
		{
			name:    "bad fallback",
			mutate:  func(c *Config) { c.Intensity.Fallback = "extreme" },
			wantErr: errInvalidIntensity,
		},
		{
			name: "bad mapping",
			mutate: func(c *Config) {
				c.Intensity.Mapping = map[string]string{"easy": "chill"}
			},
			wantErr: errInvalidIntensity,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Dashboard.Port = 70000 },
			wantErr: errInvalidPort,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "chatty" },
			wantErr: errInvalidLogLevel,
		},
	}

	assert.NoError(t, defaultConfig("").Validate())

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig("")
			tc.mutate(cfg)

			assert.ErrorIs(t, cfg.Validate(), tc.wantErr)
		})
	}
}

func TestCLIOverrides(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("store", "", "")
	set.String("db", "", "")
	set.String("redis-addr", "", "")
	set.String("session-cmd", "", "")
	set.String("sound", "", "")
	set.Int("port", 0, "")
	set.Bool("disable-notification", false, "")

	require.NoError(t, set.Parse([]string{
		"--store", "memory",
		"--session-cmd", "echo done",
		"--sound", "/tmp/bell.ogg",
		"--disable-notification",
	}))

	ctx := cli.NewContext(cli.NewApp(), set, nil)

	cfg := defaultConfig("")
	require.NoError(t, WithCLIConfig(ctx)(cfg))

	assert.Equal(t, store.DriverMemory, cfg.Store.Driver)
	assert.Equal(t, "echo done", cfg.Session.Cmd)
	assert.Equal(t, "/tmp/bell.ogg", cfg.Session.Sound)
	assert.False(t, cfg.Session.Notify)
	assert.Equal(t, 1111, cfg.Dashboard.Port)
	assert.Equal(t, "localhost:6379", cfg.Store.RedisAddr)
}

func TestPromptedValuesWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg := &Config{}
	applyPromptOptions(cfg, PromptOptions{
		Driver:    store.DriverMemory,
		Notify:    false,
		DarkTheme: false,
	})

	require.NoError(t, WithViperConfig(path)(cfg))

	loaded, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, store.DriverMemory, loaded.Store.Driver)
	assert.False(t, loaded.Session.Notify)
	assert.False(t, loaded.Display.DarkTheme)
}
