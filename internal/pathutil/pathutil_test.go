package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvVar, "test")

	p := &Paths{
		dir:            "fitdeck",
		configFileName: "config.yml",
		dbFileName:     "fitdeck.db",
		sqliteFileName: "fitdeck.sqlite",
		logFileName:    "fitdeck.log",
	}

	p.applyEnvironmentOverrides()

	assert.Equal(t, "config_test.yml", p.configFileName)
	assert.Equal(t, "fitdeck_test.db", p.dbFileName)
	assert.Equal(t, "fitdeck_test.sqlite", p.sqliteFileName)
	assert.Equal(t, "fitdeck_test.log", p.logFileName)
}

func TestComputePaths(t *testing.T) {
	p := &Paths{
		dir:            "fitdeck",
		configFileName: "config.yml",
		dbFileName:     "fitdeck.db",
		sqliteFileName: "fitdeck.sqlite",
		logFileName:    "fitdeck.log",
	}

	assert.NoError(t, p.computePaths())

	assert.Equal(t, "config.yml", filepath.Base(p.configFilePath))
	assert.Equal(t, "fitdeck", filepath.Base(p.dataDir))
	assert.Equal(t, filepath.Join(p.dataDir, "fitdeck.db"), p.dbFilePath)
	assert.Equal(t, filepath.Join(p.dataDir, "log", "fitdeck.log"), p.logFilePath)
}
