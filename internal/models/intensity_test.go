package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitdeck/fitdeck/internal/models"
)

func TestDefaultIntensityMap(t *testing.T) {
	m := models.DefaultIntensityMap()

	testCases := []struct {
		label  string
		want   models.Intensity
		mapped bool
	}{
		{"Beginner", models.Low, true},
		{"Light", models.Low, true},
		{"Intermediate", models.Medium, true},
		{"High", models.High, true},
		{"Advanced", models.High, true},
		{"VeryHigh", models.VeryHigh, true},
		{"very high", models.VeryHigh, true},
		{"Expert", models.Medium, false},
		{"", models.Medium, false},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			got, mapped := m.Resolve(tc.label)

			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.mapped, mapped)
		})
	}
}

func TestDefaultIntensityMapExtraLabels(t *testing.T) {
	core, err := models.NewIntensityMap(map[string]string{
		"Beginner":     "low",
		"Light":        "low",
		"Intermediate": "medium",
		"High":         "high",
	}, "medium")
	require.NoError(t, err)

	def := models.DefaultIntensityMap()

	// labels outside the core four fall back to Medium without the extras
	for label, want := range map[string]models.Intensity{
		"Advanced":  models.High,
		"Low":       models.Low,
		"Very High": models.VeryHigh,
	} {
		got, ok := core.Resolve(label)
		assert.False(t, ok, label)
		assert.Equal(t, models.Medium, got, label)

		got, ok = def.Resolve(label)
		assert.True(t, ok, label)
		assert.Equal(t, want, got, label)
	}
}

func TestCustomIntensityMap(t *testing.T) {
	m, err := models.NewIntensityMap(map[string]string{
		"Expert": "very_high",
	}, "low")
	require.NoError(t, err)

	v, ok := m.Resolve("expert")
	assert.True(t, ok)
	assert.Equal(t, models.VeryHigh, v)

	v, ok = m.Resolve("Beginner")
	assert.False(t, ok)
	assert.Equal(t, models.Low, v)
	assert.Equal(t, models.Low, m.Fallback())
}

func TestNewIntensityMapRejectsUnknownNames(t *testing.T) {
	_, err := models.NewIntensityMap(map[string]string{"x": "extreme"}, "medium")
	assert.Error(t, err)

	_, err = models.NewIntensityMap(nil, "nope")
	assert.Error(t, err)
}
