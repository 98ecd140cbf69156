package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/metrics"
)

func TestSummarise(t *testing.T) {
	sum := metrics.Summarise([]models.HistoricalWorkout{
		{Duration: "30 min", Intensity: models.Low},
		{Duration: "1 hr", Intensity: models.High},
		{Duration: "45 min", Intensity: models.High},
	})

	assert.Equal(t, 3, sum.Workouts)
	assert.InDelta(t, 135.0, sum.TotalMinutes, 0.001)
	assert.InDelta(t, 45.0, sum.MeanMinutes, 0.001)
	assert.InDelta(t, 45.0, sum.MedianMinutes, 0.001)
	assert.Equal(t, 2, sum.ByIntensity[models.High])
}

func TestSummariseEmpty(t *testing.T) {
	sum := metrics.Summarise(nil)

	assert.Equal(t, 0, sum.Workouts)
	assert.Zero(t, sum.MeanMinutes)
}

func TestSince(t *testing.T) {
	history := []models.HistoricalWorkout{
		{ID: "c", Date: "2026-04-03"},
		{ID: "b", Date: "2026-04-02"},
		{ID: "a", Date: "2026-03-30"},
	}

	got := metrics.Since(history, time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC))

	assert.Equal(t, history[:2], got)
	assert.Empty(t, metrics.Since(history, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
}
