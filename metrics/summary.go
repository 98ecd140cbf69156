package metrics

import (
	"time"

	"github.com/montanaflynn/stats"

	"github.com/fitdeck/fitdeck/internal/duration"
	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/internal/timeutil"
)

// Summary aggregates the workout history.
type Summary struct {
	ByIntensity   map[models.Intensity]int `json:"by_intensity"`
	Workouts      int                      `json:"workouts"`
	TotalMinutes  float64                  `json:"total_minutes"`
	MeanMinutes   float64                  `json:"mean_minutes"`
	MedianMinutes float64                  `json:"median_minutes"`
}

// Summarise computes workout counts and duration statistics.
func Summarise(history []models.HistoricalWorkout) Summary {
	sum := Summary{
		Workouts:    len(history),
		ByIntensity: make(map[models.Intensity]int),
	}

	if len(history) == 0 {
		return sum
	}

	mins := make(stats.Float64Data, 0, len(history))

	for _, h := range history {
		mins = append(mins, duration.Minutes(h.Duration))
		sum.ByIntensity[h.Intensity]++
	}

	// errors are only returned for empty input
	sum.TotalMinutes, _ = stats.Sum(mins)
	sum.MeanMinutes, _ = stats.Mean(mins)
	sum.MedianMinutes, _ = stats.Median(mins)

	return sum
}

// Summary summarises the store's history.
func (s *Store) Summary() Summary {
	return Summarise(s.History())
}

// Since returns the workouts completed on or after day, preserving order.
func Since(history []models.HistoricalWorkout, day time.Time) []models.HistoricalWorkout {
	from := timeutil.DayKey(day)

	out := make([]models.HistoricalWorkout, 0, len(history))

	for _, h := range history {
		// YYYY-MM-DD keys sort chronologically
		if h.Date >= from {
			out = append(out, h)
		}
	}

	return out
}
