package metrics

import (
	"strings"

	"github.com/fitdeck/fitdeck/internal/models"
)

// Field names a recovery score.
type Field string

const (
	SleepQuality   Field = "sleep"
	MuscleRecovery Field = "muscle"
	Readiness      Field = "readiness"
)

// ParseField resolves a recovery field name.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sleep", "sleep_quality":
		return SleepQuality, nil
	case "muscle", "muscle_recovery":
		return MuscleRecovery, nil
	case "readiness", "readiness_score":
		return Readiness, nil
	}

	return "", errUnknownField.Fmt(s)
}

// RecommendedIntensity derives the suggested training intensity from the
// readiness score.
func RecommendedIntensity(readiness int) models.Intensity {
	switch {
	case readiness >= 80:
		return models.High
	case readiness >= 60:
		return models.Medium
	default:
		return models.Low
	}
}

func (s *Store) refreshRecommendationLocked() {
	r := &s.data.Recovery
	r.RecommendedIntensity = RecommendedIntensity(r.ReadinessScore)
}

// BoostRecovery raises muscle recovery and readiness by amount, each capped
// at 100.
func (s *Store) BoostRecovery(amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &s.data.Recovery
	r.ReadinessScore = clamp(r.ReadinessScore + amount)
	r.MuscleRecovery = clamp(r.MuscleRecovery + amount)

	s.refreshRecommendationLocked()

	return s.persistLocked()
}

// AdjustRecovery nudges a single score by delta, clamped to [0,100].
func (s *Store) AdjustRecovery(field Field, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &s.data.Recovery

	switch field {
	case SleepQuality:
		r.SleepQuality = clamp(r.SleepQuality + delta)
	case MuscleRecovery:
		r.MuscleRecovery = clamp(r.MuscleRecovery + delta)
	case Readiness:
		r.ReadinessScore = clamp(r.ReadinessScore + delta)
	default:
		return errUnknownField.Fmt(field)
	}

	s.refreshRecommendationLocked()

	return s.persistLocked()
}

// ResetRecovery zeroes every score and recommends Low intensity.
func (s *Store) ResetRecovery() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Recovery = models.Recovery{
		RecommendedIntensity: models.Low,
	}

	return s.persistLocked()
}
