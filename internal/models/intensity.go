package models

import (
	"fmt"
	"strings"
)

// Intensity is the closed set of workout intensities.
type Intensity string

const (
	Low      Intensity = "Low"
	Medium   Intensity = "Medium"
	High     Intensity = "High"
	VeryHigh Intensity = "VeryHigh"
)

// Intensities lists every valid intensity from lowest to highest.
var Intensities = []Intensity{Low, Medium, High, VeryHigh}

func normaliseLabel(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	label = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(label)

	return label
}

// ParseIntensity resolves one of the intensity names, ignoring case and
// separators ("very high", "very_high" and "VeryHigh" are equivalent).
func ParseIntensity(s string) (Intensity, error) {
	n := normaliseLabel(s)

	for _, v := range Intensities {
		if normaliseLabel(string(v)) == n {
			return v, nil
		}
	}

	return "", fmt.Errorf("unknown intensity: %q", s)
}

// DefaultIntensityLabels maps the difficulty labels used by workout templates
// to intensities. Only Beginner, Light, Intermediate and High are required;
// the rest are deliberate additions so that Advanced, Low and Very High do
// not collapse to the Medium fallback. Set intensity.mapping to drop them.
var DefaultIntensityLabels = map[string]string{
	"beginner":     "low",
	"light":        "low",
	"low":          "low",
	"intermediate": "medium",
	"moderate":     "medium",
	"medium":       "medium",
	"advanced":     "high",
	"high":         "high",
	"very high":    "very high",
}

// IntensityMap resolves difficulty labels to intensities. Labels that are not
// in the table resolve to the fallback.
type IntensityMap struct {
	labels   map[string]Intensity
	fallback Intensity
}

// NewIntensityMap builds a map from label → intensity name pairs.
func NewIntensityMap(
	labels map[string]string,
	fallback string,
) (*IntensityMap, error) {
	fb, err := ParseIntensity(fallback)
	if err != nil {
		return nil, fmt.Errorf("intensity fallback: %w", err)
	}

	m := &IntensityMap{
		labels:   make(map[string]Intensity, len(labels)),
		fallback: fb,
	}

	for label, name := range labels {
		v, err := ParseIntensity(name)
		if err != nil {
			return nil, fmt.Errorf("intensity for label %q: %w", label, err)
		}

		m.labels[normaliseLabel(label)] = v
	}

	return m, nil
}

// DefaultIntensityMap returns the built-in table with a Medium fallback.
func DefaultIntensityMap() *IntensityMap {
	m, _ := NewIntensityMap(DefaultIntensityLabels, string(Medium))
	return m
}

// Resolve returns the intensity for label. The boolean is false when the
// fallback was used.
func (m *IntensityMap) Resolve(label string) (Intensity, bool) {
	v, ok := m.labels[normaliseLabel(label)]
	if !ok {
		return m.fallback, false
	}

	return v, true
}

// Fallback returns the intensity used for unknown labels.
func (m *IntensityMap) Fallback() Intensity {
	return m.fallback
}
