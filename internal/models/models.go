package models

import (
	"slices"
)

// TemplateExercise is an exercise suggested by a workout template.
type TemplateExercise struct {
	Name     string `json:"name"     yaml:"name"`
	Duration string `json:"duration" yaml:"duration"`
}

// TemplateDetails holds the optional parts of a template.
type TemplateDetails struct {
	Exercises []TemplateExercise `json:"exercises" yaml:"exercises"`
}

// Template is a suggested or ad hoc workout from which sessions are started.
type Template struct {
	Name        string          `json:"name"        yaml:"name"`
	Duration    string          `json:"duration"    yaml:"duration"`
	Level       string          `json:"level"       yaml:"level"`
	Focus       string          `json:"focus"       yaml:"focus"`
	Equipment   string          `json:"equipment"   yaml:"equipment"`
	Description string          `json:"description" yaml:"description"`
	Details     TemplateDetails `json:"details"     yaml:"details"`
}

// HistoricalWorkout is the summary of a finished session.
type HistoricalWorkout struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Duration  string    `json:"duration"`
	Intensity Intensity `json:"intensity"`
	Target    string    `json:"target"`
}

// Recovery holds the recovery scores shown on the dashboard.
type Recovery struct {
	SleepQuality         int       `json:"sleep_quality"`
	MuscleRecovery       int       `json:"muscle_recovery"`
	ReadinessScore       int       `json:"readiness_score"`
	RecommendedIntensity Intensity `json:"recommended_intensity"`
}

// Goal is a tracked fitness goal such as "Bench press 100kg".
type Goal struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Target   string `json:"target"`
	Current  string `json:"current"`
	Category string `json:"category"`
	Progress int    `json:"progress"`
}

// Dashboard is the persisted aggregate of history, recovery and goals.
type Dashboard struct {
	History  []HistoricalWorkout `json:"history"`
	Goals    []Goal              `json:"goals"`
	Recovery Recovery            `json:"recovery"`
}

// Clone returns a deep copy of the dashboard.
func (d Dashboard) Clone() Dashboard {
	return Dashboard{
		History:  slices.Clone(d.History),
		Goals:    slices.Clone(d.Goals),
		Recovery: d.Recovery,
	}
}

// DayStatus is the standalone daily gauge.
type DayStatus struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}
