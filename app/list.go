package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/fitdeck/fitdeck/internal/models"
	"github.com/fitdeck/fitdeck/internal/ui"
	"github.com/fitdeck/fitdeck/metrics"
)

const (
	noHistoryMsg   = "No workouts found for the specified time range"
	noGoalsMsg     = "No goals yet. Add one with 'fitdeck goals add'"
	noTemplatesMsg = "The template catalog is empty"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

func intensityText(i models.Intensity) string {
	switch i {
	case models.Low:
		return ui.Green(i)
	case models.Medium:
		return ui.Cyan(i)
	case models.High:
		return ui.Magenta(i)
	case models.VeryHigh:
		return ui.Red(i)
	}

	return string(i)
}

// printHistoryTable prints a table of finished workouts.
func printHistoryTable(w io.Writer, history []models.HistoricalWorkout) {
	if len(history) == 0 {
		fmt.Fprintln(w, pterm.Info.Sprint(noHistoryMsg))
		return
	}

	tableBody := make([][]string, 0, len(history)+2)

	tableBody = append(tableBody, []string{
		"ID", "DATE", "NAME", "DURATION", "INTENSITY", "TARGET",
	})

	for _, h := range history {
		tableBody = append(tableBody, []string{
			h.ID,
			h.Date,
			h.Name,
			h.Duration,
			intensityText(h.Intensity),
			h.Target,
		})
	}

	sum := metrics.Summarise(history)

	tableBody = append(tableBody, []string{
		"",
		"",
		ui.Highlight(fmt.Sprintf("%d workouts", sum.Workouts)),
		ui.Highlight(fmt.Sprintf("%.0f min", sum.TotalMinutes)),
		"",
		"",
	})

	ui.PrintTable(tableBody, w)
}

// printTemplatesTable prints the template catalog.
func printTemplatesTable(w io.Writer, templates []models.Template) {
	if len(templates) == 0 {
		fmt.Fprintln(w, pterm.Info.Sprint(noTemplatesMsg))
		return
	}

	tableBody := make([][]string, 0, len(templates)+1)

	tableBody = append(tableBody, []string{
		"NAME", "DURATION", "LEVEL", "FOCUS", "EQUIPMENT", "EXERCISES",
	})

	for _, t := range templates {
		tableBody = append(tableBody, []string{
			ui.Highlight(t.Name),
			t.Duration,
			t.Level,
			t.Focus,
			t.Equipment,
			strconv.Itoa(len(t.Details.Exercises)),
		})
	}

	ui.PrintTable(tableBody, w)
}

// printGoalsTable prints goals with a progress bar per goal.
func printGoalsTable(w io.Writer, goals []models.Goal) {
	if len(goals) == 0 {
		fmt.Fprintln(w, pterm.Info.Sprint(noGoalsMsg))
		return
	}

	tableBody := make([][]string, 0, len(goals)+1)

	tableBody = append(tableBody, []string{
		"ID", "NAME", "CATEGORY", "CURRENT", "TARGET", "PROGRESS",
	})

	for _, g := range goals {
		tableBody = append(tableBody, []string{
			g.ID,
			g.Name,
			g.Category,
			g.Current,
			g.Target,
			progressBar(g.Progress),
		})
	}

	ui.PrintTable(tableBody, w)
}

// printRecovery prints the recovery scores and the recommended intensity.
func printRecovery(w io.Writer, r models.Recovery) {
	tableBody := [][]string{
		{"SCORE", "VALUE", ""},
		{"Sleep quality", strconv.Itoa(r.SleepQuality), progressBar(r.SleepQuality)},
		{"Muscle recovery", strconv.Itoa(r.MuscleRecovery), progressBar(r.MuscleRecovery)},
		{"Readiness", strconv.Itoa(r.ReadinessScore), progressBar(r.ReadinessScore)},
	}

	ui.PrintTable(tableBody, w)

	fmt.Fprintf(
		w,
		"Recommended intensity: %s\n",
		intensityText(r.RecommendedIntensity),
	)
}

const barWidth = 20

// progressBar renders a percentage as a fixed-width bar.
func progressBar(percent int) string {
	percent = min(max(percent, 0), 100)

	filled := percent * barWidth / 100

	bar := ui.Green(strings.Repeat("█", filled)) + strings.Repeat("░", barWidth-filled)

	return fmt.Sprintf("%s %3d%%", bar, percent)
}
