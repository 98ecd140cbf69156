// Package timeutil provides utility functions for working with dates and
// durations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	dateparser "github.com/markusmobius/go-dateparser"
)

const (
	dayLayout        = "2006-01-02"
	secondsInAMinute = 60
)

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	return val / secondsInAMinute, val % secondsInAMinute
}

// Clock formats seconds as MM:SS, or H:MM:SS for an hour or more.
func Clock(val int) string {
	if val < 0 {
		val = 0
	}

	mins, secs := SecsToMinsAndSecs(val)
	if mins >= 60 {
		return fmt.Sprintf("%d:%02d:%02d", mins/60, mins%60, secs)
	}

	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// DayKey returns the calendar day of t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// ParseDay parses a YYYY-MM-DD calendar day in the local time zone.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, time.Local)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// FromStr parses a natural language date such as "yesterday", "3 days ago"
// or "2026-01-15" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := ParseDay(s); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	d, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", s, err)
	}

	return d.Time, nil
}
