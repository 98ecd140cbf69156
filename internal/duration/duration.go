// Package duration converts free-text workout durations such as "45 min" or
// "1 hr 30 min" into whole seconds
package duration

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fitdeck/fitdeck/internal/apperr"
)

// Default is used whenever a duration cannot be recognised (30 minutes).
const Default = 1800

// DefaultText is Default written the way Normalise writes durations.
const DefaultText = "30 min"

var errUnrecognised = &apperr.Error{
	Message: "unrecognised duration %q: defaulting to 30 min",
}

// ErrUnrecognised is the diagnostic reported when the default was used.
var ErrUnrecognised error = errUnrecognised

var (
	minutesRegex = regexp.MustCompile(`(?i)^\s*(\d+)\s*(?:mins?|minutes?)\b`)
	hoursRegex   = regexp.MustCompile(
		`(?i)^\s*(\d+)\s*(?:hrs?|hours?)\b(?:\s*(\d+)\s*(?:mins?|minutes?)\b)?`,
	)
	bareRegex = regexp.MustCompile(`^\s*(\d+)\s*$`)
	unitRegex = regexp.MustCompile(`(?i)(?:min|hr|hour)`)
)

// Parse converts text to seconds. When no rule matches it returns Default
// along with a diagnostic wrapping ErrUnrecognised. The diagnostic is
// informational: the returned seconds are always usable.
func Parse(text string) (int, error) {
	if m := minutesRegex.FindStringSubmatch(text); m != nil {
		return atoi(m[1]) * 60, nil
	}

	if m := hoursRegex.FindStringSubmatch(text); m != nil {
		secs := atoi(m[1]) * 3600
		if m[2] != "" {
			secs += atoi(m[2]) * 60
		}

		return secs, nil
	}

	if m := bareRegex.FindStringSubmatch(text); m != nil {
		return atoi(m[1]) * 60, nil
	}

	return Default, errUnrecognised.Fmt(text)
}

// Seconds is like Parse but discards the diagnostic.
func Seconds(text string) int {
	secs, _ := Parse(text)
	return secs
}

// HasUnit reports whether text carries a minute or hour token.
func HasUnit(text string) bool {
	return unitRegex.MatchString(text)
}

// WithUnit appends " min" to text that has no unit token so that the
// duration remains recognisable when displayed or re-parsed.
func WithUnit(text string) string {
	text = strings.TrimSpace(text)
	if text == "" || HasUnit(text) {
		return text
	}

	return text + " min"
}

// Normalise is WithUnit, except that text Parse cannot recognise becomes
// DefaultText so that it describes the countdown actually used.
func Normalise(text string) string {
	text = WithUnit(text)
	if _, err := Parse(text); err != nil {
		return DefaultText
	}

	return text
}

// Minutes returns the parsed duration in minutes.
func Minutes(text string) float64 {
	return float64(Seconds(text)) / 60
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		// digits only, so this means overflow
		return 0
	}

	return n
}
