package calendar

import (
	"strconv"
	"strings"
	"time"
)

// Accepted layouts for ParseInstant, most specific first.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseInstant parses a timestamp string leniently. It returns the zero time
// when nothing matches; callers treat a zero time as "matches no slot" rather
// than an error.
func ParseInstant(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// DateKey returns the YYYY-MM-DD key for a calendar day, built from local
// date components so the key is stable for any time of day.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseTimeOfDay splits an "HH:MM" string into hour and minute. Parsing is
// deliberately permissive: missing or non-numeric parts become 0 and no range
// check is applied, since template times are admin-authored and a degraded
// slot beats a crashed render.
func ParseTimeOfDay(value string) (hours, minutes int) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) > 0 {
		if h, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
			hours = h
		}
	}
	if len(parts) > 1 {
		if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			minutes = m
		}
	}
	return hours, minutes
}

// CombineDateAndTime anchors a wall-clock time onto baseDay's calendar date,
// with seconds and nanoseconds zeroed.
func CombineDateAndTime(baseDay time.Time, hours, minutes int) time.Time {
	return time.Date(baseDay.Year(), baseDay.Month(), baseDay.Day(), hours, minutes, 0, 0, baseDay.Location())
}

// startOfDay truncates to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isSameDay reports whether two instants fall on the same local calendar day.
func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// clockHours returns the time of day in fractional hours.
func clockHours(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}
