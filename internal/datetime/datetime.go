// Package datetime holds the calendar conventions shared by the availability
// resolver and the booking path: dates are UTC-naive calendar days, clock
// values are "HH:MM" strings, weekdays are 0=Sunday..6=Saturday.
package datetime

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseDate parses a calendar date. The result is midnight UTC of that day.
func ParseDate(s string) (time.Time, error) {
	day, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return day, nil
}

// ParseClock validates an "HH:MM" time of day and returns it normalized.
func ParseClock(s string) (string, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse clock %q: %w", s, err)
	}
	return t.Format(ClockLayout), nil
}

// Weekday returns the day of week of a calendar date, 0 = Sunday.
func Weekday(day time.Time) int {
	return int(day.Weekday())
}

// Today returns the current UTC day truncated to midnight, comparable with
// ParseDate results.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
