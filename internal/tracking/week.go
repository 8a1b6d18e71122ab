package tracking

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const dayMillis = 86400000

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02.01.2006",
}

// ParseDate parses a calendar date as entered in the forms and returns it at
// UTC midnight.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// DateOnly strips the time of day, keeping the calendar date of t in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ISOWeek returns the ISO-8601 week number (1..53) of the calendar date of t.
// Week 1 is the week holding the year's first Thursday.
func ISOWeek(t time.Time) int {
	d := DateOnly(t)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	// shift to the Thursday of the same ISO week
	thursday := d.AddDate(0, 0, 4-weekday)
	yearStart := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := float64(thursday.Sub(yearStart).Milliseconds()) / dayMillis
	return int(math.Ceil((days + 1) / 7))
}

// ISOWeekOf parses s and returns its ISO week number.
func ISOWeekOf(s string) (int, error) {
	d, err := ParseDate(s)
	if err != nil {
		return 0, err
	}
	return ISOWeek(d), nil
}
