// utils/time_utils.go
package utils

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the only accepted input format for trip dates (HTML5 date inputs send it).
	DateLayout = "2006-01-02"
	// LongDateLayout renders dates the way itinerary headers show them, e.g. 01 January 2026.
	LongDateLayout = "02 January 2006"

	secondsPerDay = 24 * 60 * 60
)

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatLongDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(LongDateLayout)
}

// FormatDayHeader renders "Day 3 - Saturday, 03 January 2026".
func FormatDayHeader(n int, t time.Time) string {
	return fmt.Sprintf("Day %d - %s, %s", n, t.Weekday(), FormatLongDate(t))
}

// DaysInclusive counts calendar days from start to end, both included.
// Dates are truncated to midnight UTC so DST or wall-clock components never skew the count.
// Unix seconds are used instead of Sub, whose Duration saturates after about 292 years.
func DaysInclusive(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int((e.Unix()-s.Unix())/secondsPerDay) + 1
}
