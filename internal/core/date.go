package core

// A date key is the canonical dd/MM/yyyy rendering of a calendar day. It is
// both what users see and the natural key of a LogRecord, so it never depends
// on the locale.

import (
	"fmt"
	"time"
)

// DateLayout is the Go layout for dd/MM/yyyy.
const DateLayout = "02/01/2006"

// FormatDateKey renders t as a date key in t's own location.
func FormatDateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DateKey builds the key for a calendar day. The day is not normalized, so
// callers are expected to pass a day that exists in the month.
func DateKey(year, month, day int) string {
	return fmt.Sprintf("%02d/%02d/%04d", day, month, year)
}

// ParseDateKey parses a key strictly: two-digit day and month, four-digit
// year, and a day that exists in its month.
func ParseDateKey(s string) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, ErrInvalidDate
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// IsToday reports whether key names the same calendar day as now.
func IsToday(key string, now time.Time) bool {
	return key == FormatDateKey(now)
}
