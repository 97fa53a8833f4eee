package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month identifies a calendar month.
type Month struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: int(t.Month())}
}

// ParseMonth parses YYYY-MM.
func ParseMonth(s string) (Month, error) {
	y, m, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok || len(y) != 4 || len(m) != 2 {
		return Month{}, ErrInvalidMonth
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	month, err := strconv.Atoi(m)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	mo := Month{Year: year, Month: month}
	if err := mo.Validate(); err != nil {
		return Month{}, err
	}
	return mo, nil
}

func (m Month) Validate() error {
	if m.Month < 1 || m.Month > 12 {
		return ErrInvalidMonth
	}
	if m.Year < 1 || m.Year > 9999 {
		return ErrInvalidMonth
	}
	return nil
}

// First returns midnight UTC of the first day of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC)
}

// Next returns the following month, rolling the year over after December.
func (m Month) Next() Month {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

// Prev returns the preceding month, rolling the year back before January.
func (m Month) Prev() Month {
	return MonthOf(m.First().AddDate(0, -1, 0))
}

// Contains reports whether t falls in the month, comparing only year and month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && int(t.Month()) == m.Month
}

// String renders YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// Title renders the heading shown above a calendar, e.g. "FEBRUARY 2024".
func (m Month) Title() string {
	return strings.ToUpper(m.First().Format("January 2006"))
}

// MonthSummary is the statistics block of a month view.
type MonthSummary struct {
	Month       Month `json:"month"`
	Target      int   `json:"target"`
	DaysInMonth int   `json:"daysInMonth"`
	LoggedDays  int   `json:"loggedDays"`
	Average     int   `json:"average"`
	SuccessDays int   `json:"successDays"`
	SuccessRate int   `json:"successRate"` // percent, 0-100
}
