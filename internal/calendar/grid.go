package calendar

import (
	"time"

	"dailyeat/internal/core"
)

// Columns is the number of days per grid row, Monday first.
const Columns = 7

// Status describes a day cell relative to the calorie target.
type Status string

const (
	StatusNone Status = "none"
	StatusHit  Status = "hit"
	StatusMiss Status = "miss"
)

// Cell is one position of the grid. Blank cells have Day 0 and no date.
type Cell struct {
	Day     int             `json:"day"`
	DateKey string          `json:"date,omitempty"`
	Record  *core.LogRecord `json:"record,omitempty"`
	Status  Status          `json:"status"`
	IsToday bool            `json:"isToday,omitempty"`
}

// Blank reports whether the cell is padding before day 1 or after the last day.
func (c Cell) Blank() bool { return c.Day == 0 }

// Grid is the laid-out month.
type Grid struct {
	Month         core.Month `json:"month"`
	LeadingBlanks int        `json:"leadingBlanks"`
	DaysInMonth   int        `json:"daysInMonth"`
	Days          []Cell     `json:"days"`
}

// DaysInMonth returns 28 to 31, following the Gregorian leap year rule.
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingBlanks is the number of empty cells before day 1 in a grid whose
// first column is Monday.
func LeadingBlanks(year, month int) int {
	wd := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(wd) + 6) % 7
}

// CellDate returns the date key of a day in the month.
func CellDate(year, month, day int) string {
	return core.DateKey(year, month, day)
}

// Rows is the number of grid rows needed for the month.
func Rows(year, month int) int {
	n := LeadingBlanks(year, month) + DaysInMonth(year, month)
	return (n + Columns - 1) / Columns
}

// BuildGrid lays out m and attaches the record, status and today flag of each
// day. now decides which cell is today.
func BuildGrid(m core.Month, records []core.LogRecord, target int, now time.Time) Grid {
	days := DaysInMonth(m.Year, m.Month)
	g := Grid{
		Month:         m,
		LeadingBlanks: LeadingBlanks(m.Year, m.Month),
		DaysInMonth:   days,
		Days:          make([]Cell, 0, days),
	}
	inMonth := RecordsInMonth(records, m)
	for d := 1; d <= days; d++ {
		key := CellDate(m.Year, m.Month, d)
		cell := Cell{Day: d, DateKey: key, Status: StatusNone, IsToday: core.IsToday(key, now)}
		if rec, ok := RecordFor(inMonth, key); ok {
			cell.Record = &rec
			cell.Status = StatusFor(rec, target)
		}
		g.Days = append(g.Days, cell)
	}
	return g
}

// StatusFor classifies a logged day.
func StatusFor(r core.LogRecord, target int) Status {
	if r.HitTarget(target) {
		return StatusHit
	}
	return StatusMiss
}

// Weeks returns the grid as rows of Columns cells, padded with blank cells at
// both ends.
func (g Grid) Weeks() [][]Cell {
	total := g.LeadingBlanks + len(g.Days)
	rows := (total + Columns - 1) / Columns
	out := make([][]Cell, rows)
	for i := range out {
		out[i] = make([]Cell, Columns)
		for j := range out[i] {
			out[i][j].Status = StatusNone
		}
	}
	for i, c := range g.Days {
		pos := g.LeadingBlanks + i
		out[pos/Columns][pos%Columns] = c
	}
	return out
}
