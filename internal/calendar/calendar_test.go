package calendar

import (
	"testing"
	"time"

	"dailyeat/internal/core"
)

func rec(date string, total int) core.LogRecord {
	return core.NewLogRecord(date, nil, total)
}

func TestRecordForLastWins(t *testing.T) {
	first := rec("05/03/2024", 100)
	last := rec("05/03/2024", 900)
	records := []core.LogRecord{first, rec("06/03/2024", 5), last}

	got, ok := RecordFor(records, "05/03/2024")
	if !ok || got.ID != last.ID {
		t.Fatalf("got %+v ok=%v, want last record", got, ok)
	}
	if _, ok := RecordFor(records, "07/03/2024"); ok {
		t.Fatalf("expected no record")
	}
	if _, ok := RecordFor(nil, "05/03/2024"); ok {
		t.Fatalf("expected no record in empty slice")
	}
}

func TestRecordsInMonth(t *testing.T) {
	records := []core.LogRecord{
		rec("01/02/2024", 1),
		rec("29/02/2024", 2),
		rec("01/03/2024", 3),
		rec("15/02/2023", 4),
		rec("2024-02-10", 5),
		rec("31/02/2024", 6),
		rec("garbage", 7),
	}
	got := RecordsInMonth(records, core.Month{Year: 2024, Month: 2})
	if len(got) != 2 || got[0].TotalCalories != 1 || got[1].TotalCalories != 2 {
		t.Fatalf("unexpected month records: %+v", got)
	}
}

func TestAverage(t *testing.T) {
	cases := []struct {
		name   string
		totals []int
		want   int
	}{
		{"empty", nil, 0},
		{"exact", []int{500, 1500}, 1000},
		{"truncates", []int{100, 100, 101}, 100},
		{"single", []int{1999}, 1999},
		{"zeros", []int{0, 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var records []core.LogRecord
			for _, v := range tc.totals {
				records = append(records, rec("01/01/2024", v))
			}
			if got := Average(records); got != tc.want {
				t.Fatalf("Average(%v) = %d, want %d", tc.totals, got, tc.want)
			}
		})
	}
}

func TestSuccessDays(t *testing.T) {
	records := []core.LogRecord{rec("01/01/2024", 1999), rec("02/01/2024", 2000), rec("03/01/2024", 2600)}
	if got := SuccessDays(records, 2000); got != 2 {
		t.Fatalf("SuccessDays = %d, want 2", got)
	}
	if got := SuccessDays(nil, 2000); got != 0 {
		t.Fatalf("SuccessDays(nil) = %d", got)
	}
}

func TestSuccessRate(t *testing.T) {
	cases := []struct {
		success, days, want int
	}{
		{10, 30, 33},
		{0, 31, 0},
		{31, 31, 100},
		{1, 3, 33},
		{2, 3, 66},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := SuccessRate(tc.success, tc.days); got != tc.want {
			t.Errorf("SuccessRate(%d, %d) = %d, want %d", tc.success, tc.days, got, tc.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	records := []core.LogRecord{
		rec("01/04/2024", 2100),
		rec("02/04/2024", 1500),
		rec("03/04/2024", 2000),
		rec("30/03/2024", 5000),
	}
	s := Summarize(records, core.Month{Year: 2024, Month: 4}, 2000)
	if s.DaysInMonth != 30 || s.LoggedDays != 3 || s.Average != 1866 || s.SuccessDays != 2 || s.SuccessRate != 6 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Target != 2000 || s.Month != (core.Month{Year: 2024, Month: 4}) {
		t.Fatalf("summary lost its inputs: %+v", s)
	}
}

func TestSummarizeEmptyMonth(t *testing.T) {
	s := Summarize([]core.LogRecord{rec("01/01/2024", 3000)}, core.Month{Year: 2024, Month: 6}, 2000)
	if s.Average != 0 || s.SuccessDays != 0 || s.SuccessRate != 0 || s.LoggedDays != 0 {
		t.Fatalf("expected zero statistics, got %+v", s)
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{1900, 2, 28},
		{2000, 2, 29},
		{2024, 1, 31},
		{2024, 4, 30},
		{2024, 12, 31},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestLeadingBlanks(t *testing.T) {
	cases := []struct {
		name              string
		year, month, want int
	}{
		{"monday", 2024, 1, 0},    // 1 Jan 2024
		{"wednesday", 2024, 5, 2}, // 1 May 2024
		{"thursday", 2024, 2, 3},  // 1 Feb 2024
		{"saturday", 2025, 2, 5},  // 1 Feb 2025
		{"sunday", 2024, 9, 6},    // 1 Sep 2024
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LeadingBlanks(tc.year, tc.month); got != tc.want {
				t.Fatalf("LeadingBlanks(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
			}
		})
	}
}

func TestRows(t *testing.T) {
	// February 2021 starts on a Monday and fills exactly four rows.
	if got := Rows(2021, 2); got != 4 {
		t.Fatalf("Rows(2021, 2) = %d", got)
	}
	// September 2024 starts on a Sunday: 6 blanks + 30 days.
	if got := Rows(2024, 9); got != 6 {
		t.Fatalf("Rows(2024, 9) = %d", got)
	}
}

func TestCellDate(t *testing.T) {
	if got := CellDate(2024, 3, 7); got != "07/03/2024" {
		t.Fatalf("CellDate = %q", got)
	}
}

func TestBuildGrid(t *testing.T) {
	m := core.Month{Year: 2024, Month: 5}
	hit := rec("02/05/2024", 2200)
	miss := rec("03/05/2024", 900)
	replaced := rec("03/05/2024", 100)
	records := []core.LogRecord{hit, replaced, miss, rec("02/06/2024", 2500)}
	now := time.Date(2024, 5, 3, 18, 0, 0, 0, time.UTC)

	g := BuildGrid(m, records, 2000, now)
	if g.LeadingBlanks != 2 || g.DaysInMonth != 31 || len(g.Days) != 31 {
		t.Fatalf("unexpected layout %+v", g)
	}
	if c := g.Days[0]; c.Status != StatusNone || c.Record != nil || c.DateKey != "01/05/2024" {
		t.Fatalf("day 1 = %+v", c)
	}
	if c := g.Days[1]; c.Status != StatusHit || c.Record == nil || c.Record.ID != hit.ID {
		t.Fatalf("day 2 = %+v", c)
	}
	if c := g.Days[2]; c.Status != StatusMiss || c.Record.ID != miss.ID || !c.IsToday {
		t.Fatalf("day 3 = %+v", c)
	}
	for i, c := range g.Days {
		if i != 2 && c.IsToday {
			t.Fatalf("day %d marked as today", c.Day)
		}
	}

	weeks := g.Weeks()
	if len(weeks) != Rows(2024, 5) {
		t.Fatalf("weeks = %d, want %d", len(weeks), Rows(2024, 5))
	}
	if !weeks[0][0].Blank() || !weeks[0][1].Blank() || weeks[0][2].Day != 1 {
		t.Fatalf("first week misaligned: %+v", weeks[0])
	}
	last := weeks[len(weeks)-1]
	if !last[Columns-1].Blank() {
		t.Fatalf("expected trailing blank, got %+v", last[Columns-1])
	}
}

func TestStepTarget(t *testing.T) {
	cases := []struct {
		target, steps, want int
	}{
		{2000, 1, 2100},
		{2000, -1, 1900},
		{3500, 1, 3500},
		{1200, -1, 1200},
		{1250, -1, 1200},
		{900, 0, 1200},
		{4000, 0, 3500},
	}
	for _, tc := range cases {
		if got := StepTarget(tc.target, tc.steps); got != tc.want {
			t.Errorf("StepTarget(%d, %d) = %d, want %d", tc.target, tc.steps, got, tc.want)
		}
	}
}

func TestRemaining(t *testing.T) {
	if got := Remaining(2500, 2000); got != 0 {
		t.Fatalf("Remaining over target = %d, want 0", got)
	}
	if got := Remaining(1500, 2000); got != 500 {
		t.Fatalf("Remaining = %d, want 500", got)
	}
	if RemainingLevel(301) != LevelComfortable || RemainingLevel(300) != LevelLow || RemainingLevel(0) != LevelLow {
		t.Fatalf("unexpected remaining levels")
	}
}
