package core

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	if got := DateKey(2026, 2, 7); got != "07/02/2026" {
		t.Fatalf("DateKey = %q", got)
	}
	if got := DateKey(812, 12, 31); got != "31/12/0812" {
		t.Fatalf("DateKey should pad the year, got %q", got)
	}
	if got := FormatDateKey(time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC)); got != "09/03/2024" {
		t.Fatalf("FormatDateKey = %q", got)
	}
}

func TestParseDateKey(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"01/01/2025", true},
		{"29/02/2024", true},
		{"29/02/2023", false}, // not a leap year
		{"31/04/2025", false},
		{"1/1/2025", false},
		{"01/13/2025", false},
		{"2025-01-01", false},
		{"01/01/25", false},
		{"", false},
	}
	for _, tc := range cases {
		got, err := ParseDateKey(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q expected ok, got %v", tc.in, err)
			}
			if FormatDateKey(got) != tc.in {
				t.Fatalf("%q round-tripped to %q", tc.in, FormatDateKey(got))
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestIsToday(t *testing.T) {
	now := time.Date(2026, 10, 17, 8, 0, 0, 0, time.Local)
	if !IsToday("17/10/2026", now) {
		t.Fatalf("expected today")
	}
	if IsToday("16/10/2026", now) {
		t.Fatalf("expected not today")
	}
}
