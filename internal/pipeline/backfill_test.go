package pipeline

import (
	"math"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestBackfill_DailyStopsAtYesterday(t *testing.T) {
	today := mustDate(t, "2025-03-20")
	start := today.AddDate(0, 0, -10)

	dates := Backfill(start, 1, today)
	if len(dates) != 10 {
		t.Fatalf("len(dates) = %d, want 10", len(dates))
	}
	if !SameDay(dates[0], start) {
		t.Fatalf("first = %s, want %s", dates[0].Format(DateLayout), start.Format(DateLayout))
	}
	yesterday := today.AddDate(0, 0, -1)
	if !SameDay(dates[len(dates)-1], yesterday) {
		t.Fatalf("last = %s, want %s", dates[len(dates)-1].Format(DateLayout), yesterday.Format(DateLayout))
	}
	for _, d := range dates {
		if SameDay(d, today) {
			t.Fatal("today must never be back-filled")
		}
	}
}

func TestBackfill_StepsByFrequency(t *testing.T) {
	today := mustDate(t, "2025-03-20")

	tests := []struct {
		name   string
		start  time.Time
		freq   int
		expect []string
	}{
		{"weekly from 14 days ago", today.AddDate(0, 0, -14), 7, []string{"2025-03-06", "2025-03-13"}},
		{"every 2 days", today.AddDate(0, 0, -5), 2, []string{"2025-03-15", "2025-03-17", "2025-03-19"}},
		{"weekly shorter than a week", today.AddDate(0, 0, -3), 7, []string{"2025-03-17"}},
		{"starts today", today, 1, nil},
		{"starts yesterday", today.AddDate(0, 0, -1), 1, []string{"2025-03-19"}},
		{"future start", today.AddDate(0, 0, 2), 1, nil},
		{"invalid frequency", today.AddDate(0, 0, -5), 0, nil},
		{"frequency near max int", today.AddDate(0, 0, -2), math.MaxInt, []string{"2025-03-18"}},
		{"frequency longer than span", today.AddDate(0, 0, -2), 365, []string{"2025-03-18"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Backfill(tt.start, tt.freq, today)
			if len(got) != len(tt.expect) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.expect), got)
			}
			for i, want := range tt.expect {
				if g := got[i].Format(DateLayout); g != want {
					t.Fatalf("dates[%d] = %s, want %s", i, g, want)
				}
			}
		})
	}
}

func TestBackfill_AcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	start := time.Date(2025, 3, 5, 0, 0, 0, 0, loc)
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, loc) // DST began 2025-03-09

	dates := Backfill(start, 1, today)
	if len(dates) != 10 {
		t.Fatalf("len(dates) = %d, want 10", len(dates))
	}
	for i := 1; i < len(dates); i++ {
		if DaysBetween(dates[i-1], dates[i]) != 1 {
			t.Fatalf("gap between %s and %s is not one day", dates[i-1], dates[i])
		}
	}
}
