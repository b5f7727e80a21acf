package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/theirongolddev/hstreak/internal/model"
)

func habitWith(id int, start time.Time, freq, completions int) model.Habit {
	h := model.Habit{ID: id, Name: "h", StartDate: start, FrequencyDays: freq}
	for i := 0; i < completions; i++ {
		h.Completions = append(h.Completions, start.AddDate(0, 0, i*freq))
	}
	return h
}

func TestHabitStats_Daily(t *testing.T) {
	today := mustDate(t, "2025-03-20")
	h := model.Habit{
		ID:            1,
		Name:          "Read",
		StartDate:     today.AddDate(0, 0, -9),
		FrequencyDays: 1,
		Completions:   Backfill(today.AddDate(0, 0, -9), 1, today),
	}

	s := HabitStats(h, today)
	if s.TotalDays != 10 {
		t.Fatalf("TotalDays = %d, want 10", s.TotalDays)
	}
	if s.StreakDays != 9 {
		t.Fatalf("StreakDays = %d, want 9", s.StreakDays)
	}
	if s.StreakLengthDays != s.TotalDays {
		t.Fatalf("StreakLengthDays = %d, want TotalDays %d", s.StreakLengthDays, s.TotalDays)
	}
	if math.Abs(s.Consistency-0.9) > 1e-9 {
		t.Fatalf("Consistency = %.3f, want 0.900", s.Consistency)
	}
	if s.ExpectedCompletions != 0 {
		t.Fatalf("ExpectedCompletions = %d, want 0 for daily habit", s.ExpectedCompletions)
	}
	if s.CompletedToday {
		t.Fatal("CompletedToday = true before marking")
	}
}

func TestHabitStats_NonDailyUsesFloorDivision(t *testing.T) {
	today := mustDate(t, "2025-03-20")
	declared := 14
	h := model.Habit{
		ID:            2,
		StartDate:     today.AddDate(0, 0, -14),
		FrequencyDays: 7,
		Completions:   Backfill(today.AddDate(0, 0, -14), 7, today),
		DeclaredDays:  &declared,
	}

	s := HabitStats(h, today)
	if s.TotalDays != 15 {
		t.Fatalf("TotalDays = %d, want 15", s.TotalDays)
	}
	if s.ExpectedCompletions != 2 {
		t.Fatalf("ExpectedCompletions = %d, want 2", s.ExpectedCompletions)
	}
	if s.Consistency != 0 {
		t.Fatalf("Consistency = %.2f, want 0 for weekly habit", s.Consistency)
	}
	if !s.Declared || s.StreakLengthDays != 14 {
		t.Fatalf("StreakLengthDays = %d (declared=%v), want 14", s.StreakLengthDays, s.Declared)
	}
}

func TestHabitStats_FutureStartClampsTotalDays(t *testing.T) {
	today := mustDate(t, "2025-03-20")
	h := model.Habit{StartDate: today.AddDate(0, 0, 3), FrequencyDays: 1}

	s := HabitStats(h, today)
	if s.TotalDays != 1 {
		t.Fatalf("TotalDays = %d, want 1", s.TotalDays)
	}
	if s.Consistency != 0 {
		t.Fatalf("Consistency = %.2f, want 0", s.Consistency)
	}
}

func TestTotals(t *testing.T) {
	today := mustDate(t, "2025-03-20")
	habits := []model.Habit{
		habitWith(1, today.AddDate(0, 0, -9), 1, 5),
		habitWith(2, today.AddDate(0, 0, -4), 1, 3),
	}

	tot := Totals(habits, today)
	if tot.Habits != 2 {
		t.Fatalf("Habits = %d, want 2", tot.Habits)
	}
	if tot.Completions != 8 {
		t.Fatalf("Completions = %d, want 8", tot.Completions)
	}
	if tot.AvgCompletions != 4.0 {
		t.Fatalf("AvgCompletions = %.2f, want 4.0", tot.AvgCompletions)
	}
	if tot.Days != 15 {
		t.Fatalf("Days = %d, want 15", tot.Days)
	}
	if math.Abs(tot.Years-15/DaysPerYear) > 1e-12 {
		t.Fatalf("Years = %f, want %f", tot.Years, 15/DaysPerYear)
	}
	if !tot.HasAverage() {
		t.Fatal("HasAverage() = false with two habits")
	}
}

func TestTotals_Empty(t *testing.T) {
	tot := Totals(nil, mustDate(t, "2025-03-20"))
	if tot != (model.TotalStats{}) {
		t.Fatalf("Totals(nil) = %+v, want zero value", tot)
	}
	if tot.HasAverage() {
		t.Fatal("HasAverage() = true with no habits")
	}
}

func TestDailyCompletions(t *testing.T) {
	today := mustDate(t, "2025-03-20")
	habits := []model.Habit{
		habitWith(1, today.AddDate(0, 0, -3), 1, 4), // -3, -2, -1, today
		habitWith(2, today.AddDate(0, 0, -2), 2, 2), // -2, today
		habitWith(3, today.AddDate(0, 0, -30), 1, 1),
	}

	counts := DailyCompletions(habits, today.AddDate(0, 0, -4), today)
	want := []int{0, 1, 2, 1, 2}
	if len(counts) != len(want) {
		t.Fatalf("len = %d, want %d", len(counts), len(want))
	}
	for i, w := range want {
		if counts[i].Count != w {
			t.Fatalf("counts[%d] (%s) = %d, want %d", i, counts[i].Date.Format(DateLayout), counts[i].Count, w)
		}
	}
	if !SameDay(counts[len(counts)-1].Date, today) {
		t.Fatal("last bucket should be today")
	}
}

func TestFilterByName(t *testing.T) {
	stats := []model.HabitStats{{Name: "Read a book"}, {Name: "Meditate"}, {Name: "READ news"}}

	got := FilterByName(stats, "read")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if len(FilterByName(stats, "")) != 3 {
		t.Fatal("empty query should return all habits")
	}
}
