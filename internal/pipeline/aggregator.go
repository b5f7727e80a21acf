// Package pipeline derives habit statistics from ledger records.
// Every function is pure and takes "today" explicitly so one evaluation pass
// uses a single date throughout.
package pipeline

import (
	"strings"
	"time"

	"github.com/theirongolddev/hstreak/internal/model"
)

// DaysPerYear converts summed habit days into approximate years.
const DaysPerYear = 365.25

// HabitStats computes the derived view of a single habit as of today.
func HabitStats(h model.Habit, today time.Time) model.HabitStats {
	totalDays := DaysBetween(h.StartDate, today) + 1
	if totalDays < 1 {
		// Start date in the future; constructors reject this, but never divide by zero.
		totalDays = 1
	}

	stats := model.HabitStats{
		ID:               h.ID,
		Name:             h.Name,
		StartDate:        h.StartDate,
		FrequencyDays:    h.FrequencyDays,
		Completions:      append([]time.Time(nil), h.Completions...),
		StreakDays:       len(h.Completions),
		TotalDays:        totalDays,
		StreakLengthDays: totalDays,
		CompletedToday:   CompletedOn(h, today),
	}

	if h.DeclaredDays != nil {
		stats.Declared = true
		stats.StreakLengthDays = *h.DeclaredDays
	}

	if h.IsDaily() {
		stats.Consistency = float64(stats.StreakDays) / float64(totalDays)
	} else if h.FrequencyDays > 1 {
		stats.ExpectedCompletions = totalDays / h.FrequencyDays
	}

	return stats
}

// Totals computes the aggregate across all habits as of today.
func Totals(habits []model.Habit, today time.Time) model.TotalStats {
	var t model.TotalStats
	for _, h := range habits {
		t.Habits++
		t.Completions += len(h.Completions)
		t.Days += HabitStats(h, today).TotalDays
	}

	t.Years = float64(t.Days) / DaysPerYear
	if t.Habits > 0 {
		t.AvgCompletions = float64(t.Completions) / float64(t.Habits)
	}
	return t
}

// AllStats computes HabitStats for every habit, preserving order.
func AllStats(habits []model.Habit, today time.Time) []model.HabitStats {
	out := make([]model.HabitStats, 0, len(habits))
	for _, h := range habits {
		out = append(out, HabitStats(h, today))
	}
	return out
}

// CompletedOn reports whether h has a completion on day.
func CompletedOn(h model.Habit, day time.Time) bool {
	for _, c := range h.Completions {
		if SameDay(c, day) {
			return true
		}
	}
	return false
}

// DailyCompletions counts completions per calendar day in [since, today],
// oldest first. Days without completions are present with a zero count.
func DailyCompletions(habits []model.Habit, since, today time.Time) []model.DailyCount {
	n := DaysBetween(since, today) + 1
	if n < 1 {
		return nil
	}

	first := Day(since)
	counts := make([]model.DailyCount, n)
	for i := range counts {
		counts[i].Date = first.AddDate(0, 0, i)
	}

	for _, h := range habits {
		for _, c := range h.Completions {
			idx := DaysBetween(first, c)
			if idx < 0 || idx >= n {
				continue
			}
			counts[idx].Count++
		}
	}
	return counts
}

// FilterByName returns habits whose name contains query (case-insensitive).
func FilterByName(stats []model.HabitStats, query string) []model.HabitStats {
	if query == "" {
		return stats
	}
	var result []model.HabitStats
	for _, s := range stats {
		if containsIgnoreCase(s.Name, query) {
			result = append(result, s)
		}
	}
	return result
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
