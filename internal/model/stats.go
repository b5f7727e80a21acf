package model

import "time"

// HabitStats holds the derived view of a single habit for one evaluation pass.
type HabitStats struct {
	ID            int
	Name          string
	StartDate     time.Time
	FrequencyDays int
	Completions   []time.Time

	StreakDays       int // number of recorded completions
	TotalDays        int // start date through today, inclusive
	StreakLengthDays int // declared day count, else TotalDays
	Declared         bool

	// Consistency is set for daily habits only (0..1).
	Consistency float64
	// ExpectedCompletions is set for non-daily habits only.
	ExpectedCompletions int

	CompletedToday bool
}

// IsDaily reports whether the stats belong to a daily habit.
func (s HabitStats) IsDaily() bool {
	return s.FrequencyDays == 1
}

// TotalStats holds the aggregate across every habit in the ledger.
type TotalStats struct {
	Habits         int
	Completions    int
	Days           int
	Years          float64
	AvgCompletions float64
}

// HasAverage reports whether the per-habit average is worth showing.
func (t TotalStats) HasAverage() bool {
	return t.Habits > 1
}

// DailyCount is the number of completions recorded on one calendar day.
type DailyCount struct {
	Date  time.Time
	Count int
}
