// Package model defines domain types for hstreak habits and their statistics.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Habit is one tracked recurring activity with its completion history.
type Habit struct {
	ID            int
	Name          string
	StartDate     time.Time // local midnight
	FrequencyDays int

	// Completions is kept ascending with no duplicate dates.
	Completions []time.Time

	// DeclaredDays is set only for habits created from a day count.
	DeclaredDays *int
}

// Clone returns a deep copy so callers cannot mutate ledger-owned state.
func (h Habit) Clone() Habit {
	cp := h
	cp.Completions = append([]time.Time(nil), h.Completions...)
	if h.DeclaredDays != nil {
		d := *h.DeclaredDays
		cp.DeclaredDays = &d
	}
	return cp
}

// IsDaily reports whether the habit is expected every day.
func (h Habit) IsDaily() bool {
	return h.FrequencyDays == 1
}

// Frequency is a preset completion interval offered by the add form.
type Frequency struct {
	Label string
	Slug  string
	Days  int
}

// Frequencies lists the presets in display order.
var Frequencies = []Frequency{
	{Label: "Daily", Slug: "daily", Days: 1},
	{Label: "Every 2 Days", Slug: "every-2-days", Days: 2},
	{Label: "Weekly", Slug: "weekly", Days: 7},
}

// ParseFrequency accepts a preset label, a slug, or a positive day count.
func ParseFrequency(s string) (int, error) {
	v := strings.TrimSpace(s)
	for _, f := range Frequencies {
		if strings.EqualFold(v, f.Label) || strings.EqualFold(v, f.Slug) {
			return f.Days, nil
		}
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("unknown frequency %q (want daily, every-2-days, weekly or a positive number of days)", s)
	}
	return n, nil
}

// FrequencyLabel renders a day interval the way the form shows it.
func FrequencyLabel(days int) string {
	for _, f := range Frequencies {
		if f.Days == days {
			return f.Label
		}
	}
	return fmt.Sprintf("Every %d days", days)
}

// FrequencySlug is the config-file spelling of a day interval.
func FrequencySlug(days int) string {
	for _, f := range Frequencies {
		if f.Days == days {
			return f.Slug
		}
	}
	return strconv.Itoa(days)
}
