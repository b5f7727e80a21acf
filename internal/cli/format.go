// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/theirongolddev/hstreak/internal/pipeline"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDays renders a day count with the right plural.
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return FormatNumber(int64(n)) + " days"
}

// FormatYears renders a fractional year count, e.g. "1.25 years".
func FormatYears(y float64) string {
	return humanize.FtoaWithDigits(y, 2) + " years"
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(pipeline.DateLayout)
}

// FormatRelative describes day relative to today: "today", "yesterday",
// otherwise a humanized distance like "2 weeks ago".
func FormatRelative(day, today time.Time) string {
	switch pipeline.DaysBetween(day, today) {
	case 0:
		return "today"
	case 1:
		return "yesterday"
	case -1:
		return "tomorrow"
	}
	return humanize.RelTime(civil(day), civil(today), "ago", "from now")
}

// civil maps t's calendar date to UTC midnight so day distances ignore DST.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
