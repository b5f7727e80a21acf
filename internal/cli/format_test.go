package cli

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1234, "1,234"},
		{1234567, "1,234,567"},
		{-36525, "-36,525"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDays(t *testing.T) {
	if got := FormatDays(1); got != "1 day" {
		t.Fatalf("FormatDays(1) = %q", got)
	}
	if got := FormatDays(1500); got != "1,500 days" {
		t.Fatalf("FormatDays(1500) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.9); got != "90.0%" {
		t.Fatalf("FormatPercent(0.9) = %q, want 90.0%%", got)
	}
}

func TestFormatYears(t *testing.T) {
	if got := FormatYears(1.5); got != "1.5 years" {
		t.Fatalf("FormatYears(1.5) = %q, want %q", got, "1.5 years")
	}
}

func TestFormatRelative(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	tests := []struct {
		day  time.Time
		want string
	}{
		{today.Add(13 * time.Hour), "today"},
		{today.AddDate(0, 0, -1), "yesterday"},
		{today.AddDate(0, 0, 1), "tomorrow"},
		{today.AddDate(0, 0, -3), "3 days ago"},
		{today.AddDate(0, 0, -14), "2 weeks ago"},
	}
	for _, tt := range tests {
		if got := FormatRelative(tt.day, today); got != tt.want {
			t.Fatalf("FormatRelative(%s) = %q, want %q", tt.day.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "-" {
		t.Fatalf("FormatDate(zero) = %q, want -", got)
	}
	d := time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2025-01-02" {
		t.Fatalf("FormatDate = %q", got)
	}
}
