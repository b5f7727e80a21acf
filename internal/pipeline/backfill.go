package pipeline

import "time"

// Backfill synthesizes the completion history of a habit that was kept
// perfectly from start up to yesterday: start, start+f, start+2f, ...
// Today is never included; it has to be marked explicitly.
func Backfill(start time.Time, frequencyDays int, today time.Time) []time.Time {
	if frequencyDays < 1 {
		return nil
	}
	span := DaysBetween(start, today) // days from start to today, exclusive of today
	if span <= 0 {
		return nil
	}

	first := Day(start)
	dates := make([]time.Time, 0, span/frequencyDays+1)
	for offset := 0; offset < span; offset += frequencyDays {
		dates = append(dates, first.AddDate(0, 0, offset))
	}
	return dates
}
