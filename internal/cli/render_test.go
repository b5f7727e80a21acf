package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/hstreak/internal/model"
)

func TestRenderTable_ContainsCells(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Back-filled",
		Headers: []string{"Date", "Day"},
		Rows:    [][]string{{"2025-06-01", "Sun"}, {"---"}, {"2025-06-08", "Sun"}},
	})
	for _, want := range []string{"Back-filled", "Date", "2025-06-01", "2025-06-08", "┼"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if out := RenderTable(Table{}); out != "" {
		t.Fatalf("RenderTable(empty) = %q, want empty", out)
	}
}

func TestRenderRatioBar(t *testing.T) {
	if got := RenderRatioBar(3, 4, 4); got != "███░ 3/4 (75.0%)" {
		t.Fatalf("RenderRatioBar(3, 4) = %q", got)
	}
	if got := RenderRatioBar(9, 4, 4); got != "████ 9/4 (100.0%)" {
		t.Fatalf("RenderRatioBar(9, 4) = %q, want a full bar", got)
	}
	if got := RenderRatioBar(0, 0, 10); got != "" {
		t.Fatalf("RenderRatioBar(0, 0) = %q, want empty", got)
	}
}

func TestRenderDayStrip_SplitsWeeks(t *testing.T) {
	sunday := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	days := make([]model.DailyCount, 8)
	for i := range days {
		days[i] = model.DailyCount{Date: sunday.AddDate(0, 0, i)}
	}
	days[0].Count = 1
	days[7].Count = 2

	if got := RenderDayStrip(days); got != "█ ······█" {
		t.Fatalf("RenderDayStrip = %q, want %q", got, "█ ······█")
	}
	if got := RenderDayStrip(nil); got != "" {
		t.Fatalf("RenderDayStrip(nil) = %q", got)
	}
}

func TestRenderKeyValues_Aligns(t *testing.T) {
	out := RenderKeyValues([][2]string{{"Name", "Read"}, {"Frequency", "Daily"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "Read") || !strings.Contains(lines[1], "Daily") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
