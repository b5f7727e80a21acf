package cmd

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/hstreak/internal/config"
	"github.com/theirongolddev/hstreak/internal/ledger"
)

func previewLedger() *ledger.Ledger {
	now := time.Date(2025, 3, 20, 9, 0, 0, 0, time.Local)
	return ledger.New(ledger.WithClock(func() time.Time { return now }))
}

func TestCreatePreview_StartDate(t *testing.T) {
	l := previewLedger()
	id, err := createPreview(l, config.DefaultConfig(), previewInput{name: "Read", start: "2025-03-10"})
	if err != nil {
		t.Fatalf("createPreview: %v", err)
	}
	s, _ := l.StatsFor(id)
	if s.StreakDays != 10 || s.TotalDays != 11 || s.FrequencyDays != 1 {
		t.Fatalf("stats = %+v, want 10 completions over 11 days, daily", s)
	}
}

func TestCreatePreview_DaysAndFrequency(t *testing.T) {
	l := previewLedger()
	id, err := createPreview(l, config.DefaultConfig(), previewInput{name: "Run", days: 14, useDays: true, frequency: "weekly"})
	if err != nil {
		t.Fatalf("createPreview: %v", err)
	}
	s, _ := l.StatsFor(id)
	if s.StreakDays != 2 || s.ExpectedCompletions != 2 || !s.Declared || s.StreakLengthDays != 14 {
		t.Fatalf("stats = %+v", s)
	}
}

func TestCreatePreview_FallsBackToConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.DefaultInputMode = config.InputDayCount
	cfg.General.DefaultDayCount = 5
	cfg.General.DefaultFrequency = "every-2-days"

	l := previewLedger()
	id, err := createPreview(l, cfg, previewInput{name: "Stretch"})
	if err != nil {
		t.Fatalf("createPreview: %v", err)
	}
	s, _ := l.StatsFor(id)
	if s.FrequencyDays != 2 || s.StreakLengthDays != 5 || s.StreakDays != 3 {
		t.Fatalf("stats = %+v, want every 2 days over 5 days with 3 completions", s)
	}
}

func TestCreatePreview_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   previewInput
	}{
		{"future start", previewInput{name: "Read", start: "2025-04-01"}},
		{"bad date", previewInput{name: "Read", start: "03/10/2025"}},
		{"negative days", previewInput{name: "Read", days: -1, useDays: true}},
		{"bad frequency", previewInput{name: "Read", frequency: "sometimes"}},
		{"blank name", previewInput{name: " ", useDays: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := previewLedger()
			if _, err := createPreview(l, config.DefaultConfig(), tt.in); err == nil {
				t.Fatal("expected error")
			}
			if l.Len() != 0 {
				t.Fatalf("Len() = %d, want 0", l.Len())
			}
		})
	}

	_, err := createPreview(previewLedger(), config.DefaultConfig(), previewInput{name: "Read", start: "2025-04-01"})
	if !errors.Is(err, ledger.ErrInvalidInput) {
		t.Fatalf("future start error = %v, want ErrInvalidInput", err)
	}
}

func TestCompletionsTable_NewestFirstWithLimit(t *testing.T) {
	l := previewLedger()
	id, _ := createPreview(l, config.DefaultConfig(), previewInput{name: "Read", days: 10, useDays: true})
	h, _ := l.Get(id)

	tbl := completionsTable(h, l.Today(), 3)
	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tbl.Rows))
	}
	if tbl.Rows[0][0] != "10" || tbl.Rows[0][1] != "2025-03-19" {
		t.Fatalf("first row = %v, want #10 on 2025-03-19", tbl.Rows[0])
	}
	if tbl.Rows[0][3] != "yesterday" {
		t.Fatalf("when = %q, want yesterday", tbl.Rows[0][3])
	}
	if tbl.Rows[2][0] != "8" {
		t.Fatalf("last row # = %q, want 8", tbl.Rows[2][0])
	}

	if all := completionsTable(h, l.Today(), 0); len(all.Rows) != 10 {
		t.Fatalf("limit 0 rows = %d, want 10", len(all.Rows))
	}
}

func TestPreviewPairs(t *testing.T) {
	l := previewLedger()
	daily, _ := createPreview(l, config.DefaultConfig(), previewInput{name: "Read", start: "2025-03-10"})
	weekly, _ := createPreview(l, config.DefaultConfig(), previewInput{name: "Run", days: 14, useDays: true, frequency: "weekly"})

	lookup := func(pairs [][2]string, label string) (string, bool) {
		for _, p := range pairs {
			if p[0] == label {
				return p[1], true
			}
		}
		return "", false
	}

	s, _ := l.StatsFor(daily)
	pairs := previewPairs(s, l.Today())
	if v, ok := lookup(pairs, "Consistency"); !ok || !strings.Contains(v, "10/11") {
		t.Fatalf("Consistency = %q, want a 10/11 bar", v)
	}
	strip, ok := lookup(pairs, "Last 28 days")
	if !ok {
		t.Fatal("day strip missing")
	}
	// 2025-03-10 through 03-19 completed, 03-20 (today) open.
	if got := strings.Count(strip, "█"); got != 10 {
		t.Fatalf("completed cells = %d, want 10 in %q", got, strip)
	}

	s, _ = l.StatsFor(weekly)
	pairs = previewPairs(s, l.Today())
	if _, ok := lookup(pairs, "Consistency"); ok {
		t.Fatal("weekly habit shows a consistency ratio")
	}
	if v, ok := lookup(pairs, "On track"); !ok || !strings.Contains(v, "2/2") {
		t.Fatalf("On track = %q, want a 2/2 bar", v)
	}
}
