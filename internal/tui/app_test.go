package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/hstreak/internal/config"
	"github.com/theirongolddev/hstreak/internal/ledger"
	"github.com/theirongolddev/hstreak/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

var fixedToday = time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)

func newTestApp(t *testing.T) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HSTREAK_THEME", "")

	j, err := store.Open()
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })

	l := ledger.New(ledger.WithClock(func() time.Time { return fixedToday }))
	a := NewApp(l, j, config.DefaultConfig(), nil)
	a.needSetup = false
	a.width, a.height = 140, 40
	return a
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func countKind(t *testing.T, a App, k store.Kind) int {
	t.Helper()
	counts, err := a.journal.CountByKind()
	if err != nil {
		t.Fatalf("CountByKind: %v", err)
	}
	return counts[k]
}

func TestNewApp_NeedsSetupWithoutConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	a := NewApp(ledger.New(), nil, config.DefaultConfig(), nil)
	if !a.needSetup {
		t.Fatal("needSetup = false with no config file")
	}
	if a.suggestion == "" {
		t.Fatal("no initial suggestion")
	}
}

func TestCompleteSelectedHabit(t *testing.T) {
	a := newTestApp(t)
	id, err := a.ledger.CreateFromDayCount("Read", 3, 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	a.recompute()

	a = press(t, a, "c")
	s, _ := a.ledger.StatsFor(id)
	if !s.CompletedToday || s.StreakDays != 4 {
		t.Fatalf("after c: CompletedToday=%v StreakDays=%d, want true/4", s.CompletedToday, s.StreakDays)
	}
	if !a.view.Habits[0].CompletedToday {
		t.Fatal("view not refreshed after completion")
	}

	a = press(t, a, "enter")
	s, _ = a.ledger.StatsFor(id)
	if s.StreakDays != 4 {
		t.Fatalf("second completion changed StreakDays to %d", s.StreakDays)
	}
	if !strings.Contains(a.flash, "already completed") {
		t.Fatalf("flash = %q, want already completed notice", a.flash)
	}
	if n := countKind(t, a, store.KindCompleted); n != 1 {
		t.Fatalf("completed entries = %d, want 1", n)
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	a := newTestApp(t)
	_, _ = a.ledger.CreateFromDayCount("Read", 3, 1)
	keep, _ := a.ledger.CreateFromDayCount("Walk", 5, 2)
	a.recompute()

	a = press(t, a, "d", "n")
	if a.ledger.Len() != 2 {
		t.Fatalf("Len() = %d after cancelled delete, want 2", a.ledger.Len())
	}

	a = press(t, a, "d", "y")
	if a.ledger.Len() != 1 {
		t.Fatalf("Len() = %d after confirmed delete, want 1", a.ledger.Len())
	}
	if _, ok := a.ledger.Get(keep); !ok {
		t.Fatal("wrong habit deleted")
	}
	if n := countKind(t, a, store.KindDeleted); n != 1 {
		t.Fatalf("deleted entries = %d, want 1", n)
	}
	if a.habits.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", a.habits.cursor)
	}
}

func TestSubmitAdd(t *testing.T) {
	a := newTestApp(t)

	a.submitAdd(addValues{mode: config.InputDayCount, name: " Meditate ", days: "14", frequency: 7})
	if a.ledger.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", a.ledger.Len())
	}
	s := a.view.Habits[0]
	if s.Name != "Meditate" || s.StreakDays != 2 || s.StreakLengthDays != 14 {
		t.Fatalf("stats = %+v", s)
	}
	if a.flashErr {
		t.Fatalf("flash error on valid add: %q", a.flash)
	}

	a.submitAdd(addValues{mode: config.InputStartDate, name: "Read", start: "2025-06-05", frequency: 1})
	if a.ledger.Len() != 2 || a.view.Habits[1].StreakDays != 10 {
		t.Fatalf("start-date add: Len=%d habits=%+v", a.ledger.Len(), a.view.Habits)
	}
	if a.habits.cursor != 1 {
		t.Fatalf("cursor = %d, want the new habit selected", a.habits.cursor)
	}
	if n := countKind(t, a, store.KindAdded); n != 2 {
		t.Fatalf("added entries = %d, want 2", n)
	}
}

func TestSubmitAdd_RejectsWithoutMutation(t *testing.T) {
	a := newTestApp(t)

	bad := []addValues{
		{mode: config.InputStartDate, name: "   ", start: "2025-06-01", frequency: 1},
		{mode: config.InputStartDate, name: "Read", start: "2025-07-01", frequency: 1},
		{mode: config.InputStartDate, name: "Read", start: "June 1st", frequency: 1},
		{mode: config.InputDayCount, name: "Read", days: "-3", frequency: 1},
		{mode: config.InputDayCount, name: "Read", days: "ten", frequency: 1},
	}
	for _, v := range bad {
		a.submitAdd(v)
		if !a.flashErr || !strings.HasPrefix(a.flash, "Not added") {
			t.Fatalf("submitAdd(%+v) flash = %q, want rejection", v, a.flash)
		}
	}
	if a.ledger.Len() != 0 {
		t.Fatalf("Len() = %d after rejected input, want 0", a.ledger.Len())
	}
	if n := countKind(t, a, store.KindRejected); n != len(bad) {
		t.Fatalf("rejected entries = %d, want %d", n, len(bad))
	}
}

func TestNewSuggestionNeverRepeats(t *testing.T) {
	a := newTestApp(t)
	prev := a.suggestion
	for i := 0; i < 50; i++ {
		a = press(t, a, "n")
		if a.suggestion == prev {
			t.Fatalf("press %d repeated %q", i, prev)
		}
		prev = a.suggestion
	}
}

func TestTabKeys(t *testing.T) {
	a := newTestApp(t)
	steps := []struct {
		key  string
		want int
	}{
		{"h", tabHabits},
		{"v", tabActivity},
		{"x", tabSettings},
		{"o", tabOverview},
		{"left", tabSettings},
	}
	for _, s := range steps {
		if s.key == "left" {
			m, _ := a.Update(tea.KeyMsg{Type: tea.KeyLeft})
			a = m.(App)
		} else {
			a = press(t, a, s.key)
		}
		if a.activeTab != s.want {
			t.Fatalf("after %q activeTab = %d, want %d", s.key, a.activeTab, s.want)
		}
	}
}

func TestAddFormOpensAndEscCancels(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "a")
	if a.addForm == nil || a.addVals == nil {
		t.Fatal("add form not opened")
	}
	if a.addVals.start != "2025-06-08" || a.addVals.days != "30" || a.addVals.frequency != 1 {
		t.Fatalf("form defaults = %+v", *a.addVals)
	}
	a = press(t, a, "esc")
	if a.addForm != nil {
		t.Fatal("esc did not close the add form")
	}
	if a.ledger.Len() != 0 {
		t.Fatal("cancelled form created a habit")
	}
}

func TestHabitsFilter(t *testing.T) {
	a := newTestApp(t)
	_, _ = a.ledger.CreateFromDayCount("Read", 3, 1)
	_, _ = a.ledger.CreateFromDayCount("Walk", 3, 1)
	a.recompute()

	a = press(t, a, "h", "/")
	if !a.habits.searching {
		t.Fatal("search mode not entered")
	}
	a = press(t, a, "w", "a", "enter")
	if got := a.visibleHabits(); len(got) != 1 || got[0].Name != "Walk" {
		t.Fatalf("visibleHabits = %+v, want [Walk]", got)
	}
	a = press(t, a, "esc")
	if len(a.visibleHabits()) != 2 {
		t.Fatal("esc did not clear the filter")
	}
}

func TestSettingsRejectsUnknownTheme(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "x", "enter")
	if !a.settings.editing {
		t.Fatal("settings edit not started")
	}
	a.settings.input.SetValue("neon")
	a = press(t, a, "enter")
	if a.settings.saveErr == nil {
		t.Fatal("unknown theme accepted")
	}
	if config.Exists() {
		t.Fatal("config written for rejected value")
	}
}

func TestSettingsSavesDayCount(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "x")
	a.settings.cursor = settingsFieldDayCount
	a = press(t, a, "enter")
	a.settings.input.SetValue("90")
	a = press(t, a, "enter")
	if a.settings.saveErr != nil {
		t.Fatalf("saveErr = %v", a.settings.saveErr)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DefaultDayCount != 90 || a.cfg.General.DefaultDayCount != 90 {
		t.Fatalf("DefaultDayCount saved=%d live=%d, want 90", cfg.General.DefaultDayCount, a.cfg.General.DefaultDayCount)
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	a := newTestApp(t)
	_, _ = a.ledger.CreateFromDayCount("Read", 10, 1)
	_, _ = a.ledger.CreateFromDayCount("Stretch", 21, 7)
	a.recompute()
	a = press(t, a, "c")

	wants := []string{"Suggested Habit", "Consistency", "Daily Completions", "Config file"}
	for tab, want := range wants {
		a.activeTab = tab
		out := a.View()
		if !strings.Contains(out, want) {
			t.Fatalf("tab %d view missing %q", tab, want)
		}
	}

	a.width = 60
	if !strings.Contains(a.View(), "too narrow") {
		t.Fatal("narrow terminal not reported")
	}
}

func TestApplySetup(t *testing.T) {
	cfg := config.DefaultConfig()
	ApplySetup(&cfg, SetupValues{Theme: "tokyo-night", Frequency: 7, InputMode: config.InputDayCount, DayCount: 90})
	if cfg.Appearance.Theme != "tokyo-night" || cfg.General.DefaultFrequency != "weekly" ||
		cfg.General.DefaultInputMode != config.InputDayCount || cfg.General.DefaultDayCount != 90 {
		t.Fatalf("ApplySetup -> %+v", cfg)
	}

	ApplySetup(&cfg, SetupValues{Theme: "bogus", Frequency: 0, InputMode: "x", DayCount: -1})
	if cfg.Appearance.Theme != "tokyo-night" || cfg.General.DefaultFrequency != "weekly" {
		t.Fatalf("invalid setup values applied: %+v", cfg)
	}
}
