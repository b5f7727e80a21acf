// Package tui provides the interactive Bubble Tea interface for hstreak.
package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/theirongolddev/hstreak/internal/config"
	"github.com/theirongolddev/hstreak/internal/ledger"
	"github.com/theirongolddev/hstreak/internal/model"
	"github.com/theirongolddev/hstreak/internal/pipeline"
	"github.com/theirongolddev/hstreak/internal/store"
	"github.com/theirongolddev/hstreak/internal/suggest"
	"github.com/theirongolddev/hstreak/internal/tui/components"
	"github.com/theirongolddev/hstreak/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Tab indexes, matching components.Tabs.
const (
	tabOverview = iota
	tabHabits
	tabActivity
	tabSettings
)

// App is the root Bubble Tea model. It owns the session's ledger.
type App struct {
	ledger  *ledger.Ledger
	journal *store.Journal
	logger  *zap.Logger
	cfg     config.Config

	// Evaluated against a single "today"; refreshed after every mutation.
	view ledger.View

	// Suggestions
	rng        *rand.Rand
	pool       []string
	suggestion string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	habits   habitsState
	settings settingsState

	// Add-habit form (huh)
	addForm *huh.Form
	addVals *addValues

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool

	// One-line feedback in the status bar
	flash    string
	flashErr bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5 // minimum content area height

	recentEntries = 12 // journal entries shown on the Activity tab
	activityDays  = 14 // days shown in the completions chart
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model around an empty ledger.
func NewApp(l *ledger.Ledger, j *store.Journal, cfg config.Config, logger *zap.Logger) App {
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	pool := cfg.SuggestionPool(suggest.DefaultPool)

	a := App{
		ledger:     l,
		journal:    j,
		logger:     logger,
		cfg:        cfg,
		rng:        rng,
		pool:       pool,
		suggestion: suggest.First(pool, rng),
		needSetup:  !config.Exists(),
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		tickCmd(),
	}
	if a.needSetup {
		cmds = append(cmds, func() tea.Msg { return startSetupMsg{} })
	}
	return tea.Batch(cmds...)
}

type startSetupMsg struct{}

type tickMsg time.Time

// tickCmd re-evaluates the ledger once a minute so the view rolls over at
// midnight without user input.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// recompute refreshes the derived view and clamps cursors to it.
func (a *App) recompute() {
	a.view = a.ledger.Snapshot()

	n := len(a.visibleHabits())
	if a.habits.cursor >= n {
		a.habits.cursor = n - 1
	}
	if a.habits.cursor < 0 {
		a.habits.cursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(a.formWidth())
		}
		return a, nil

	case startSetupMsg:
		a.setupVals = DefaultSetupValues(a.cfg)
		a.setupForm = NewSetupForm(a.setupVals)
		if a.width > 0 {
			a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
		}
		return a, a.setupForm.Init()

	case tickMsg:
		prev := a.view.Today
		a.recompute()
		if !pipeline.SameDay(prev, a.view.Today) {
			a.setFlash("New day: "+a.view.Today.Format(pipeline.DateLayout), false)
		}
		return a, tickCmd()

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil || a.addForm != nil {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// Forward unhandled messages (cursor blinks, etc.) to an open form.
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}

	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.listTab() && !a.habits.searching {
			a.moveCursor(-1)
		}
	case tea.MouseButtonWheelDown:
		if a.listTab() && !a.habits.searching {
			a.moveCursor(1)
		}
	case tea.MouseButtonLeft:
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global: quit
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// Open forms intercept all keys.
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.addForm != nil {
		if key == "esc" {
			a.addForm = nil
			a.addVals = nil
			a.setFlash("Add cancelled", false)
			return a, nil
		}
		return a.updateAddForm(msg)
	}

	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	if a.habits.searching {
		return a.updateHabitsSearch(msg)
	}

	// A pending delete is confirmed by "y" and cancelled by anything else.
	if a.habits.confirmDelete != 0 {
		id := a.habits.confirmDelete
		a.habits.confirmDelete = 0
		if key == "y" || key == "Y" {
			a.deleteHabit(id)
		} else {
			a.setFlash("Delete cancelled", false)
		}
		return a, nil
	}

	// Help toggle
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}

	// Dismiss help
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "a":
		return a.openAddForm()
	case "n":
		a.suggestion = suggest.Next(a.suggestion, a.pool, a.rng)
		return a, nil
	}

	// Overview and Habits share the habit cursor.
	if a.listTab() {
		switch key {
		case "enter", "c":
			if sel, ok := a.selectedHabit(); ok {
				a.completeHabit(sel.ID)
			}
			return a, nil
		case "d":
			if sel, ok := a.selectedHabit(); ok {
				a.habits.confirmDelete = sel.ID
				a.setFlash(fmt.Sprintf("Delete %q? [y/N]", sel.Name), true)
			}
			return a, nil
		case "j", "down":
			a.moveCursor(1)
			return a, nil
		case "k", "up":
			a.moveCursor(-1)
			return a, nil
		case "g":
			a.habits.cursor = 0
			a.habits.offset = 0
			return a, nil
		case "G":
			a.habits.cursor = len(a.visibleHabits()) - 1
			if a.habits.cursor < 0 {
				a.habits.cursor = 0
			}
			return a, nil
		}
	}

	if a.activeTab == tabHabits {
		switch key {
		case "/":
			a.habits.searching = true
			a.habits.searchInput = newSearchInput()
			a.habits.searchInput.SetValue(a.habits.searchQuery)
			a.habits.searchInput.Focus()
			return a, a.habits.searchInput.Cursor.BlinkCmd()
		case "esc":
			if a.habits.searchQuery != "" {
				a.habits.searchQuery = ""
				a.habits.cursor = 0
				a.habits.offset = 0
			}
			return a, nil
		}
	}

	// Settings tab navigation (non-editing mode)
	if a.activeTab == tabSettings {
		switch key {
		case "j", "down":
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
			return a, nil
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return a, nil
		case "enter":
			return a.settingsStartEdit()
		}
	}

	if key == "q" {
		return a, tea.Quit
	}

	// Tab navigation
	switch key {
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if r := []rune(key); len(r) == 1 {
			if idx := components.TabIdxByKey(r[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

// ─── Ledger actions ─────────────────────────────────────────────

func (a *App) completeHabit(id int) {
	h, _ := a.ledger.Get(id)
	switch a.ledger.MarkCompletedToday(id) {
	case ledger.Marked:
		a.record(store.KindCompleted, id, h.Name, a.ledger.Today().Format(pipeline.DateLayout))
		a.setFlash(fmt.Sprintf("Marked %q completed today", h.Name), false)
	case ledger.AlreadyCompleted:
		a.setFlash(fmt.Sprintf("%q is already completed today", h.Name), false)
	case ledger.NotFound:
		a.setFlash("Habit no longer exists", true)
	}
	a.recompute()
}

func (a *App) deleteHabit(id int) {
	h, _ := a.ledger.Get(id)
	if !a.ledger.Delete(id) {
		a.setFlash("Habit no longer exists", true)
		return
	}
	a.record(store.KindDeleted, id, h.Name, "")
	a.setFlash(fmt.Sprintf("Deleted %q", h.Name), false)
	a.recompute()
}

// record writes a journal entry. Journal failures are logged, never shown.
func (a *App) record(kind store.Kind, id int, name, detail string) {
	if a.journal == nil {
		return
	}
	if err := a.journal.Record(kind, id, name, detail); err != nil {
		a.logger.Error("Failed to record journal entry", zap.String("kind", string(kind)), zap.Error(err))
	}
}

func (a *App) setFlash(msg string, isErr bool) {
	a.flash = msg
	a.flashErr = isErr
}

// ─── Selection helpers ──────────────────────────────────────────

// listTab reports whether the active tab shows the selectable habit list.
func (a App) listTab() bool {
	return a.activeTab == tabOverview || a.activeTab == tabHabits
}

// visibleHabits returns the habit stats after the name filter.
func (a App) visibleHabits() []model.HabitStats {
	return pipeline.FilterByName(a.view.Habits, a.habits.searchQuery)
}

func (a App) selectedHabit() (model.HabitStats, bool) {
	hs := a.visibleHabits()
	if a.habits.cursor < 0 || a.habits.cursor >= len(hs) {
		return model.HabitStats{}, false
	}
	return hs[a.habits.cursor], true
}

func (a *App) moveCursor(delta int) {
	n := len(a.visibleHabits())
	c := a.habits.cursor + delta
	if c >= n {
		c = n - 1
	}
	if c < 0 {
		c = 0
	}
	a.habits.cursor = c
}

// ─── Layout ─────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func (a App) formWidth() int {
	w := a.contentWidth() - 8
	if w > 72 {
		w = 72
	}
	if w < 40 {
		w = 40
	}
	return w
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	if a.addForm != nil {
		return a.viewAddForm()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  hstreak needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"o h v x", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Select habit"},
			{"g G", "First / Last habit"},
		}},
		{"Habits", []struct{ key, desc string }{
			{"a", "Add a habit"},
			{"Enter c", "Mark completed today"},
			{"d", "Delete (confirm with y)"},
			{"n", "New suggestion"},
			{"/", "Filter by name"},
			{"Esc", "Clear filter / Cancel"},
		}},
		{"General", []struct{ key, desc string }{
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header
	header := components.RenderTabBar(a.activeTab, w)

	// 2. Status bar
	right := "today " + a.view.Today.Format(pipeline.DateLayout)
	if a.journal != nil {
		right = "session " + shortID(a.journal.SessionID()) + " · " + right
	}
	statusBar := components.RenderStatusBar(w, a.flash, a.flashErr, right)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabHabits:
		content = a.renderHabitsTab(cw, contentH)
	case tabActivity:
		content = a.renderActivityTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center when the terminal is wider than the content
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
