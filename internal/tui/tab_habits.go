package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/hstreak/internal/cli"
	"github.com/theirongolddev/hstreak/internal/model"
	"github.com/theirongolddev/hstreak/internal/pipeline"
	"github.com/theirongolddev/hstreak/internal/tui/components"
	"github.com/theirongolddev/hstreak/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// habitsState holds the habit list state shared by Overview and Habits.
type habitsState struct {
	cursor int
	offset int // scroll offset for the list

	searching   bool
	searchInput textinput.Model
	searchQuery string

	confirmDelete int // id awaiting "y", 0 when none
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "filter by name"
	ti.Prompt = "/ "
	ti.CharLimit = 80
	ti.Width = 30
	return ti
}

// updateHabitsSearch handles key events while in search mode.
func (a App) updateHabitsSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.habits.searchQuery = strings.TrimSpace(a.habits.searchInput.Value())
		a.habits.searching = false
		a.habits.cursor = 0
		a.habits.offset = 0
		return a, nil
	case "esc":
		a.habits.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.habits.searchInput, cmd = a.habits.searchInput.Update(msg)
	return a, cmd
}

func (a App) renderHabitsTab(cw, h int) string {
	t := theme.Active
	habits := a.visibleHabits()

	var header string
	switch {
	case a.habits.searching:
		header = a.habits.searchInput.View() + "\n"
	case a.habits.searchQuery != "":
		header = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Background).
			Render(fmt.Sprintf(" filter: %q  [Esc] clear", a.habits.searchQuery)) + "\n"
	}

	if len(habits) == 0 {
		msg := "No habits yet. Press [a] to add one."
		if a.habits.searchQuery != "" {
			msg = "No habits match the filter."
		}
		return header + components.ContentCard("Habits", lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(msg), cw)
	}

	listH := h - lipgloss.Height(header)
	if a.isCompactLayout() {
		list := a.renderHabitList(habits, cw, listH/2)
		detail := components.ContentCard(habits[a.habits.cursor].Name, a.renderHabitDetail(habits[a.habits.cursor], cw), cw)
		return header + list + "\n" + detail
	}

	leftW := cw / 3
	if leftW < 34 {
		leftW = 34
	}
	rightW := cw - leftW

	sel := habits[a.habits.cursor]
	left := a.renderHabitList(habits, leftW, listH)
	right := components.ContentCard(sel.Name, a.renderHabitDetail(sel, rightW), rightW)
	return header + components.CardRow([]string{left, right})
}

func (a App) renderHabitList(habits []model.HabitStats, w, h int) string {
	t := theme.Active
	inner := components.CardInnerWidth(w)

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	countStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	visible := h - 4 // card border (2) + title (1) + hint (1)
	if visible < 3 {
		visible = 3
	}

	offset := a.habits.offset
	if a.habits.cursor < offset {
		offset = a.habits.cursor
	}
	if a.habits.cursor >= offset+visible {
		offset = a.habits.cursor - visible + 1
	}
	end := offset + visible
	if end > len(habits) {
		end = len(habits)
	}

	var body strings.Builder
	for i := offset; i < end; i++ {
		s := habits[i]
		count := fmt.Sprintf("%d", s.StreakDays)
		nameW := inner - 4 - len(count)
		line := fmt.Sprintf("%s %-*s %s", cli.RenderCheck(s.CompletedToday), nameW, truncStr(s.Name, nameW), count)

		if i == a.habits.cursor {
			body.WriteString(selectedStyle.Render(lipgloss.NewStyle().Width(inner).Render(line)))
		} else {
			body.WriteString(rowStyle.Render(line))
		}
		body.WriteString("\n")
	}
	body.WriteString(countStyle.Render(fmt.Sprintf("%d of %d", a.habits.cursor+1, len(habits))))

	return components.ContentCard(fmt.Sprintf("Habits (%d)", len(habits)), body.String(), w)
}

// renderHabitDetail renders every derived stat of one habit.
func (a App) renderHabitDetail(s model.HabitStats, w int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)
	today := a.view.Today

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface).Bold(true)

	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-18s", label)) + valueStyle.Render(value) + "\n"
	}

	var body strings.Builder
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")
	body.WriteString(row("Frequency", model.FrequencyLabel(s.FrequencyDays)))
	body.WriteString(row("Started", fmt.Sprintf("%s (%s)", cli.FormatDate(s.StartDate), cli.FormatRelative(s.StartDate, today))))
	if s.Declared {
		body.WriteString(row("Streak length", cli.FormatDays(s.StreakLengthDays)+" (declared)"))
	} else {
		body.WriteString(row("Streak length", cli.FormatDays(s.StreakLengthDays)))
	}
	body.WriteString(row("Days completed", cli.FormatNumber(int64(s.StreakDays))))
	body.WriteString(row("Total days", cli.FormatNumber(int64(s.TotalDays))))

	barW := innerW - 26
	if barW < 10 {
		barW = 10
	}
	switch {
	case s.IsDaily():
		body.WriteString(components.ConsistencyBar("Consistency", s.Consistency, 17, barW))
		body.WriteString("\n")
	case s.ExpectedCompletions > 0:
		body.WriteString(row("Expected", cli.FormatNumber(int64(s.ExpectedCompletions))+" completions"))
		pct := float64(s.StreakDays) / float64(s.ExpectedCompletions)
		body.WriteString(components.ConsistencyBar("On track", pct, 17, barW))
		body.WriteString("\n")
	default:
		body.WriteString(row("Expected", "0 completions"))
	}

	body.WriteString("\n")
	if s.CompletedToday {
		body.WriteString(greenStyle.Render("✓ Completed today"))
	} else {
		body.WriteString(labelStyle.Render("Not completed today. Press [c] to mark it."))
	}
	body.WriteString("\n\n")

	// Last four weeks at a glance.
	since := today.AddDate(0, 0, -27)
	counts := pipeline.DailyCompletions([]model.Habit{{Completions: s.Completions}}, since, today)
	vals := make([]int, len(counts))
	for i, c := range counts {
		vals[i] = c.Count
	}
	body.WriteString(labelStyle.Render(fmt.Sprintf("%-18s", "Last 28 days")))
	body.WriteString(components.Sparkline(vals, t.Green))
	body.WriteString("\n")

	if n := len(s.Completions); n > 0 {
		last := s.Completions[n-1]
		body.WriteString(row("Last completion", fmt.Sprintf("%s (%s)", cli.FormatDate(last), cli.FormatRelative(last, today))))
	}

	body.WriteString("\n")
	body.WriteString(mutedStyle.Render("[c] complete  [d] delete  [/] filter  [j/k] navigate"))
	return body.String()
}
