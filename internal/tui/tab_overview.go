package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/hstreak/internal/cli"
	"github.com/theirongolddev/hstreak/internal/tui/components"
	"github.com/theirongolddev/hstreak/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	tot := a.view.Totals
	var b strings.Builder

	// Row 1: Total statistics
	avg := "-"
	if tot.HasAverage() {
		avg = fmt.Sprintf("%.1f", tot.AvgCompletions)
	}
	doneToday := 0
	for _, s := range a.view.Habits {
		if s.CompletedToday {
			doneToday++
		}
	}

	cards := []components.Metric{
		{Label: "Habits", Value: cli.FormatNumber(int64(tot.Habits)), Delta: fmt.Sprintf("%d done today", doneToday)},
		{Label: "Completions", Value: cli.FormatNumber(int64(tot.Completions)), Delta: "all habits"},
		{Label: "Days Tracked", Value: cli.FormatNumber(int64(tot.Days)), Delta: cli.FormatYears(tot.Years)},
		{Label: "Avg per Habit", Value: avg, Delta: "completions"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Quick dashboard + suggestion
	halves := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		b.WriteString(a.renderDashboardCard(cw))
		b.WriteString("\n")
		b.WriteString(a.renderSuggestionCard(cw))
		return b.String()
	}

	b.WriteString(components.CardRow([]string{
		a.renderDashboardCard(halves[0]),
		a.renderSuggestionCard(halves[1]),
	}))
	return b.String()
}

// renderDashboardCard is the quick one-line-per-habit view.
func (a App) renderDashboardCard(w int) string {
	t := theme.Active
	inner := components.CardInnerWidth(w)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright).Bold(true)

	habits := a.visibleHabits()
	if len(habits) == 0 {
		return components.ContentCard("Dashboard", mutedStyle.Render("No habits to display. Press [a] to add one."), w)
	}

	var body strings.Builder
	body.WriteString(mutedStyle.Render("Quick view of all your habits:"))
	body.WriteString("\n")
	for i, s := range habits {
		detail := fmt.Sprintf(": %d completions, started %s", s.StreakDays, cli.FormatDate(s.StartDate))
		nameW := inner - 4 - len(detail)
		name := truncStr(s.Name, nameW)

		style := nameStyle
		if i == a.habits.cursor {
			style = selStyle
		}
		body.WriteString(cli.RenderCheck(s.CompletedToday))
		body.WriteString(mutedStyle.Render(" "))
		body.WriteString(style.Render(name))
		body.WriteString(mutedStyle.Render(detail))
		body.WriteString("\n")
	}
	body.WriteString(mutedStyle.Render("[c] complete selected  [j/k] select"))

	return components.ContentCard("Dashboard", body.String(), w)
}

func (a App) renderSuggestionCard(w int) string {
	t := theme.Active

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	ideaStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var body strings.Builder
	body.WriteString(mutedStyle.Render("Struggling for ideas? Try this suggested habit:"))
	body.WriteString("\n\n")
	if a.suggestion != "" {
		body.WriteString(ideaStyle.Render(a.suggestion))
	} else {
		body.WriteString(mutedStyle.Render("(no suggestions configured)"))
	}
	body.WriteString("\n\n")
	body.WriteString(hintStyle.Render("[n] new suggestion  [a] add habit"))

	return components.ContentCard("Suggested Habit", body.String(), w)
}
