package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/hstreak/internal/cli"
	"github.com/theirongolddev/hstreak/internal/pipeline"
	"github.com/theirongolddev/hstreak/internal/store"
	"github.com/theirongolddev/hstreak/internal/tui/components"
	"github.com/theirongolddev/hstreak/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

func (a App) renderActivityTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	// Row 1: completions per day across all habits
	today := a.view.Today
	since := today.AddDate(0, 0, -(activityDays - 1))
	counts := pipeline.DailyCompletions(a.ledger.Habits(), since, today)

	vals := make([]int, len(counts))
	dates := make([]time.Time, len(counts))
	total := 0
	for i, c := range counts {
		vals[i] = c.Count
		dates[i] = c.Date
		total += c.Count
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Daily Completions (%dd, %s)", activityDays, cli.FormatNumber(int64(total))),
		components.BarChart(vals, components.DateLabels(dates), t.Green, components.CardInnerWidth(cw), 8),
		cw,
	))
	b.WriteString("\n")

	// Row 2: session journal
	halves := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		b.WriteString(a.renderJournalCard(cw))
		b.WriteString("\n")
		b.WriteString(a.renderJournalCounts(cw))
		return b.String()
	}
	b.WriteString(components.CardRow([]string{
		a.renderJournalCard(halves[0]),
		a.renderJournalCounts(halves[1]),
	}))
	return b.String()
}

func (a App) renderJournalCard(w int) string {
	t := theme.Active
	inner := components.CardInnerWidth(w)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	timeStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	if a.journal == nil {
		return components.ContentCard("This Session", mutedStyle.Render("Journal unavailable"), w)
	}
	entries, err := a.journal.Recent(recentEntries)
	if err != nil {
		a.logger.Error("Failed to read journal", zap.Error(err))
		return components.ContentCard("This Session", mutedStyle.Render("Journal unavailable"), w)
	}
	if len(entries) == 0 {
		return components.ContentCard("This Session", mutedStyle.Render("Nothing yet. Add or complete a habit."), w)
	}

	var body strings.Builder
	for _, e := range entries {
		kind := lipgloss.NewStyle().Foreground(kindColor(e.Kind)).Background(t.Surface).Bold(true).
			Render(fmt.Sprintf("%-9s", e.Kind))
		text := e.HabitName
		if e.HabitID > 0 {
			text = fmt.Sprintf("#%d %s", e.HabitID, e.HabitName)
		}
		if e.Detail != "" {
			text += " · " + e.Detail
		}
		body.WriteString(timeStyle.Render(e.At.Format("15:04:05") + " "))
		body.WriteString(kind)
		body.WriteString(textStyle.Render(" " + truncStr(text, inner-19)))
		body.WriteString("\n")
	}
	return components.ContentCard("This Session", strings.TrimRight(body.String(), "\n"), w)
}

func (a App) renderJournalCounts(w int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	var counts map[store.Kind]int
	if a.journal != nil {
		var err error
		if counts, err = a.journal.CountByKind(); err != nil {
			a.logger.Error("Failed to count journal entries", zap.Error(err))
		}
	}

	var body strings.Builder
	for _, k := range store.Kinds {
		body.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", k)))
		body.WriteString(valueStyle.Render(cli.FormatNumber(int64(counts[k]))))
		body.WriteString("\n")
	}
	body.WriteString("\n")
	body.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", "habits now")))
	body.WriteString(valueStyle.Render(cli.FormatNumber(int64(a.ledger.Len()))))
	return components.ContentCard("Actions", body.String(), w)
}

func kindColor(k store.Kind) lipgloss.Color {
	t := theme.Active
	switch k {
	case store.KindAdded:
		return t.Blue
	case store.KindCompleted:
		return t.Green
	case store.KindDeleted:
		return t.Orange
	default:
		return t.Red
	}
}
