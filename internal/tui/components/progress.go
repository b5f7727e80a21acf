package components

import (
	"fmt"

	"github.com/theirongolddev/hstreak/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct maps how well a habit is kept to red/orange/yellow/green.
// Higher is better.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.8:
		return string(t.Green)
	case pct >= 0.5:
		return string(t.Yellow)
	case pct >= 0.25:
		return string(t.Orange)
	default:
		return string(t.Red)
	}
}

// ConsistencyBar renders a labeled bar for a 0..1 ratio, e.g. the share of
// days a daily habit was completed.
func ConsistencyBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active
	pct = clampPct(pct)

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

func clampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
