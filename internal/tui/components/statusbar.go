package components

import (
	"strings"

	"github.com/theirongolddev/hstreak/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left, an
// optional flash message in the middle and session info on the right.
func RenderStatusBar(width int, flash string, flashIsErr bool, right string) string {
	t := theme.Active

	base := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	flashStyle := lipgloss.NewStyle().
		Foreground(t.GreenBright).
		Background(t.Surface).
		Bold(true)
	if flashIsErr {
		flashStyle = flashStyle.Foreground(t.Orange)
	}

	left := base.Render(" [a]dd  [c]omplete  [d]elete  [n]ew idea  [?]help  [q]uit")
	mid := ""
	if flash != "" {
		mid = base.Render("  ") + flashStyle.Render(flash)
	}
	rightStr := ""
	if right != "" {
		rightStr = base.Render(right + " ")
	}

	// Drop the flash before the hints when space runs out.
	if lipgloss.Width(left)+lipgloss.Width(mid)+lipgloss.Width(rightStr) > width {
		left = base.Render(" [?]help  [q]uit")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(mid) - lipgloss.Width(rightStr)
	if padding < 0 {
		padding = 0
	}

	bar := left + mid + base.Render(strings.Repeat(" ", padding)) + rightStr
	return lipgloss.NewStyle().Background(t.Surface).Width(width).MaxWidth(width).Render(bar)
}
