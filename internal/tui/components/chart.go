package components

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/hstreak/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// eighths are the partial-cell blocks, from empty to full.
var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders one block per count, scaled to the largest count.
func Sparkline(counts []int, color lipgloss.Color) string {
	if len(counts) == 0 {
		return ""
	}
	t := theme.Active
	peak := peakCount(counts)

	var buf strings.Builder
	for _, c := range counts {
		// Lowest block for zero so missed days still show a cell.
		idx := 1 + c*7/peak
		if idx > 8 {
			idx = 8
		}
		buf.WriteRune(eighths[idx])
	}
	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(buf.String())
}

// BarChart renders completion counts as vertical bars, one per day, with the
// peak count on the y-axis and labels under the bars. It falls back to a
// Sparkline when the bars do not fit.
func BarChart(counts []int, labels []string, color lipgloss.Color, width, height int) string {
	n := len(counts)
	if n == 0 {
		return ""
	}
	t := theme.Active
	peak := peakCount(counts)

	yLabelW := len(strconv.Itoa(peak)) + 1
	barW := (width - yLabelW - 1 - (n - 1)) / n
	if height < 3 || barW < 1 {
		return Sparkline(counts, color)
	}
	if barW > 4 {
		barW = 4
	}
	axisLen := n*barW + n - 1

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		// Each row covers peak/height completions.
		top := float64(peak) * float64(row) / float64(height)
		bottom := float64(peak) * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = strconv.Itoa(peak)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", yLabelW, label)))

		for i, c := range counts {
			if i > 0 {
				b.WriteString(space.Render(" "))
			}
			v := float64(c)
			switch {
			case v >= top:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > bottom:
				idx := int((v - bottom) / (top - bottom) * 8)
				if idx < 1 {
					idx = 1
				}
				b.WriteString(barStyle.Render(strings.Repeat(string(eighths[idx]), barW)))
			default:
				b.WriteString(space.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└%s", yLabelW, "0", strings.Repeat("─", axisLen))))

	if len(labels) != n {
		return b.String()
	}

	// Labels start under their bar and are skipped when they would collide.
	buf := []byte(strings.Repeat(" ", axisLen))
	lastEnd := -1
	for i, lbl := range labels {
		pos := i * (barW + 1)
		end := pos + len(lbl)
		if pos <= lastEnd || end > axisLen {
			continue
		}
		copy(buf[pos:end], lbl)
		lastEnd = end
	}
	b.WriteString("\n")
	b.WriteString(space.Render(strings.Repeat(" ", yLabelW+1)))
	b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
	return b.String()
}

func peakCount(counts []int) int {
	peak := 1
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}
	return peak
}

// DateLabels builds compact X-axis labels for an oldest-first date series.
// The first label and month boundaries show the month ("Jan"); everything
// else shows the day number.
func DateLabels(dates []time.Time) []string {
	labels := make([]string, len(dates))
	prevMonth := time.Month(0)
	for i, dt := range dates {
		m := dt.Month()
		switch {
		case i == 0, i < len(dates)-1 && m != prevMonth:
			labels[i] = dt.Format("Jan")
		default:
			labels[i] = strconv.Itoa(dt.Day())
		}
		prevMonth = m
	}
	return labels
}
