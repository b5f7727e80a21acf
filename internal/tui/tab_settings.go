package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/hstreak/internal/cli"
	"github.com/theirongolddev/hstreak/internal/config"
	"github.com/theirongolddev/hstreak/internal/model"
	"github.com/theirongolddev/hstreak/internal/tui/components"
	"github.com/theirongolddev/hstreak/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap/zapcore"
)

const (
	settingsFieldTheme = iota
	settingsFieldFrequency
	settingsFieldInputMode
	settingsFieldDayCount
	settingsFieldStartOffset
	settingsFieldLogLevel
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed or the value was rejected
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	g := a.cfg.General
	a.settings.editing = true
	a.settings.saved = false
	a.settings.saveErr = nil

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(theme.Active.Name)
	case settingsFieldFrequency:
		ti.Placeholder = "daily, every-2-days, weekly or a number of days"
		ti.SetValue(g.DefaultFrequency)
	case settingsFieldInputMode:
		ti.Placeholder = config.InputStartDate + " or " + config.InputDayCount
		ti.SetValue(g.DefaultInputMode)
	case settingsFieldDayCount:
		ti.Placeholder = "30"
		ti.SetValue(strconv.Itoa(g.DefaultDayCount))
	case settingsFieldStartOffset:
		ti.Placeholder = "7 (days before today)"
		ti.SetValue(strconv.Itoa(g.DefaultStartOffsetDays))
	case settingsFieldLogLevel:
		ti.Placeholder = "debug, info, warn, error"
		ti.SetValue(a.cfg.Logging.Level)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave validates the edited value, applies it to the running session
// and persists it.
func (a *App) settingsSave() {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())

	var err error
	switch a.settings.cursor {
	case settingsFieldTheme:
		if !theme.Known(val) {
			err = fmt.Errorf("unknown theme %q", val)
			break
		}
		cfg.Appearance.Theme = val
		theme.SetActive(val)
	case settingsFieldFrequency:
		var days int
		if days, err = model.ParseFrequency(val); err == nil {
			cfg.General.DefaultFrequency = model.FrequencySlug(days)
		}
	case settingsFieldInputMode:
		if val != config.InputStartDate && val != config.InputDayCount {
			err = fmt.Errorf("input mode must be %s or %s", config.InputStartDate, config.InputDayCount)
			break
		}
		cfg.General.DefaultInputMode = val
	case settingsFieldDayCount:
		var n int
		if n, err = parseNonNegative(val); err == nil {
			cfg.General.DefaultDayCount = n
		}
	case settingsFieldStartOffset:
		var n int
		if n, err = parseNonNegative(val); err == nil {
			cfg.General.DefaultStartOffsetDays = n
		}
	case settingsFieldLogLevel:
		if _, perr := zapcore.ParseLevel(val); perr != nil {
			err = fmt.Errorf("unknown log level %q", val)
			break
		}
		cfg.Logging.Level = val
	}

	if err != nil {
		a.settings.saveErr = err
		return
	}

	// Keep the session's suggestion pool; it was resolved at startup.
	a.cfg.General = cfg.General
	a.cfg.Appearance = cfg.Appearance
	a.cfg.Logging.Level = cfg.Logging.Level
	a.settings.saveErr = config.Save(cfg)
}

func parseNonNegative(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%q is not a whole number of days", s)
	}
	return n, nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	g := a.cfg.General

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"Theme", theme.Active.Name},
		{"Default Frequency", model.FrequencyLabel(a.cfg.DefaultFrequencyDays())},
		{"Default Input", g.DefaultInputMode},
		{"Default Day Count", cli.FormatDays(g.DefaultDayCount)},
		{"Default Start", cli.FormatDays(g.DefaultStartOffsetDays) + " ago"},
		{"Log Level", a.cfg.Logging.Level},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-20s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-20s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			if padLen := innerW - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Not saved: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// Session info card
	var infoBody strings.Builder
	if a.journal != nil {
		infoBody.WriteString(labelStyle.Render("Session:      ") + valueStyle.Render(a.journal.SessionID()) + "\n")
	}
	infoBody.WriteString(labelStyle.Render("Habits:       ") + valueStyle.Render(cli.FormatNumber(int64(a.ledger.Len()))) + "\n")
	infoBody.WriteString(labelStyle.Render("Suggestions:  ") + valueStyle.Render(cli.FormatNumber(int64(len(a.pool)))) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.ConfigPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Habits live only for this session; nothing is saved on exit."))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Session", infoBody.String(), cw))

	return b.String()
}
