package tui

import (
	"fmt"

	"github.com/theirongolddev/hstreak/internal/config"
	"github.com/theirongolddev/hstreak/internal/model"
	"github.com/theirongolddev/hstreak/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// SetupValues is bound to the first-run setup form.
type SetupValues struct {
	Theme     string
	Frequency int
	InputMode string
	DayCount  int
}

// DefaultSetupValues seeds the setup form from an existing config.
func DefaultSetupValues(cfg config.Config) *SetupValues {
	return &SetupValues{
		Theme:     config.GetTheme(cfg),
		Frequency: cfg.DefaultFrequencyDays(),
		InputMode: cfg.General.DefaultInputMode,
		DayCount:  cfg.General.DefaultDayCount,
	}
}

// NewSetupForm builds the first-run wizard. It is embedded in the TUI and
// also run standalone by the setup command.
func NewSetupForm(v *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	freqOpts := make([]huh.Option[int], 0, len(model.Frequencies))
	for _, f := range model.Frequencies {
		freqOpts = append(freqOpts, huh.NewOption(f.Label, f.Days))
	}

	dayOpts := []huh.Option[int]{
		huh.NewOption("7 days", 7),
		huh.NewOption("30 days", 30),
		huh.NewOption("90 days", 90),
		huh.NewOption("365 days", 365),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to hstreak").
				Description(fmt.Sprintf(
					"Track habits for this session, mark them done each day,\nand see how consistent you have been.\n\nSettings are saved to %s", config.ConfigPath())),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
			huh.NewSelect[int]().
				Title("Default frequency for new habits").
				Options(freqOpts...).
				Value(&v.Frequency),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Add habits by").
				Options(
					huh.NewOption("Start Date", config.InputStartDate),
					huh.NewOption("Number of Days", config.InputDayCount),
				).
				Value(&v.InputMode),
			huh.NewSelect[int]().
				Title("Default number of days").
				Options(dayOpts...).
				Value(&v.DayCount),
		),
	).WithShowHelp(true)
}

// ApplySetup copies the wizard answers into cfg.
func ApplySetup(cfg *config.Config, v SetupValues) {
	if theme.Known(v.Theme) {
		cfg.Appearance.Theme = v.Theme
	}
	if v.Frequency >= 1 {
		cfg.General.DefaultFrequency = model.FrequencySlug(v.Frequency)
	}
	switch v.InputMode {
	case config.InputStartDate, config.InputDayCount:
		cfg.General.DefaultInputMode = v.InputMode
	}
	if v.DayCount >= 0 {
		cfg.General.DefaultDayCount = v.DayCount
	}
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		if err := a.saveSetupConfig(); err != nil {
			a.setFlash(fmt.Sprintf("Could not save config: %s", err), true)
		} else {
			a.setFlash("Saved to "+config.ConfigPath(), false)
		}
		a.needSetup = false
		a.setupForm = nil
		a.setupVals = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		a.setupVals = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) saveSetupConfig() error {
	ApplySetup(&a.cfg, *a.setupVals)
	theme.SetActive(a.cfg.Appearance.Theme)
	return config.Save(a.cfg)
}
