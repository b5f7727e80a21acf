package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/hstreak/internal/config"
	"github.com/theirongolddev/hstreak/internal/ledger"
	"github.com/theirongolddev/hstreak/internal/model"
	"github.com/theirongolddev/hstreak/internal/pipeline"
	"github.com/theirongolddev/hstreak/internal/store"
	"github.com/theirongolddev/hstreak/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// addValues is bound to the add-habit form fields.
type addValues struct {
	mode      string // config.InputStartDate or config.InputDayCount
	name      string
	start     string // YYYY-MM-DD
	days      string
	frequency int
}

func (a App) defaultAddValues() *addValues {
	g := a.cfg.General
	today := a.ledger.Today()
	return &addValues{
		mode:      g.DefaultInputMode,
		start:     today.AddDate(0, 0, -g.DefaultStartOffsetDays).Format(pipeline.DateLayout),
		days:      strconv.Itoa(g.DefaultDayCount),
		frequency: a.cfg.DefaultFrequencyDays(),
	}
}

func newAddForm(v *addValues) *huh.Form {
	freqOpts := make([]huh.Option[int], 0, len(model.Frequencies)+1)
	known := false
	for _, f := range model.Frequencies {
		freqOpts = append(freqOpts, huh.NewOption(f.Label, f.Days))
		known = known || f.Days == v.frequency
	}
	if !known {
		// Keep a custom default from config selectable.
		freqOpts = append(freqOpts, huh.NewOption(model.FrequencyLabel(v.frequency), v.frequency))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How do you want to add this habit?").
				Options(
					huh.NewOption("Start Date", config.InputStartDate),
					huh.NewOption("Number of Days", config.InputDayCount),
				).
				Value(&v.mode),
			huh.NewInput().
				Title("Habit name").
				Placeholder("Read for 10 minutes").
				CharLimit(80).
				Value(&v.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name must not be empty")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Description("YYYY-MM-DD, today or earlier").
				Value(&v.start).
				Validate(func(s string) error {
					if _, err := pipeline.ParseDate(strings.TrimSpace(s)); err != nil {
						return errors.New("use the YYYY-MM-DD format")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return v.mode != config.InputStartDate }),
		huh.NewGroup(
			huh.NewInput().
				Title("How many days have you kept this habit?").
				Value(&v.days).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 0 {
						return errors.New("enter a whole number of days, 0 or more")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return v.mode != config.InputDayCount }),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Frequency").
				Options(freqOpts...).
				Value(&v.frequency),
		),
	).WithShowHelp(true)
}

func (a App) openAddForm() (tea.Model, tea.Cmd) {
	a.addVals = a.defaultAddValues()
	a.addForm = newAddForm(a.addVals).WithWidth(a.formWidth())
	a.flash = ""
	return a, a.addForm.Init()
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateCompleted:
		vals := *a.addVals
		a.addForm = nil
		a.addVals = nil
		a.submitAdd(vals)
		return a, nil
	case huh.StateAborted:
		a.addForm = nil
		a.addVals = nil
		a.setFlash("Add cancelled", false)
		return a, nil
	}

	return a, cmd
}

// submitAdd hands the form values to the ledger. Rejections are shown in the
// status bar and journaled; the ledger is left untouched.
func (a *App) submitAdd(v addValues) {
	var (
		id  int
		err error
	)
	switch v.mode {
	case config.InputDayCount:
		var n int
		n, err = strconv.Atoi(strings.TrimSpace(v.days))
		if err != nil {
			err = &ledger.InputError{Field: "day count", Reason: fmt.Sprintf("%q is not a number", v.days)}
			break
		}
		id, err = a.ledger.CreateFromDayCount(v.name, n, v.frequency)
	default:
		start, perr := pipeline.ParseDate(strings.TrimSpace(v.start))
		if perr != nil {
			err = &ledger.InputError{Field: "start date", Reason: fmt.Sprintf("%q is not YYYY-MM-DD", v.start)}
			break
		}
		id, err = a.ledger.CreateFromStartDate(v.name, start, v.frequency)
	}

	name := strings.TrimSpace(v.name)
	if err != nil {
		a.record(store.KindRejected, 0, name, err.Error())
		a.setFlash("Not added: "+err.Error(), true)
		return
	}

	h, _ := a.ledger.Get(id)
	a.record(store.KindAdded, id, h.Name, fmt.Sprintf("%s, %d back-filled", model.FrequencyLabel(h.FrequencyDays), len(h.Completions)))
	a.setFlash(fmt.Sprintf("Added %q", h.Name), false)
	a.recompute()

	// Select the new habit.
	for i, s := range a.visibleHabits() {
		if s.ID == id {
			a.habits.cursor = i
			break
		}
	}
}

func (a App) viewAddForm() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	body := titleStyle.Render("◈ Add Habit") + "\n\n" +
		a.addForm.View() + "\n" +
		hintStyle.Render("Esc to cancel")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}
