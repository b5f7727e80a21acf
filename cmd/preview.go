package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/theirongolddev/hstreak/internal/cli"
	"github.com/theirongolddev/hstreak/internal/config"
	"github.com/theirongolddev/hstreak/internal/ledger"
	"github.com/theirongolddev/hstreak/internal/model"
	"github.com/theirongolddev/hstreak/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagPreviewName      string
	flagPreviewStart     string
	flagPreviewDays      int
	flagPreviewFrequency string
	flagPreviewLimit     int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the back-filled dates and stats a habit would get",
	Long:  "Evaluate a hypothetical habit without starting the tracker. Nothing is stored.",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&flagPreviewName, "name", "My habit", "Habit name")
	previewCmd.Flags().StringVar(&flagPreviewStart, "start", "", "Start date (YYYY-MM-DD)")
	previewCmd.Flags().IntVar(&flagPreviewDays, "days", 0, "Days the habit has been kept")
	previewCmd.Flags().StringVarP(&flagPreviewFrequency, "frequency", "f", "", "daily, every-2-days, weekly or a number of days")
	previewCmd.Flags().IntVar(&flagPreviewLimit, "limit", 20, "Most recent dates to list (0 for all)")
	previewCmd.MarkFlagsMutuallyExclusive("start", "days")
	rootCmd.AddCommand(previewCmd)
}

// previewInput is a hypothetical habit described on the command line.
type previewInput struct {
	name      string
	start     string // used when set
	days      int
	useDays   bool
	frequency string // empty means the configured default
}

// createPreview adds in to l, falling back to the configured input mode when
// neither a start date nor a day count was given.
func createPreview(l *ledger.Ledger, cfg config.Config, in previewInput) (int, error) {
	freq := cfg.DefaultFrequencyDays()
	if in.frequency != "" {
		f, err := model.ParseFrequency(in.frequency)
		if err != nil {
			return 0, err
		}
		freq = f
	}

	switch {
	case in.start != "":
		start, err := pipeline.ParseDate(in.start)
		if err != nil {
			return 0, fmt.Errorf("start date %q: use YYYY-MM-DD", in.start)
		}
		return l.CreateFromStartDate(in.name, start, freq)
	case in.useDays:
		return l.CreateFromDayCount(in.name, in.days, freq)
	case cfg.General.DefaultInputMode == config.InputDayCount:
		return l.CreateFromDayCount(in.name, cfg.General.DefaultDayCount, freq)
	default:
		start := l.Today().AddDate(0, 0, -cfg.General.DefaultStartOffsetDays)
		return l.CreateFromStartDate(in.name, start, freq)
	}
}

func runPreview(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	l := ledger.New()

	id, err := createPreview(l, cfg, previewInput{
		name:      flagPreviewName,
		start:     flagPreviewStart,
		days:      flagPreviewDays,
		useDays:   cmd.Flags().Changed("days"),
		frequency: flagPreviewFrequency,
	})
	if err != nil {
		var inputErr *ledger.InputError
		if errors.As(err, &inputErr) {
			return fmt.Errorf("habit not valid: %w", err)
		}
		return err
	}

	h, _ := l.Get(id)
	s, _ := l.StatsFor(id)
	today := l.Today()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %s", s.Name, model.FrequencyLabel(s.FrequencyDays))))
	fmt.Println()

	fmt.Print(cli.RenderKeyValues(previewPairs(s, today)))
	fmt.Println()

	if len(h.Completions) == 0 {
		fmt.Println("  No back-filled completions: the habit starts today.")
		fmt.Println()
		return nil
	}

	fmt.Print(cli.RenderTable(completionsTable(h, today, flagPreviewLimit)))
	fmt.Println()
	return nil
}

// stripDays is how many days the preview's day strip covers.
const stripDays = 28

func previewPairs(s model.HabitStats, today time.Time) [][2]string {
	length := cli.FormatDays(s.StreakLengthDays)
	if s.Declared {
		length += " (declared)"
	}

	pairs := [][2]string{
		{"Start date", cli.FormatDate(s.StartDate)},
		{"Streak length", length},
		{"Days completed", cli.FormatNumber(int64(s.StreakDays))},
		{"Total days", cli.FormatDays(s.TotalDays)},
	}
	if s.IsDaily() {
		pairs = append(pairs, [2]string{"Consistency", cli.RenderRatioBar(s.StreakDays, s.TotalDays, 20)})
	} else {
		pairs = append(pairs, [2]string{"Expected completions", cli.FormatNumber(int64(s.ExpectedCompletions))})
		if s.ExpectedCompletions > 0 {
			pairs = append(pairs, [2]string{"On track", cli.RenderRatioBar(s.StreakDays, s.ExpectedCompletions, 20)})
		}
	}

	since := today.AddDate(0, 0, -(stripDays - 1))
	days := pipeline.DailyCompletions([]model.Habit{{Completions: s.Completions}}, since, today)
	pairs = append(pairs, [2]string{fmt.Sprintf("Last %d days", stripDays), cli.RenderDayStrip(days)})

	return append(pairs, [2]string{"Completed today", cli.RenderCheck(s.CompletedToday)})
}

// completionsTable lists the most recent limit completions, newest first.
func completionsTable(h model.Habit, today time.Time, limit int) cli.Table {
	dates := h.Completions
	title := fmt.Sprintf("Back-filled completions (%s)", cli.FormatNumber(int64(len(dates))))
	if limit > 0 && len(dates) > limit {
		dates = dates[len(dates)-limit:]
		title = fmt.Sprintf("Back-filled completions (last %d of %s)", limit, cli.FormatNumber(int64(len(h.Completions))))
	}

	rows := make([][]string, 0, len(dates))
	for i := len(dates) - 1; i >= 0; i-- {
		d := dates[i]
		rows = append(rows, []string{
			strconv.Itoa(len(h.Completions) - len(dates) + i + 1),
			cli.FormatDate(d),
			cli.FormatDayOfWeek(int(d.Weekday())),
			cli.FormatRelative(d, today),
		})
	}

	return cli.Table{
		Title:   title,
		Headers: []string{"#", "Date", "Day", "When"},
		Rows:    rows,
	}
}
