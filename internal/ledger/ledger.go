// Package ledger owns the habit records of one session and is the only place
// they are created, completed, or deleted.
//
// A Ledger is confined to a single goroutine (the Bubble Tea update loop);
// it holds no locks. Every public operation reads "today" exactly once so a
// call never straddles midnight.
package ledger

import (
	"strings"
	"time"

	"github.com/theirongolddev/hstreak/internal/model"
	"github.com/theirongolddev/hstreak/internal/pipeline"

	"go.uber.org/zap"
)

// MaxSpanDays bounds how far back a habit may start (about 100 years) and
// how far apart its completions may be.
const MaxSpanDays = 36525

// CompletionResult reports what MarkCompletedToday did.
type CompletionResult int

// Completion outcomes. None of them is an error.
const (
	Marked CompletionResult = iota
	AlreadyCompleted
	NotFound
)

func (r CompletionResult) String() string {
	switch r {
	case Marked:
		return "marked"
	case AlreadyCompleted:
		return "already completed"
	default:
		return "not found"
	}
}

// View is one evaluation pass over the ledger: per-habit stats and totals
// computed against the same Today.
type View struct {
	Today  time.Time
	Habits []model.HabitStats
	Totals model.TotalStats
}

// Ledger is the collection of habit records for one session.
type Ledger struct {
	habits []model.Habit
	nextID int

	now    func() time.Time
	logger *zap.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the source of "now".
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithLogger attaches a structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// New returns an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		nextID: 1,
		now:    func() time.Time { return timeNow() },
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}
	return l
}

// Today returns the current calendar date as seen by the ledger.
func (l *Ledger) Today() time.Time {
	return pipeline.Day(l.now())
}

// CreateFromStartDate adds a habit that started on start, back-filling one
// completion every frequencyDays up to yesterday. It returns the new id.
func (l *Ledger) CreateFromStartDate(name string, start time.Time, frequencyDays int) (int, error) {
	today := l.Today()
	l.logger.Debug("Creating habit from start date",
		zap.String("name", name),
		zap.String("start_date", start.Format(pipeline.DateLayout)),
		zap.Int("frequency_days", frequencyDays),
	)

	name, err := validate(name, frequencyDays)
	if err == nil {
		err = validateStart(pipeline.Day(start), today)
	}
	if err != nil {
		l.logger.Warn("Rejected habit", zap.Error(err))
		return 0, err
	}

	return l.insert(name, pipeline.Day(start), frequencyDays, nil, today), nil
}

// CreateFromDayCount adds a habit that started daysAgo days before today and
// remembers daysAgo as its declared streak length.
func (l *Ledger) CreateFromDayCount(name string, daysAgo, frequencyDays int) (int, error) {
	today := l.Today()
	l.logger.Debug("Creating habit from day count",
		zap.String("name", name),
		zap.Int("days_ago", daysAgo),
		zap.Int("frequency_days", frequencyDays),
	)

	name, err := validate(name, frequencyDays)
	if err == nil {
		switch {
		case daysAgo < 0:
			err = invalid("day count", "must not be negative")
		case daysAgo > MaxSpanDays:
			err = invalid("day count", "must be at most %d", MaxSpanDays)
		}
	}
	if err != nil {
		l.logger.Warn("Rejected habit", zap.Error(err))
		return 0, err
	}

	declared := daysAgo
	return l.insert(name, today.AddDate(0, 0, -daysAgo), frequencyDays, &declared, today), nil
}

func (l *Ledger) insert(name string, start time.Time, frequencyDays int, declared *int, today time.Time) int {
	h := model.Habit{
		ID:            l.nextID,
		Name:          name,
		StartDate:     start,
		FrequencyDays: frequencyDays,
		Completions:   pipeline.Backfill(start, frequencyDays, today),
		DeclaredDays:  declared,
	}
	l.nextID++
	l.habits = append(l.habits, h)

	l.logger.Info("Habit created",
		zap.Int("id", h.ID),
		zap.String("name", h.Name),
		zap.Int("backfilled", len(h.Completions)),
	)
	return h.ID
}

func validate(name string, frequencyDays int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name", "must not be empty")
	}
	if frequencyDays < 1 {
		return "", invalid("frequency", "must be at least 1 day, got %d", frequencyDays)
	}
	if frequencyDays > MaxSpanDays {
		return "", invalid("frequency", "must be at most %d days, got %d", MaxSpanDays, frequencyDays)
	}
	return name, nil
}

func validateStart(start, today time.Time) error {
	if start.IsZero() {
		return invalid("start date", "is required")
	}
	span := pipeline.DaysBetween(start, today)
	if span < 0 {
		return invalid("start date", "%s is in the future", start.Format(pipeline.DateLayout))
	}
	if span > MaxSpanDays {
		return invalid("start date", "%s is more than %d days ago", start.Format(pipeline.DateLayout), MaxSpanDays)
	}
	return nil
}

// MarkCompletedToday records today's completion for id. Calling it again on
// the same day changes nothing.
func (l *Ledger) MarkCompletedToday(id int) CompletionResult {
	today := l.Today()
	idx := l.indexOf(id)
	if idx < 0 {
		l.logger.Debug("Completion for unknown habit", zap.Int("id", id))
		return NotFound
	}

	h := &l.habits[idx]
	if pipeline.CompletedOn(*h, today) {
		return AlreadyCompleted
	}
	h.Completions = append(h.Completions, today)

	l.logger.Info("Habit completed",
		zap.Int("id", id),
		zap.String("date", today.Format(pipeline.DateLayout)),
	)
	return Marked
}

// Delete removes the habit with id. It reports whether one was removed.
func (l *Ledger) Delete(id int) bool {
	idx := l.indexOf(id)
	if idx < 0 {
		return false
	}
	l.habits = append(l.habits[:idx], l.habits[idx+1:]...)
	l.logger.Info("Habit deleted", zap.Int("id", id))
	return true
}

// Get returns a copy of the habit with id.
func (l *Ledger) Get(id int) (model.Habit, bool) {
	idx := l.indexOf(id)
	if idx < 0 {
		return model.Habit{}, false
	}
	return l.habits[idx].Clone(), true
}

// Habits returns copies of all habits in creation order.
func (l *Ledger) Habits() []model.Habit {
	out := make([]model.Habit, len(l.habits))
	for i, h := range l.habits {
		out[i] = h.Clone()
	}
	return out
}

// Len returns the number of habits.
func (l *Ledger) Len() int {
	return len(l.habits)
}

// StatsFor derives the stats of one habit. ok is false if id is unknown.
func (l *Ledger) StatsFor(id int) (model.HabitStats, bool) {
	idx := l.indexOf(id)
	if idx < 0 {
		return model.HabitStats{}, false
	}
	return pipeline.HabitStats(l.habits[idx], l.Today()), true
}

// AggregateStats derives totals across all habits.
func (l *Ledger) AggregateStats() model.TotalStats {
	return pipeline.Totals(l.habits, l.Today())
}

// Snapshot evaluates every derived view against a single "today".
func (l *Ledger) Snapshot() View {
	today := l.Today()
	return View{
		Today:  today,
		Habits: pipeline.AllStats(l.habits, today),
		Totals: pipeline.Totals(l.habits, today),
	}
}

func (l *Ledger) indexOf(id int) int {
	for i := range l.habits {
		if l.habits[i].ID == id {
			return i
		}
	}
	return -1
}
