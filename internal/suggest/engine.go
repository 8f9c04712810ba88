// Package suggest turns recent task, mood and health records into
// prioritised suggestions.
package suggest

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/josephgoksu/interncare/internal/analytics"
	"github.com/josephgoksu/interncare/models"
)

// Rule thresholds.
const (
	WindowDays = 7

	minHealthForSleep  = 3
	lowSleepHours      = 6.0
	lowSleepDaysHigh   = 3
	minHealthForStress = 2
	highStressLevel    = 7
	highStressDays     = 2
	lowWaterGlasses    = 6.0
	minMoodsForMood    = 3
	lowMoodScore       = 5
	lowMoodDays        = 2
	minTasksForRate    = 5 // rate is only judged above this many tasks
	lowCompletionRate  = 0.4
	highCompletionRate = 0.8
	staleAfterDays     = 1
)

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Engine evaluates the suggestion rules. It holds no state between calls.
type Engine struct {
	now    func() time.Time
	picker Picker
	newID  func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's notion of "now".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithPicker overrides the random source for the motivational message.
func WithPicker(p Picker) Option {
	return func(e *Engine) { e.picker = p }
}

// WithIDGenerator overrides suggestion id generation.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// NewEngine returns an engine using the wall clock, math/rand/v2 and uuids
// unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:    time.Now,
		picker: globalRand{},
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate returns suggestions in rule order: sleep, water, stress, mood,
// productivity, staleness reminders, then one motivational message. The
// list is not sorted by priority.
func (e *Engine) Generate(health []models.HealthData, moods []models.MoodEntry, tasks []models.Task) []models.Suggestion {
	now := e.now()
	cutoff := analytics.Cutoff(now, WindowDays)

	recentHealth := recent(health, cutoff, func(h models.HealthData) time.Time { return h.Date })
	recentMoods := recent(moods, cutoff, func(m models.MoodEntry) time.Time { return m.Date })
	recentTasks := recent(tasks, cutoff, func(t models.Task) time.Time { return t.CreatedAt })

	var out []models.Suggestion
	add := func(typ models.SuggestionType, priority models.Priority, msg string) {
		out = append(out, models.Suggestion{
			ID:        e.newID(),
			Type:      typ,
			Message:   msg,
			Priority:  priority,
			CreatedAt: now,
		})
	}

	if len(recentHealth) >= minHealthForSleep {
		lowSleep := count(recentHealth, func(h models.HealthData) bool { return h.SleepHours < lowSleepHours })
		switch {
		case lowSleep >= lowSleepDaysHigh:
			add(models.SuggestionSleep, models.PriorityHigh, MsgSleepLow)
		case lowSleep >= 1:
			add(models.SuggestionSleep, models.PriorityMedium, MsgSleepSlightlyLow)
		}
	}

	if len(recentHealth) > 0 {
		var total float64
		for _, h := range recentHealth {
			total += h.WaterIntake
		}
		if total/float64(len(recentHealth)) < lowWaterGlasses {
			add(models.SuggestionWater, models.PriorityMedium, MsgWaterLow)
		}
	}

	if len(recentHealth) >= minHealthForStress {
		if count(recentHealth, func(h models.HealthData) bool { return h.StressLevel > highStressLevel }) >= highStressDays {
			add(models.SuggestionStress, models.PriorityHigh, MsgStressHigh)
		}
	}

	if len(recentMoods) >= minMoodsForMood {
		if count(recentMoods, func(m models.MoodEntry) bool { return m.Score < lowMoodScore }) >= lowMoodDays {
			add(models.SuggestionGeneral, models.PriorityHigh, MsgMoodLow)
		}
	}

	if total := len(recentTasks); total > minTasksForRate {
		rate := float64(count(recentTasks, func(t models.Task) bool { return t.Completed })) / float64(total)
		switch {
		case rate < lowCompletionRate:
			add(models.SuggestionProductivity, models.PriorityMedium, MsgProductivityLow)
		case rate > highCompletionRate:
			add(models.SuggestionProductivity, models.PriorityLow, MsgProductivityHigh)
		}
	}

	if len(recentHealth) > 0 && wholeDaysSince(now, recentHealth[0].Date) > staleAfterDays {
		add(models.SuggestionGeneral, models.PriorityMedium, MsgLogHealth)
	}
	if len(recentMoods) > 0 && wholeDaysSince(now, recentMoods[0].Date) > staleAfterDays {
		add(models.SuggestionGeneral, models.PriorityMedium, MsgLogMood)
	}

	add(models.SuggestionGeneral, models.PriorityLow, MotivationalMessages[e.picker.IntN(len(MotivationalMessages))])
	return out
}

// recent keeps items inside the window, newest first.
func recent[T any](items []T, cutoff time.Time, when func(T) time.Time) []T {
	var out []T
	for _, it := range items {
		if analytics.InWindow(when(it), cutoff) {
			out = append(out, it)
		}
	}
	slices.SortStableFunc(out, func(a, b T) int { return when(b).Compare(when(a)) })
	return out
}

func count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// wholeDaysSince truncates toward zero, so 47 hours is one day.
func wholeDaysSince(now, t time.Time) int {
	return int(now.Sub(t) / (24 * time.Hour))
}

// SortByPriority returns a copy ordered high, medium, low. Equal priorities
// keep their rule order.
func SortByPriority(list []models.Suggestion) []models.Suggestion {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b models.Suggestion) int {
		return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
	})
	return out
}

// Active drops dismissed suggestions.
func Active(list []models.Suggestion) []models.Suggestion {
	out := make([]models.Suggestion, 0, len(list))
	for _, s := range list {
		if !s.Dismissed {
			out = append(out, s)
		}
	}
	return out
}

// Top returns at most n suggestions.
func Top(list []models.Suggestion, n int) []models.Suggestion {
	if n >= 0 && len(list) > n {
		return list[:n]
	}
	return list
}
