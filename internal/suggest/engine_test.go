package suggest

import (
	"fmt"
	"testing"
	"time"

	"github.com/josephgoksu/interncare/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type fixedPicker int

func (p fixedPicker) IntN(int) int { return int(p) }

func newTestEngine() *Engine {
	n := 0
	return NewEngine(
		WithClock(func() time.Time { return now }),
		WithPicker(fixedPicker(0)),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("sg-%d", n)
		}),
	)
}

func hoursAgo(h int) time.Time { return now.Add(-time.Duration(h) * time.Hour) }

func healthSeries(sleep []float64, stress int, water float64) []models.HealthData {
	out := make([]models.HealthData, len(sleep))
	for i, s := range sleep {
		out[i] = models.HealthData{ID: fmt.Sprint(i), Date: hoursAgo(i * 12), SleepHours: s, StressLevel: stress, WaterIntake: water}
	}
	return out
}

func byType(list []models.Suggestion, typ models.SuggestionType) []models.Suggestion {
	var out []models.Suggestion
	for _, s := range list {
		if s.Type == typ {
			out = append(out, s)
		}
	}
	return out
}

func messages(list []models.Suggestion) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.Message
	}
	return out
}

func TestGenerate_OnlyMotivationalWithoutData(t *testing.T) {
	got := newTestEngine().Generate(nil, nil, nil)

	require.Len(t, got, 1)
	assert.Equal(t, models.SuggestionGeneral, got[0].Type)
	assert.Equal(t, models.PriorityLow, got[0].Priority)
	assert.Equal(t, MotivationalMessages[0], got[0].Message)
	assert.Equal(t, "sg-1", got[0].ID)
	assert.True(t, got[0].CreatedAt.Equal(now))
}

func TestGenerate_SleepRule(t *testing.T) {
	tests := []struct {
		name         string
		sleep        []float64
		wantPriority models.Priority
		wantMessage  string
	}{
		{name: "three low nights", sleep: []float64{5, 5, 5, 8, 8}, wantPriority: models.PriorityHigh, wantMessage: MsgSleepLow},
		{name: "one low night", sleep: []float64{5, 8, 8}, wantPriority: models.PriorityMedium, wantMessage: MsgSleepSlightlyLow},
		{name: "rested", sleep: []float64{7, 8, 9}},
		{name: "too few records", sleep: []float64{4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := byType(newTestEngine().Generate(healthSeries(tt.sleep, 3, 8), nil, nil), models.SuggestionSleep)
			if tt.wantMessage == "" {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantPriority, got[0].Priority)
			assert.Equal(t, tt.wantMessage, got[0].Message)
		})
	}
}

func TestGenerate_WaterRule(t *testing.T) {
	low := byType(newTestEngine().Generate(healthSeries([]float64{8}, 3, 4), nil, nil), models.SuggestionWater)
	require.Len(t, low, 1)
	assert.Equal(t, models.PriorityMedium, low[0].Priority)

	ok := byType(newTestEngine().Generate(healthSeries([]float64{8, 8}, 3, 7), nil, nil), models.SuggestionWater)
	assert.Empty(t, ok)
}

func TestGenerate_StressRule(t *testing.T) {
	stressed := byType(newTestEngine().Generate(healthSeries([]float64{8, 8}, 8, 8), nil, nil), models.SuggestionStress)
	require.Len(t, stressed, 1)
	assert.Equal(t, models.PriorityHigh, stressed[0].Priority)

	// 7 is not above the threshold.
	calm := byType(newTestEngine().Generate(healthSeries([]float64{8, 8}, 7, 8), nil, nil), models.SuggestionStress)
	assert.Empty(t, calm)

	single := byType(newTestEngine().Generate(healthSeries([]float64{8}, 10, 8), nil, nil), models.SuggestionStress)
	assert.Empty(t, single)
}

func TestGenerate_MoodRule(t *testing.T) {
	moods := []models.MoodEntry{
		{ID: "a", Date: hoursAgo(1), Score: 3},
		{ID: "b", Date: hoursAgo(10), Score: 4},
		{ID: "c", Date: hoursAgo(20), Score: 9},
	}
	got := newTestEngine().Generate(nil, moods, nil)
	assert.Contains(t, messages(got), MsgMoodLow)

	for _, s := range got {
		if s.Message == MsgMoodLow {
			assert.Equal(t, models.SuggestionGeneral, s.Type)
			assert.Equal(t, models.PriorityHigh, s.Priority)
		}
	}

	assert.NotContains(t, messages(newTestEngine().Generate(nil, moods[:2], nil)), MsgMoodLow)
}

func tasksWithCompleted(total, completed int) []models.Task {
	out := make([]models.Task, total)
	for i := range out {
		out[i] = models.Task{ID: fmt.Sprint(i), Title: "t", Priority: models.PriorityMedium, CreatedAt: hoursAgo(i), Completed: i < completed}
	}
	return out
}

func TestGenerate_ProductivityRule(t *testing.T) {
	tests := []struct {
		name         string
		total, done  int
		wantPriority models.Priority
		wantMessage  string
	}{
		{name: "low rate", total: 6, done: 2, wantPriority: models.PriorityMedium, wantMessage: MsgProductivityLow},
		{name: "high rate", total: 6, done: 5, wantPriority: models.PriorityLow, wantMessage: MsgProductivityHigh},
		{name: "middling rate", total: 6, done: 3},
		{name: "exactly 0.8", total: 10, done: 8},
		{name: "five tasks is not enough", total: 5, done: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := byType(newTestEngine().Generate(nil, nil, tasksWithCompleted(tt.total, tt.done)), models.SuggestionProductivity)
			if tt.wantMessage == "" {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantPriority, got[0].Priority)
			assert.Equal(t, tt.wantMessage, got[0].Message)
		})
	}
}

func TestGenerate_OldTasksIgnored(t *testing.T) {
	tasks := tasksWithCompleted(6, 0)
	for i := range tasks {
		tasks[i].CreatedAt = now.AddDate(0, 0, -8)
	}
	assert.Empty(t, byType(newTestEngine().Generate(nil, nil, tasks), models.SuggestionProductivity))
}

func TestGenerate_Staleness(t *testing.T) {
	twoDays := []models.HealthData{{ID: "h", Date: now.Add(-48 * time.Hour), SleepHours: 8, StressLevel: 2, WaterIntake: 8}}
	assert.Contains(t, messages(newTestEngine().Generate(twoDays, nil, nil)), MsgLogHealth)

	oneDay := []models.HealthData{{ID: "h", Date: now.Add(-24 * time.Hour), SleepHours: 8, StressLevel: 2, WaterIntake: 8}}
	assert.NotContains(t, messages(newTestEngine().Generate(oneDay, nil, nil)), MsgLogHealth)

	almostTwo := []models.HealthData{{ID: "h", Date: now.Add(-47 * time.Hour), SleepHours: 8, StressLevel: 2, WaterIntake: 8}}
	assert.NotContains(t, messages(newTestEngine().Generate(almostTwo, nil, nil)), MsgLogHealth)

	// Only the newest mood entry counts.
	moods := []models.MoodEntry{
		{ID: "old", Date: now.Add(-72 * time.Hour), Score: 6},
		{ID: "new", Date: now.Add(-2 * time.Hour), Score: 6},
	}
	assert.NotContains(t, messages(newTestEngine().Generate(nil, moods, nil)), MsgLogMood)
	assert.Contains(t, messages(newTestEngine().Generate(nil, moods[:1], nil)), MsgLogMood)

	// Entries outside the window never trigger a reminder.
	ancient := []models.MoodEntry{{ID: "a", Date: now.AddDate(0, 0, -10), Score: 6}}
	assert.NotContains(t, messages(newTestEngine().Generate(nil, ancient, nil)), MsgLogMood)
}

func TestGenerate_RuleOrderAndIdempotence(t *testing.T) {
	health := []models.HealthData{
		{ID: "1", Date: now.Add(-50 * time.Hour), SleepHours: 5, StressLevel: 9, WaterIntake: 3},
		{ID: "2", Date: now.Add(-60 * time.Hour), SleepHours: 5, StressLevel: 9, WaterIntake: 3},
		{ID: "3", Date: now.Add(-70 * time.Hour), SleepHours: 5, StressLevel: 9, WaterIntake: 3},
	}
	moods := []models.MoodEntry{
		{ID: "a", Date: now.Add(-50 * time.Hour), Score: 2},
		{ID: "b", Date: now.Add(-55 * time.Hour), Score: 3},
		{ID: "c", Date: now.Add(-58 * time.Hour), Score: 4},
	}
	tasks := tasksWithCompleted(6, 0)

	first := newTestEngine().Generate(health, moods, tasks)
	second := newTestEngine().Generate(health, moods, tasks)

	want := []string{
		MsgSleepLow,
		MsgWaterLow,
		MsgStressHigh,
		MsgMoodLow,
		MsgProductivityLow,
		MsgLogHealth,
		MsgLogMood,
		MotivationalMessages[0],
	}
	assert.Equal(t, want, messages(first))
	assert.Equal(t, messages(first), messages(second))

	seen := map[string]bool{}
	for _, s := range first {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
	}
}

func TestGenerate_PickerSelectsMotivation(t *testing.T) {
	e := NewEngine(WithClock(func() time.Time { return now }), WithPicker(fixedPicker(3)))
	got := e.Generate(nil, nil, nil)
	assert.Equal(t, MotivationalMessages[3], got[len(got)-1].Message)

	// Default picker stays in range.
	for range 20 {
		msg := NewEngine().Generate(nil, nil, nil)[0].Message
		assert.Contains(t, MotivationalMessages, msg)
	}
}

func TestSortByPriorityAndTop(t *testing.T) {
	list := []models.Suggestion{
		{ID: "l", Priority: models.PriorityLow},
		{ID: "m1", Priority: models.PriorityMedium},
		{ID: "h", Priority: models.PriorityHigh, Dismissed: true},
		{ID: "m2", Priority: models.PriorityMedium},
	}

	sorted := SortByPriority(list)
	assert.Equal(t, []string{"h", "m1", "m2", "l"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID})
	assert.Equal(t, "l", list[0].ID, "input untouched")

	active := Active(sorted)
	assert.Len(t, active, 3)
	assert.Len(t, Top(active, 2), 2)
	assert.Len(t, Top(active, 10), 3)
}
