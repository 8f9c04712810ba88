package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/josephgoksu/interncare/internal/analytics"
	"github.com/josephgoksu/interncare/internal/suggest"
	"github.com/josephgoksu/interncare/internal/util"
	"github.com/josephgoksu/interncare/models"
	"github.com/josephgoksu/interncare/store"
	"github.com/josephgoksu/interncare/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type firstPicker struct{}

func (firstPicker) IntN(int) int { return 0 }

func idGen(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()

	backend, err := store.NewFileBackend(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	clock := func() time.Time { return testNow }

	s, err := store.Open(context.Background(), backend, store.WithClock(clock), store.WithIDGenerator(idGen("rec")))
	require.NoError(t, err)

	engine := suggest.NewEngine(
		suggest.WithClock(clock),
		suggest.WithPicker(firstPicker{}),
		suggest.WithIDGenerator(idGen("sg")),
	)
	return NewTracker(s, engine, WithClock(clock))
}

func TestTracker_AddTaskRefreshesSuggestions(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t)

	assert.Empty(t, tr.Suggestions(true))

	task, err := tr.AddTask(ctx, models.NewTask{Title: "Write onboarding notes"})
	require.NoError(t, err)
	assert.Equal(t, "rec-1", task.ID)

	list := tr.Suggestions(false)
	require.Len(t, list, 1)
	assert.Equal(t, suggest.MotivationalMessages[0], list[0].Message)
	assert.Equal(t, models.PriorityLow, list[0].Priority)
}

func TestTracker_HealthRulesFlowThrough(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t)

	for range 3 {
		_, err := tr.AddHealth(ctx, models.NewHealthData{SleepHours: 5, StressLevel: 9, WaterIntake: 3})
		require.NoError(t, err)
	}

	list := tr.Suggestions(false)
	var kinds []models.SuggestionType
	for _, s := range list {
		kinds = append(kinds, s.Type)
	}
	// Sorted by priority: sleep(high), stress(high), water(medium), motivational(low).
	assert.Equal(t, []models.SuggestionType{
		models.SuggestionSleep, models.SuggestionStress, models.SuggestionWater, models.SuggestionGeneral,
	}, kinds)
}

func TestTracker_NoOpMutationsDoNotRefresh(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t)

	task, err := tr.AddTask(ctx, models.NewTask{Title: "Review PR"})
	require.NoError(t, err)
	first := tr.Suggestions(true)
	require.Len(t, first, 1)

	ok, err := tr.Dismiss(ctx, first[0].ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, tr.Suggestions(false))

	changed, err := tr.DeleteTask(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, changed)
	_, changed, err = tr.ToggleTask(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, changed)

	// Dismissal survives because nothing was regenerated.
	assert.Empty(t, tr.Suggestions(false))

	toggled, changed, err := tr.ToggleTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, toggled.Completed)

	// A real change regenerates the list and drops the dismissal.
	after := tr.Suggestions(false)
	require.Len(t, after, 1)
	assert.NotEqual(t, first[0].ID, after[0].ID)
}

func TestTracker_UpdateTask(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t)

	task, err := tr.AddTask(ctx, models.NewTask{Title: "Draft report"})
	require.NoError(t, err)

	title := "Draft weekly report"
	updated, changed, err := tr.UpdateTask(ctx, task.ID, models.TaskPatch{Title: &title})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, title, updated.Title)

	bad := ""
	_, _, err = tr.UpdateTask(ctx, task.ID, models.TaskPatch{Title: &bad})
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestTracker_CheckIn(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t)

	_, _, err := tr.CheckIn(ctx, models.NewMoodEntry{Score: 7}, models.NewHealthData{SleepHours: 7, StressLevel: 0})
	require.ErrorIs(t, err, types.ErrValidation)
	assert.Empty(t, tr.Store().Moods(), "mood must not be stored when health is invalid")

	m, h, err := tr.CheckIn(ctx, models.NewMoodEntry{Score: 7}, models.NewHealthData{SleepHours: 7, StressLevel: 4, WaterIntake: 8})
	require.NoError(t, err)
	assert.Equal(t, 7, m.Score)
	assert.Equal(t, 4, h.StressLevel)
	assert.Len(t, tr.Store().Moods(), 1)
	assert.Len(t, tr.Store().Health(), 1)
	assert.NotEmpty(t, tr.Suggestions(false))
}

// healthWriteFails stores everything except the health collection.
type healthWriteFails struct {
	store.Backend
}

func (b healthWriteFails) Put(ctx context.Context, key string, value []byte) error {
	if key == store.KeyHealth {
		return errors.New("disk full")
	}
	return b.Backend.Put(ctx, key, value)
}

func TestTracker_CheckInHealthWriteFails(t *testing.T) {
	ctx := context.Background()
	mem, err := store.NewFileBackend(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	clock := func() time.Time { return testNow }
	s, err := store.Open(ctx, healthWriteFails{mem}, store.WithClock(clock), store.WithIDGenerator(idGen("rec")))
	require.NoError(t, err)
	tr := NewTracker(s, suggest.NewEngine(suggest.WithClock(clock), suggest.WithPicker(firstPicker{}), suggest.WithIDGenerator(idGen("sg"))), WithClock(clock))

	m, _, err := tr.CheckIn(ctx, models.NewMoodEntry{Score: 6}, models.NewHealthData{SleepHours: 7, StressLevel: 4, WaterIntake: 8})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 6, m.Score)

	assert.Len(t, tr.Store().Moods(), 1, "the mood entry is kept")
	assert.Empty(t, tr.Store().Health())
	assert.NotEmpty(t, tr.Suggestions(false), "suggestions reflect the kept mood")
}

func TestTracker_Projections(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t)

	a, err := tr.AddTask(ctx, models.NewTask{Title: "a", Priority: models.PriorityLow})
	require.NoError(t, err)
	_, err = tr.AddTask(ctx, models.NewTask{Title: "b", Priority: models.PriorityHigh})
	require.NoError(t, err)
	_, _, err = tr.ToggleTask(ctx, a.ID)
	require.NoError(t, err)
	_, err = tr.AddMood(ctx, models.NewMoodEntry{Score: 6})
	require.NoError(t, err)
	_, err = tr.AddMood(ctx, models.NewMoodEntry{Score: 8})
	require.NoError(t, err)

	stats := tr.Stats(0)
	assert.Equal(t, 7, stats.Days)
	assert.InDelta(t, 50.0, stats.TaskCompletion, 1e-9)
	assert.InDelta(t, 7.0, stats.AverageMood, 1e-9)

	dash := tr.Dashboard()
	assert.Equal(t, 1, dash.PendingCount)
	require.Len(t, dash.TopPending, 1)
	assert.Equal(t, "b", dash.TopPending[0].Title)
	assert.Equal(t, 2, dash.MoodEntries)

	report := tr.Report(analytics.RangeWeek)
	assert.Equal(t, 2, report.TotalTasks)
	assert.Len(t, report.Days, 7)
}

func TestTracker_ResolveIDs(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t)

	for _, title := range []string{"one", "two"} {
		_, err := tr.AddTask(ctx, models.NewTask{Title: title})
		require.NoError(t, err)
	}

	id, err := tr.ResolveTaskID("rec-2")
	require.NoError(t, err)
	assert.Equal(t, "rec-2", id)

	_, err = tr.ResolveTaskID("rec")
	assert.True(t, errors.Is(err, util.ErrAmbiguousID))

	_, err = tr.ResolveTaskID("zzz")
	assert.True(t, errors.Is(err, util.ErrNotFound))

	sid, err := tr.ResolveSuggestionID("sg-2")
	require.NoError(t, err)
	assert.Equal(t, "sg-2", sid)
}

func TestTracker_ClearAllKeepsTheme(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(t)

	_, err := tr.AddTask(ctx, models.NewTask{Title: "x"})
	require.NoError(t, err)
	require.NoError(t, tr.Store().SetDarkMode(ctx, true))

	require.NoError(t, tr.ClearAll(ctx))
	assert.Empty(t, tr.Store().Tasks())
	assert.Empty(t, tr.Suggestions(true))
	assert.True(t, tr.Store().DarkMode())
}
