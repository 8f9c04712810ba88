package store

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/josephgoksu/interncare/models"
	"github.com/josephgoksu/interncare/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func setupTestStore(t *testing.T) (*Store, Backend) {
	t.Helper()

	backend, err := NewFileBackend(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)

	s, err := Open(context.Background(), backend, WithClock(func() time.Time { return testNow }), WithIDGenerator(sequentialIDs()))
	require.NoError(t, err)
	return s, backend
}

func reopen(t *testing.T, backend Backend) *Store {
	t.Helper()
	s, err := Open(context.Background(), backend)
	require.NoError(t, err)
	return s
}

func TestStore_AddTaskRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, backend := setupTestStore(t)

	in := models.NewTask{
		Title:       "Prepare standup notes",
		Description: "Summarise yesterday",
		Priority:    models.PriorityHigh,
		DueDate:     "2025-03-12",
		TimeBlock:   &models.TimeBlock{Start: "09:00", End: "09:30"},
		Tags:        []string{"work", "daily"},
	}
	created, err := s.AddTask(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, "id-1", created.ID)
	assert.False(t, created.Completed)
	assert.True(t, created.CreatedAt.Equal(testNow))

	got, ok := reopen(t, backend).Task(created.ID)
	require.True(t, ok)
	assert.Equal(t, in.Title, got.Title)
	assert.Equal(t, in.Description, got.Description)
	assert.Equal(t, in.Priority, got.Priority)
	assert.Equal(t, in.DueDate, got.DueDate)
	assert.Equal(t, *in.TimeBlock, *got.TimeBlock)
	assert.Equal(t, in.Tags, got.Tags)
	assert.False(t, got.Completed)
	assert.True(t, got.CreatedAt.Equal(testNow))
}

func TestStore_AddTaskKeepsTitleAsGiven(t *testing.T) {
	s, _ := setupTestStore(t)

	created, err := s.AddTask(context.Background(), models.NewTask{Title: "  padded  "})
	require.NoError(t, err)
	got, ok := s.Task(created.ID)
	require.True(t, ok)
	assert.Equal(t, "  padded  ", got.Title)

	_, err = s.AddTask(context.Background(), models.NewTask{Title: "   "})
	assert.ErrorIs(t, err, types.ErrValidation, "a blank title is still rejected")
}

func TestStore_RecordsDoNotShareMemoryWithCallers(t *testing.T) {
	ctx := context.Background()
	s, backend := setupTestStore(t)

	in := models.NewTask{
		Title:     "Standup",
		TimeBlock: &models.TimeBlock{Start: "09:00", End: "09:15"},
		Tags:      []string{"work"},
	}
	created, err := s.AddTask(ctx, in)
	require.NoError(t, err)

	in.Tags[0] = "changed-input"
	in.TimeBlock.Start = "23:59"
	created.Tags[0] = "changed-result"
	s.Tasks()[0].Tags[0] = "changed-read"
	s.Tasks()[0].TimeBlock.End = "23:59"
	fetched, _ := s.Task(created.ID)
	fetched.Tags[0] = "changed-get"

	want, ok := reopen(t, backend).Task(created.ID)
	require.True(t, ok)
	got, ok := s.Task(created.ID)
	require.True(t, ok)
	assert.Equal(t, want.Tags, got.Tags, "in-memory tags match what was persisted")
	assert.Equal(t, *want.TimeBlock, *got.TimeBlock, "in-memory time block matches what was persisted")
	assert.Equal(t, []string{"work"}, got.Tags)
	assert.Equal(t, models.TimeBlock{Start: "09:00", End: "09:15"}, *got.TimeBlock)

	_, err = s.AddMood(ctx, models.NewMoodEntry{Score: 6, Factors: []string{"sleep"}})
	require.NoError(t, err)
	s.Moods()[0].Factors[0] = "changed"
	assert.Equal(t, []string{"sleep"}, s.Moods()[0].Factors)

	_, err = s.AddHealth(ctx, models.NewHealthData{
		SleepHours:  7,
		StressLevel: 3,
		WaterIntake: 6,
		Exercise:    &models.Exercise{Minutes: 30},
		Meals:       &models.Meals{Lunch: true},
	})
	require.NoError(t, err)
	entry := s.Health()[0]
	entry.Exercise.Minutes = 999
	entry.Meals.Lunch = false
	assert.Equal(t, 30, s.Health()[0].Exercise.Minutes)
	assert.True(t, s.Health()[0].Meals.Lunch)

	snap := s.Snapshot()
	snap.Tasks[0].Tags[0] = "changed-snapshot"
	assert.Equal(t, []string{"work"}, s.Tasks()[0].Tags)
}

func TestStore_AddTaskValidation(t *testing.T) {
	s, _ := setupTestStore(t)

	_, err := s.AddTask(context.Background(), models.NewTask{Title: "   "})
	assert.ErrorIs(t, err, types.ErrValidation)
	assert.Empty(t, s.Tasks())
}

func TestStore_UpdateToggleDelete(t *testing.T) {
	ctx := context.Background()
	s, backend := setupTestStore(t)

	task, err := s.AddTask(ctx, models.NewTask{Title: "Read chapter 3", Priority: models.PriorityLow})
	require.NoError(t, err)

	title := "Read chapter 4"
	updated, changed, err := s.UpdateTask(ctx, task.ID, models.TaskPatch{Title: &title})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "Read chapter 4", updated.Title)
	assert.Equal(t, models.PriorityLow, updated.Priority, "unpatched fields stay")

	toggled, changed, err := s.ToggleTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, toggled.Completed)

	persisted, _ := reopen(t, backend).Task(task.ID)
	assert.True(t, persisted.Completed)
	assert.Equal(t, "Read chapter 4", persisted.Title)

	toggled, _, err = s.ToggleTask(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	deleted, err := s.DeleteTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, reopen(t, backend).Tasks())
}

func TestStore_AbsentIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	s, _ := setupTestStore(t)
	_, err := s.AddTask(ctx, models.NewTask{Title: "Keep me"})
	require.NoError(t, err)

	deleted, err := s.DeleteTask(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, deleted)

	title := "x"
	_, changed, err := s.UpdateTask(ctx, "missing", models.TaskPatch{Title: &title})
	assert.NoError(t, err)
	assert.False(t, changed)

	_, changed, err = s.ToggleTask(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, changed)

	dismissed, err := s.DismissSuggestion(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, dismissed)

	assert.Len(t, s.Tasks(), 1)
}

func TestStore_MoodAndHealth(t *testing.T) {
	ctx := context.Background()
	s, backend := setupTestStore(t)

	mood, err := s.AddMood(ctx, models.NewMoodEntry{Score: 7, Factors: []string{"sleep"}})
	require.NoError(t, err)
	assert.True(t, mood.Date.Equal(testNow))

	_, err = s.AddMood(ctx, models.NewMoodEntry{Score: 0})
	assert.ErrorIs(t, err, types.ErrValidation)

	health, err := s.AddHealth(ctx, models.NewHealthData{
		SleepHours:  6.5,
		StressLevel: 5,
		WaterIntake: 7,
		Exercise:    &models.Exercise{Minutes: 20, Type: "walk"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, health.ID)

	again := reopen(t, backend)
	require.Len(t, again.Moods(), 1)
	require.Len(t, again.Health(), 1)
	assert.Equal(t, 20, again.Health()[0].Exercise.Minutes)
}

func TestStore_SuggestionsReplaceAndDismiss(t *testing.T) {
	ctx := context.Background()
	s, backend := setupTestStore(t)

	list := []models.Suggestion{
		{ID: "s1", Type: models.SuggestionSleep, Message: "sleep more", Priority: models.PriorityHigh, CreatedAt: testNow},
		{ID: "s2", Type: models.SuggestionGeneral, Message: "keep going", Priority: models.PriorityLow, CreatedAt: testNow},
	}
	require.NoError(t, s.ReplaceSuggestions(ctx, list))

	ok, err := s.DismissSuggestion(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.DismissSuggestion(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok, "already dismissed")

	persisted := reopen(t, backend).Suggestions()
	require.Len(t, persisted, 2)
	assert.True(t, persisted[0].Dismissed)
	assert.False(t, persisted[1].Dismissed)

	require.NoError(t, s.ReplaceSuggestions(ctx, list[1:]))
	assert.Len(t, s.Suggestions(), 1)
}

func TestStore_DarkMode(t *testing.T) {
	ctx := context.Background()
	s, backend := setupTestStore(t)

	assert.False(t, s.DarkMode())
	on, err := s.ToggleDarkMode(ctx)
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, reopen(t, backend).DarkMode())

	require.NoError(t, s.SetDarkMode(ctx, false))
	assert.False(t, reopen(t, backend).DarkMode())
}

func TestStore_ClearAllKeepsTheme(t *testing.T) {
	ctx := context.Background()
	s, backend := setupTestStore(t)

	_, err := s.AddTask(ctx, models.NewTask{Title: "Task"})
	require.NoError(t, err)
	_, err = s.AddMood(ctx, models.NewMoodEntry{Score: 5})
	require.NoError(t, err)
	require.NoError(t, s.SetDarkMode(ctx, true))

	require.NoError(t, s.ClearAll(ctx))
	assert.Empty(t, s.Tasks())
	assert.Empty(t, s.Moods())

	keys, err := backend.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyDarkMode}, keys)
	assert.True(t, reopen(t, backend).DarkMode())
}

func TestStore_OpenCorruptKey(t *testing.T) {
	ctx := context.Background()
	backend, err := NewSQLiteBackend(":memory:")
	require.NoError(t, err)
	defer func() { _ = backend.Close() }()

	require.NoError(t, backend.Put(ctx, KeyHealth, []byte(`{not json`)))

	_, err = Open(ctx, backend)
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyHealth)
}

func TestStore_SnapshotRestore(t *testing.T) {
	ctx := context.Background()
	src, _ := setupTestStore(t)

	_, err := src.AddTask(ctx, models.NewTask{Title: "Export me", Tags: []string{"x"}})
	require.NoError(t, err)
	_, err = src.AddMood(ctx, models.NewMoodEntry{Score: 8, Notes: "good day"})
	require.NoError(t, err)
	_, err = src.AddHealth(ctx, models.NewHealthData{SleepHours: 8, StressLevel: 2, WaterIntake: 9, Meals: &models.Meals{Lunch: true, Snacks: 1}})
	require.NoError(t, err)
	require.NoError(t, src.SetDarkMode(ctx, true))

	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, src.Snapshot().Encode(&buf, format))

			snap, err := DecodeSnapshot(&buf, format)
			require.NoError(t, err)

			dst, backend := setupTestStore(t)
			require.NoError(t, dst.Restore(ctx, snap))

			again := reopen(t, backend)
			require.Len(t, again.Tasks(), 1)
			assert.Equal(t, "Export me", again.Tasks()[0].Title)
			assert.Equal(t, "good day", again.Moods()[0].Notes)
			assert.Equal(t, 1, again.Health()[0].Meals.Snacks)
			assert.True(t, again.DarkMode())
		})
	}
}

func TestStore_RestoreRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	s, _ := setupTestStore(t)
	_, err := s.AddTask(ctx, models.NewTask{Title: "Existing"})
	require.NoError(t, err)

	bad := Snapshot{Version: SnapshotVersion, Moods: []models.MoodEntry{{ID: "m", Date: testNow, Score: 42}}}
	assert.ErrorIs(t, s.Restore(ctx, bad), types.ErrValidation)
	assert.Len(t, s.Tasks(), 1, "nothing written on failure")

	assert.Error(t, s.Restore(ctx, Snapshot{Version: SnapshotVersion + 1}))

	_, err = DecodeSnapshot(bytes.NewBufferString("{}"), "toml")
	assert.Error(t, err)
}
