// Package app provides the application layer that orchestrates business logic.
// CLI commands and MCP handlers both go through Tracker, so every mutation
// regenerates suggestions the same way regardless of the caller.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/josephgoksu/interncare/internal/analytics"
	"github.com/josephgoksu/interncare/internal/suggest"
	"github.com/josephgoksu/interncare/internal/util"
	"github.com/josephgoksu/interncare/models"
	"github.com/josephgoksu/interncare/store"
)

// Tracker composes the record store and the suggestion engine.
type Tracker struct {
	store      *store.Store
	engine     *suggest.Engine
	now        func() time.Time
	windowDays int
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides "now" for analytics projections.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithWindowDays sets the default analytics window. Values <= 0 keep the default.
func WithWindowDays(days int) Option {
	return func(t *Tracker) {
		if days > 0 {
			t.windowDays = days
		}
	}
}

// NewTracker wires a store and an engine together.
func NewTracker(s *store.Store, e *suggest.Engine, opts ...Option) *Tracker {
	t := &Tracker{
		store:      s,
		engine:     e,
		now:        time.Now,
		windowDays: analytics.DefaultWindowDays,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Store exposes the underlying record store for read-only callers.
func (t *Tracker) Store() *store.Store { return t.store }

// WindowDays is the default analytics window.
func (t *Tracker) WindowDays() int { return t.windowDays }

// Refresh regenerates suggestions from the full collections and replaces the
// stored list. Dismissals do not survive a refresh.
func (t *Tracker) Refresh(ctx context.Context) ([]models.Suggestion, error) {
	list := t.engine.Generate(t.store.Health(), t.store.Moods(), t.store.Tasks())
	if err := t.store.ReplaceSuggestions(ctx, list); err != nil {
		return nil, fmt.Errorf("store suggestions: %w", err)
	}
	slog.Debug("suggestions refreshed", "count", len(list))
	return list, nil
}

func (t *Tracker) refreshIf(ctx context.Context, changed bool) error {
	if !changed {
		return nil
	}
	_, err := t.Refresh(ctx)
	return err
}

// AddTask stores a new task and refreshes suggestions.
func (t *Tracker) AddTask(ctx context.Context, in models.NewTask) (models.Task, error) {
	task, err := t.store.AddTask(ctx, in)
	if err != nil {
		return models.Task{}, err
	}
	return task, t.refreshIf(ctx, true)
}

// UpdateTask applies patch to the task with id. changed is false when no
// such task exists.
func (t *Tracker) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (models.Task, bool, error) {
	task, changed, err := t.store.UpdateTask(ctx, id, patch)
	if err != nil {
		return models.Task{}, false, err
	}
	return task, changed, t.refreshIf(ctx, changed)
}

// ToggleTask flips a task's completion flag.
func (t *Tracker) ToggleTask(ctx context.Context, id string) (models.Task, bool, error) {
	task, changed, err := t.store.ToggleTask(ctx, id)
	if err != nil {
		return models.Task{}, false, err
	}
	return task, changed, t.refreshIf(ctx, changed)
}

// DeleteTask removes a task. Deleting an unknown id is a no-op.
func (t *Tracker) DeleteTask(ctx context.Context, id string) (bool, error) {
	changed, err := t.store.DeleteTask(ctx, id)
	if err != nil {
		return false, err
	}
	return changed, t.refreshIf(ctx, changed)
}

// AddMood records a mood entry and refreshes suggestions.
func (t *Tracker) AddMood(ctx context.Context, in models.NewMoodEntry) (models.MoodEntry, error) {
	entry, err := t.store.AddMood(ctx, in)
	if err != nil {
		return models.MoodEntry{}, err
	}
	return entry, t.refreshIf(ctx, true)
}

// AddHealth records a health entry and refreshes suggestions.
func (t *Tracker) AddHealth(ctx context.Context, in models.NewHealthData) (models.HealthData, error) {
	entry, err := t.store.AddHealth(ctx, in)
	if err != nil {
		return models.HealthData{}, err
	}
	return entry, t.refreshIf(ctx, true)
}

// CheckIn records one mood and one health entry together, refreshing once.
// If storing the health entry fails, the mood entry is kept and suggestions
// are still refreshed.
func (t *Tracker) CheckIn(ctx context.Context, mood models.NewMoodEntry, health models.NewHealthData) (models.MoodEntry, models.HealthData, error) {
	// Validate both first so a bad health entry doesn't leave a lone mood.
	if err := models.ValidateStruct(mood.Build("pending", t.now())); err != nil {
		return models.MoodEntry{}, models.HealthData{}, err
	}
	if err := models.ValidateStruct(health.Build("pending", t.now())); err != nil {
		return models.MoodEntry{}, models.HealthData{}, err
	}
	m, err := t.store.AddMood(ctx, mood)
	if err != nil {
		return models.MoodEntry{}, models.HealthData{}, err
	}
	h, err := t.store.AddHealth(ctx, health)
	if err != nil {
		// The mood is already stored; keep suggestions in step with it.
		return m, models.HealthData{}, errors.Join(err, t.refreshIf(ctx, true))
	}
	return m, h, t.refreshIf(ctx, true)
}

// Dismiss hides a suggestion until the next refresh.
func (t *Tracker) Dismiss(ctx context.Context, id string) (bool, error) {
	return t.store.DismissSuggestion(ctx, id)
}

// Suggestions returns the stored suggestions sorted by priority. Dismissed
// ones are dropped unless all is set.
func (t *Tracker) Suggestions(all bool) []models.Suggestion {
	list := t.store.Suggestions()
	if !all {
		list = suggest.Active(list)
	}
	return suggest.SortByPriority(list)
}

// Stats summarises the last days days; days <= 0 uses the tracker window.
func (t *Tracker) Stats(days int) analytics.WeeklyStats {
	if days <= 0 {
		days = t.windowDays
	}
	return analytics.Weekly(t.store.Tasks(), t.store.Moods(), t.store.Health(), days, t.now())
}

// Report builds the per-day report for r.
func (t *Tracker) Report(r analytics.Range) analytics.Report {
	return analytics.BuildReport(r, t.store.Tasks(), t.store.Moods(), t.store.Health(), t.now())
}

// Dashboard builds the home view.
func (t *Tracker) Dashboard() analytics.DashboardView {
	return analytics.Dashboard(t.store.Tasks(), t.store.Moods(), t.store.Health(), t.store.Suggestions(), t.windowDays, t.now())
}

// ClearAll wipes every record. The theme preference is kept.
func (t *Tracker) ClearAll(ctx context.Context) error {
	return t.store.ClearAll(ctx)
}

// AISuggest asks the model for suggestions over the current records. The
// result is shown to the user but not stored.
func (t *Tracker) AISuggest(ctx context.Context, ai *suggest.AISuggester) ([]models.Suggestion, error) {
	return ai.Suggest(ctx, t.store.Health(), t.store.Moods(), t.store.Tasks())
}

// ResolveTaskID expands a unique id prefix to a task id.
func (t *Tracker) ResolveTaskID(prefix string) (string, error) {
	tasks := t.store.Tasks()
	ids := make([]string, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return util.ResolveID(ids, prefix, "task")
}

// ResolveSuggestionID expands a unique id prefix to a suggestion id.
func (t *Tracker) ResolveSuggestionID(prefix string) (string, error) {
	list := t.store.Suggestions()
	ids := make([]string, len(list))
	for i, s := range list {
		ids[i] = s.ID
	}
	return util.ResolveID(ids, prefix, "suggestion")
}
