package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/josephgoksu/interncare/models"
)

// Storage keys, one per collection.
const (
	KeyTasks       = "interncare-tasks"
	KeyMoods       = "interncare-moods"
	KeyHealth      = "interncare-health"
	KeyDarkMode    = "interncare-dark-mode"
	KeySuggestions = "interncare-suggestions"
)

// AllKeys lists every key the store owns.
var AllKeys = []string{KeyTasks, KeyMoods, KeyHealth, KeyDarkMode, KeySuggestions}

// Store is the record store. It owns the task, mood and health collections,
// caches the last suggestion list and the dark-mode flag, and persists the
// affected key on every mutation before returning.
//
// Mutations that target an id that does not exist are silent no-ops and
// report changed=false.
type Store struct {
	backend Backend

	mu          sync.RWMutex
	tasks       []models.Task
	moods       []models.MoodEntry
	health      []models.HealthData
	suggestions []models.Suggestion
	darkMode    bool

	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// Open loads every collection from backend. Missing keys load as empty;
// a key that cannot be decoded is an error naming the key.
func Open(ctx context.Context, backend Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend: backend,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := load(ctx, backend, KeyTasks, &s.tasks); err != nil {
		return nil, err
	}
	if err := load(ctx, backend, KeyMoods, &s.moods); err != nil {
		return nil, err
	}
	if err := load(ctx, backend, KeyHealth, &s.health); err != nil {
		return nil, err
	}
	if err := load(ctx, backend, KeySuggestions, &s.suggestions); err != nil {
		return nil, err
	}
	if err := load(ctx, backend, KeyDarkMode, &s.darkMode); err != nil {
		return nil, err
	}
	return s, nil
}

func load[T any](ctx context.Context, b Backend, key string, dst *T) error {
	data, err := b.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) persist(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Put(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Backend returns the underlying backend.
func (s *Store) Backend() Backend { return s.backend }

// Close closes the backend.
func (s *Store) Close() error { return s.backend.Close() }

// --- tasks ---

// AddTask creates a task with a fresh id, createdAt=now and completed=false.
func (s *Store) AddTask(ctx context.Context, in models.NewTask) (models.Task, error) {
	task := in.Build(s.newID(), s.now())
	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(slices.Clone(s.tasks), task)
	if err := s.persist(ctx, KeyTasks, next); err != nil {
		return models.Task{}, err
	}
	s.tasks = next
	return task.Clone(), nil
}

// UpdateTask merges patch into the task with id.
func (s *Store) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (models.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateTaskLocked(ctx, id, patch.Apply)
}

// ToggleTask flips the completed flag of the task with id.
func (s *Store) ToggleTask(ctx context.Context, id string) (models.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateTaskLocked(ctx, id, func(t models.Task) models.Task {
		t.Completed = !t.Completed
		return t
	})
}

func (s *Store) updateTaskLocked(ctx context.Context, id string, change func(models.Task) models.Task) (models.Task, bool, error) {
	i := slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
	if i < 0 {
		return models.Task{}, false, nil
	}
	updated := change(s.tasks[i])
	if err := models.ValidateStruct(updated); err != nil {
		return models.Task{}, false, err
	}

	next := slices.Clone(s.tasks)
	next[i] = updated
	if err := s.persist(ctx, KeyTasks, next); err != nil {
		return models.Task{}, false, err
	}
	s.tasks = next
	return updated.Clone(), true, nil
}

// DeleteTask removes the task with id.
func (s *Store) DeleteTask(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.tasks), func(t models.Task) bool { return t.ID == id })
	if len(next) == len(s.tasks) {
		return false, nil
	}
	if err := s.persist(ctx, KeyTasks, next); err != nil {
		return false, err
	}
	s.tasks = next
	return true, nil
}

// Tasks returns deep copies of all tasks in insertion order.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.tasks, models.Task.Clone)
}

// Task returns the task with id.
func (s *Store) Task(id string) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return models.Task{}, false
}

// --- mood and health ---

// AddMood appends a mood entry dated now.
func (s *Store) AddMood(ctx context.Context, in models.NewMoodEntry) (models.MoodEntry, error) {
	entry := in.Build(s.newID(), s.now())
	if err := models.ValidateStruct(entry); err != nil {
		return models.MoodEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(slices.Clone(s.moods), entry)
	if err := s.persist(ctx, KeyMoods, next); err != nil {
		return models.MoodEntry{}, err
	}
	s.moods = next
	return entry.Clone(), nil
}

// Moods returns deep copies of all mood entries.
func (s *Store) Moods() []models.MoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.moods, models.MoodEntry.Clone)
}

// AddHealth appends a health entry dated now.
func (s *Store) AddHealth(ctx context.Context, in models.NewHealthData) (models.HealthData, error) {
	entry := in.Build(s.newID(), s.now())
	if err := models.ValidateStruct(entry); err != nil {
		return models.HealthData{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(slices.Clone(s.health), entry)
	if err := s.persist(ctx, KeyHealth, next); err != nil {
		return models.HealthData{}, err
	}
	s.health = next
	return entry.Clone(), nil
}

// Health returns deep copies of all health entries.
func (s *Store) Health() []models.HealthData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.health, models.HealthData.Clone)
}

// cloneAll copies a collection element by element. A nil collection stays nil.
func cloneAll[T any](src []T, clone func(T) T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = clone(v)
	}
	return out
}

// --- suggestions ---

// ReplaceSuggestions swaps in a freshly generated list.
func (s *Store) ReplaceSuggestions(ctx context.Context, list []models.Suggestion) error {
	next := slices.Clone(list)
	if next == nil {
		next = []models.Suggestion{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, KeySuggestions, next); err != nil {
		return err
	}
	s.suggestions = next
	return nil
}

// DismissSuggestion marks the suggestion with id as dismissed. The flag
// lasts until the list is next regenerated.
func (s *Store) DismissSuggestion(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.suggestions, func(sg models.Suggestion) bool { return sg.ID == id })
	if i < 0 || s.suggestions[i].Dismissed {
		return false, nil
	}
	next := slices.Clone(s.suggestions)
	next[i].Dismissed = true
	if err := s.persist(ctx, KeySuggestions, next); err != nil {
		return false, err
	}
	s.suggestions = next
	return true, nil
}

// Suggestions returns a copy of the cached suggestion list.
func (s *Store) Suggestions() []models.Suggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.suggestions)
}

// --- settings ---

// DarkMode reports the stored theme flag.
func (s *Store) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

// SetDarkMode stores the theme flag.
func (s *Store) SetDarkMode(ctx context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, KeyDarkMode, on); err != nil {
		return err
	}
	s.darkMode = on
	return nil
}

// ToggleDarkMode flips the theme flag and returns the new value.
func (s *Store) ToggleDarkMode(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := !s.darkMode
	if err := s.persist(ctx, KeyDarkMode, next); err != nil {
		return s.darkMode, err
	}
	s.darkMode = next
	return next, nil
}

// ClearAll removes tasks, mood entries, health data and suggestions.
// The theme flag is a preference and survives.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{KeyTasks, KeyMoods, KeyHealth, KeySuggestions} {
		if err := s.backend.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	s.tasks = nil
	s.moods = nil
	s.health = nil
	s.suggestions = nil
	return nil
}
