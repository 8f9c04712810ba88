package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/josephgoksu/interncare/models"
	yaml "gopkg.in/yaml.v3"
)

// SnapshotVersion is bumped when the export layout changes.
const SnapshotVersion = 1

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Snapshot is a full export of the store, used for backup and restore.
type Snapshot struct {
	Version     int                 `json:"version" yaml:"version"`
	ExportedAt  time.Time           `json:"exportedAt" yaml:"exportedAt"`
	Tasks       []models.Task       `json:"tasks" yaml:"tasks"`
	Moods       []models.MoodEntry  `json:"moods" yaml:"moods"`
	Health      []models.HealthData `json:"health" yaml:"health"`
	Suggestions []models.Suggestion `json:"suggestions" yaml:"suggestions"`
	DarkMode    bool                `json:"darkMode" yaml:"darkMode"`
}

// Snapshot captures the current contents of the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Version:     SnapshotVersion,
		ExportedAt:  s.now(),
		Tasks:       cloneAll(s.tasks, models.Task.Clone),
		Moods:       cloneAll(s.moods, models.MoodEntry.Clone),
		Health:      cloneAll(s.health, models.HealthData.Clone),
		Suggestions: slices.Clone(s.suggestions),
		DarkMode:    s.darkMode,
	}
}

// Restore replaces every collection with the snapshot's contents.
// All records are validated before anything is written.
func (s *Store) Restore(ctx context.Context, snap Snapshot) error {
	if snap.Version > SnapshotVersion {
		return fmt.Errorf("snapshot version %d is newer than supported version %d", snap.Version, SnapshotVersion)
	}
	for i := range snap.Tasks {
		if err := models.ValidateStruct(snap.Tasks[i]); err != nil {
			return fmt.Errorf("task %d: %w", i, err)
		}
	}
	for i := range snap.Moods {
		if err := models.ValidateStruct(snap.Moods[i]); err != nil {
			return fmt.Errorf("mood entry %d: %w", i, err)
		}
	}
	for i := range snap.Health {
		if err := models.ValidateStruct(snap.Health[i]); err != nil {
			return fmt.Errorf("health entry %d: %w", i, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	writes := []struct {
		key   string
		value any
	}{
		{KeyTasks, nonNil(snap.Tasks)},
		{KeyMoods, nonNil(snap.Moods)},
		{KeyHealth, nonNil(snap.Health)},
		{KeySuggestions, nonNil(snap.Suggestions)},
		{KeyDarkMode, snap.DarkMode},
	}
	for _, w := range writes {
		if err := s.persist(ctx, w.key, w.value); err != nil {
			return err
		}
	}
	s.tasks = cloneAll(nonNil(snap.Tasks), models.Task.Clone)
	s.moods = cloneAll(nonNil(snap.Moods), models.MoodEntry.Clone)
	s.health = cloneAll(nonNil(snap.Health), models.HealthData.Clone)
	s.suggestions = slices.Clone(snap.Suggestions)
	s.darkMode = snap.DarkMode
	return nil
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

// Encode writes the snapshot in the given format.
func (snap Snapshot) Encode(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format %q (use json or yaml)", format)
	}
}

// DecodeSnapshot reads a snapshot in the given format.
func DecodeSnapshot(r io.Reader, format string) (Snapshot, error) {
	var snap Snapshot
	switch strings.ToLower(format) {
	case FormatJSON, "":
		if err := json.NewDecoder(r).Decode(&snap); err != nil {
			return Snapshot{}, fmt.Errorf("decode JSON snapshot: %w", err)
		}
	case FormatYAML, "yml":
		if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
			return Snapshot{}, fmt.Errorf("decode YAML snapshot: %w", err)
		}
	default:
		return Snapshot{}, fmt.Errorf("unsupported import format %q (use json or yaml)", format)
	}
	return snap, nil
}
