package models

import (
	"slices"
	"time"
)

// MoodEntry is a single mood check-in. Entries are append-only.
type MoodEntry struct {
	ID      string    `json:"id" validate:"required"`
	Date    time.Time `json:"date" validate:"required"`
	Score   int       `json:"score" validate:"min=1,max=10"`
	Notes   string    `json:"notes,omitempty"`
	Factors []string  `json:"factors,omitempty"`
}

// NewMoodEntry carries the caller-supplied fields of a mood entry.
type NewMoodEntry struct {
	Score   int
	Notes   string
	Factors []string
}

// Build creates the full record for the given id and date.
func (n NewMoodEntry) Build(id string, date time.Time) MoodEntry {
	return MoodEntry{ID: id, Date: date, Score: n.Score, Notes: n.Notes, Factors: slices.Clone(n.Factors)}
}

// Clone returns a copy of m that shares no memory with it.
func (m MoodEntry) Clone() MoodEntry {
	m.Factors = slices.Clone(m.Factors)
	return m
}

// Exercise describes a workout logged alongside health data.
type Exercise struct {
	Minutes int    `json:"minutes" validate:"gt=0"`
	Type    string `json:"type,omitempty"`
}

// Meals records which meals were eaten and how many snacks.
type Meals struct {
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`
	Snacks    int  `json:"snacks" validate:"gte=0"`
}

// HealthData is a daily health log. Entries are append-only.
type HealthData struct {
	ID          string    `json:"id" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	SleepHours  float64   `json:"sleepHours" validate:"gte=0,lte=24"`
	StressLevel int       `json:"stressLevel" validate:"min=1,max=10"`
	WaterIntake float64   `json:"waterIntake" validate:"gte=0"` // glasses
	Exercise    *Exercise `json:"exercise,omitempty" validate:"omitempty"`
	Meals       *Meals    `json:"meals,omitempty" validate:"omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// NewHealthData carries the caller-supplied fields of a health entry.
type NewHealthData struct {
	SleepHours  float64
	StressLevel int
	WaterIntake float64
	Exercise    *Exercise
	Meals       *Meals
	Notes       string
}

// Build creates the full record for the given id and date.
func (n NewHealthData) Build(id string, date time.Time) HealthData {
	h := HealthData{
		ID:          id,
		Date:        date,
		SleepHours:  n.SleepHours,
		StressLevel: n.StressLevel,
		WaterIntake: n.WaterIntake,
		Exercise:    n.Exercise,
		Meals:       n.Meals,
		Notes:       n.Notes,
	}
	return h.Clone()
}

// Clone returns a copy of h that shares no memory with it.
func (h HealthData) Clone() HealthData {
	if h.Exercise != nil {
		ex := *h.Exercise
		h.Exercise = &ex
	}
	if h.Meals != nil {
		meals := *h.Meals
		h.Meals = &meals
	}
	return h
}
