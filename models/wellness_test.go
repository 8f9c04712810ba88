package models

import (
	"testing"
	"time"
)

func TestMoodEntry_Validate(t *testing.T) {
	now := time.Now()
	for score, wantErr := range map[int]bool{0: true, 1: false, 5: false, 10: false, 11: true} {
		entry := NewMoodEntry{Score: score}.Build("m1", now)
		err := ValidateStruct(entry)
		if (err != nil) != wantErr {
			t.Errorf("score %d: error = %v, wantErr %v", score, err, wantErr)
		}
	}
}

func TestHealthData_Validate(t *testing.T) {
	now := time.Now()
	base := NewHealthData{SleepHours: 7.5, StressLevel: 4, WaterIntake: 6}

	tests := []struct {
		name    string
		mutate  func(*NewHealthData)
		wantErr bool
	}{
		{name: "valid", mutate: func(*NewHealthData) {}},
		{name: "negative sleep", mutate: func(h *NewHealthData) { h.SleepHours = -1 }, wantErr: true},
		{name: "stress out of range", mutate: func(h *NewHealthData) { h.StressLevel = 11 }, wantErr: true},
		{name: "negative water", mutate: func(h *NewHealthData) { h.WaterIntake = -2 }, wantErr: true},
		{name: "zero exercise minutes", mutate: func(h *NewHealthData) { h.Exercise = &Exercise{Minutes: 0} }, wantErr: true},
		{name: "exercise and meals", mutate: func(h *NewHealthData) {
			h.Exercise = &Exercise{Minutes: 30, Type: "run"}
			h.Meals = &Meals{Breakfast: true, Snacks: 2}
		}},
		{name: "negative snacks", mutate: func(h *NewHealthData) { h.Meals = &Meals{Snacks: -1} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			err := ValidateStruct(in.Build("h1", now))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSuggestionType_Valid(t *testing.T) {
	if !SuggestionExercise.Valid() {
		t.Error("exercise should be valid")
	}
	if SuggestionType("diet").Valid() {
		t.Error("diet should not be valid")
	}
}
