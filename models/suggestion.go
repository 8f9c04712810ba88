package models

import "time"

// SuggestionType categorises a suggestion.
type SuggestionType string

const (
	SuggestionSleep        SuggestionType = "sleep"
	SuggestionStress       SuggestionType = "stress"
	SuggestionProductivity SuggestionType = "productivity"
	SuggestionWater        SuggestionType = "water"
	SuggestionExercise     SuggestionType = "exercise"
	SuggestionGeneral      SuggestionType = "general"
)

// Valid reports whether t is a known suggestion type.
func (t SuggestionType) Valid() bool {
	switch t {
	case SuggestionSleep, SuggestionStress, SuggestionProductivity,
		SuggestionWater, SuggestionExercise, SuggestionGeneral:
		return true
	}
	return false
}

// Suggestion is a derived recommendation. The whole list is regenerated
// whenever the underlying records change.
type Suggestion struct {
	ID        string         `json:"id" validate:"required"`
	Type      SuggestionType `json:"type" validate:"required,oneof=sleep stress productivity water exercise general"`
	Message   string         `json:"message" validate:"required"`
	Priority  Priority       `json:"priority" validate:"required,oneof=low medium high"`
	CreatedAt time.Time      `json:"createdAt"`
	Dismissed bool           `json:"dismissed,omitempty"`
}
