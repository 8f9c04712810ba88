// Package mcp provides types and utilities for the MCP server.
package mcp

// === Tool Names ===

const (
	ToolAddTask        = "add_task"
	ToolToggleTask     = "toggle_task"
	ToolLogMood        = "log_mood"
	ToolLogHealth      = "log_health"
	ToolGetSuggestions = "get_suggestions"
	ToolGetStats       = "get_stats"
	ToolGetDashboard   = "get_dashboard"
)

// === Limits ===

const (
	// DefaultSuggestionLimit is how many suggestions get_suggestions returns when limit is unset.
	DefaultSuggestionLimit = 5

	// MaxSuggestionLimit caps get_suggestions.
	MaxSuggestionLimit = 50

	// MaxStatsDays caps the get_stats window.
	MaxStatsDays = 365
)

const maxTitleLength = 200

// === Error Codes ===

const (
	CodeValidation = "validation_error"
	CodeNotFound   = "not_found"
	CodeAmbiguous  = "ambiguous_id"
	CodeInternal   = "internal_error"
)

// === Tool Parameters ===

// AddTaskParams defines the parameters for the add_task tool.
type AddTaskParams struct {
	// Title is required, 1..200 characters.
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// Priority is one of: low, medium, high (default: medium)
	Priority string `json:"priority,omitempty"`

	// DueDate is YYYY-MM-DD.
	DueDate string   `json:"due_date,omitempty"`
	Start   string   `json:"start,omitempty"` // HH:MM, requires End
	End     string   `json:"end,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// ToggleTaskParams defines the parameters for the toggle_task tool.
type ToggleTaskParams struct {
	// ID is a full task ID or a unique prefix.
	ID string `json:"id"`
}

// LogMoodParams defines the parameters for the log_mood tool.
type LogMoodParams struct {
	Score   int      `json:"score"` // 1..10
	Notes   string   `json:"notes,omitempty"`
	Factors []string `json:"factors,omitempty"`
}

// LogHealthParams defines the parameters for the log_health tool.
type LogHealthParams struct {
	SleepHours      float64 `json:"sleep_hours"`
	StressLevel     int     `json:"stress_level"` // 1..10
	WaterIntake     float64 `json:"water_intake"` // glasses
	ExerciseMinutes int     `json:"exercise_minutes,omitempty"`
	ExerciseType    string  `json:"exercise_type,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

// GetSuggestionsParams defines the parameters for the get_suggestions tool.
type GetSuggestionsParams struct {
	// Limit is the max number of suggestions (default: 5, max: 50).
	Limit int `json:"limit,omitempty"`

	// IncludeDismissed also returns dismissed suggestions.
	IncludeDismissed bool `json:"include_dismissed,omitempty"`
}

// GetStatsParams defines the parameters for the get_stats tool.
type GetStatsParams struct {
	// Days is the trailing window (default: the configured window).
	Days int `json:"days,omitempty"`
}

// GetDashboardParams takes no arguments.
type GetDashboardParams struct{}

// === Results ===

// ToolResult is what every handler returns. Error is set instead of Content
// when the call was rejected; the server reports it with IsError.
type ToolResult struct {
	Tool    string `json:"tool"`
	Content string `json:"content"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Failed reports whether the result carries an error.
func (r *ToolResult) Failed() bool { return r.Error != "" }
