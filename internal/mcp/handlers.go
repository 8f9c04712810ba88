package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/josephgoksu/interncare/internal/app"
	"github.com/josephgoksu/interncare/internal/suggest"
	"github.com/josephgoksu/interncare/internal/util"
	"github.com/josephgoksu/interncare/models"
	"github.com/josephgoksu/interncare/types"
)

// HandleAddTask creates a task.
func HandleAddTask(ctx context.Context, tr *app.Tracker, params AddTaskParams) (*ToolResult, error) {
	if strings.TrimSpace(params.Title) == "" {
		return invalid(ToolAddTask, "title is required"), nil
	}
	if len([]rune(params.Title)) > maxTitleLength {
		return invalid(ToolAddTask, fmt.Sprintf("title must be at most %d characters", maxTitleLength)), nil
	}

	in := models.NewTask{
		Title:       params.Title,
		Description: params.Description,
		DueDate:     strings.TrimSpace(params.DueDate),
		Tags:        params.Tags,
	}
	if params.Priority != "" {
		p, err := models.ParsePriority(params.Priority)
		if err != nil {
			return invalid(ToolAddTask, err.Error()), nil
		}
		in.Priority = p
	}
	if params.Start != "" || params.End != "" {
		if params.Start == "" || params.End == "" {
			return invalid(ToolAddTask, "start and end must be given together"), nil
		}
		in.TimeBlock = &models.TimeBlock{Start: params.Start, End: params.End}
	}

	task, err := tr.AddTask(ctx, in)
	if err != nil {
		return errorResult(ToolAddTask, err), nil
	}
	return &ToolResult{Tool: ToolAddTask, Content: FormatTaskAdded(task)}, nil
}

// HandleToggleTask flips a task between pending and done.
func HandleToggleTask(ctx context.Context, tr *app.Tracker, params ToggleTaskParams) (*ToolResult, error) {
	if strings.TrimSpace(params.ID) == "" {
		return invalid(ToolToggleTask, "id is required"), nil
	}
	id, err := tr.ResolveTaskID(params.ID)
	if err != nil {
		return errorResult(ToolToggleTask, err), nil
	}

	task, changed, err := tr.ToggleTask(ctx, id)
	if err != nil {
		return errorResult(ToolToggleTask, err), nil
	}
	if !changed {
		// Deleted between resolve and toggle.
		return errorResult(ToolToggleTask, fmt.Errorf("task %s: %w", id, util.ErrNotFound)), nil
	}
	return &ToolResult{Tool: ToolToggleTask, Content: FormatTaskToggled(task)}, nil
}

// HandleLogMood appends a mood entry and reports the refreshed suggestions.
func HandleLogMood(ctx context.Context, tr *app.Tracker, params LogMoodParams) (*ToolResult, error) {
	if params.Score < 1 || params.Score > 10 {
		return invalid(ToolLogMood, "score must be between 1 and 10"), nil
	}

	entry, err := tr.AddMood(ctx, models.NewMoodEntry{
		Score:   params.Score,
		Notes:   params.Notes,
		Factors: params.Factors,
	})
	if err != nil {
		return errorResult(ToolLogMood, err), nil
	}
	return &ToolResult{
		Tool:    ToolLogMood,
		Content: FormatMoodLogged(entry, suggest.Top(tr.Suggestions(false), 3)),
	}, nil
}

// HandleLogHealth appends a health entry and reports the refreshed suggestions.
func HandleLogHealth(ctx context.Context, tr *app.Tracker, params LogHealthParams) (*ToolResult, error) {
	if params.StressLevel < 1 || params.StressLevel > 10 {
		return invalid(ToolLogHealth, "stress_level must be between 1 and 10"), nil
	}

	in := models.NewHealthData{
		SleepHours:  params.SleepHours,
		StressLevel: params.StressLevel,
		WaterIntake: params.WaterIntake,
		Notes:       params.Notes,
	}
	if params.ExerciseMinutes > 0 {
		in.Exercise = &models.Exercise{Minutes: params.ExerciseMinutes, Type: params.ExerciseType}
	}

	entry, err := tr.AddHealth(ctx, in)
	if err != nil {
		return errorResult(ToolLogHealth, err), nil
	}
	return &ToolResult{
		Tool:    ToolLogHealth,
		Content: FormatHealthLogged(entry, suggest.Top(tr.Suggestions(false), 3)),
	}, nil
}

// HandleGetSuggestions lists suggestions sorted by priority.
func HandleGetSuggestions(_ context.Context, tr *app.Tracker, params GetSuggestionsParams) (*ToolResult, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	if limit > MaxSuggestionLimit {
		limit = MaxSuggestionLimit
	}

	list := suggest.Top(tr.Suggestions(params.IncludeDismissed), limit)
	return &ToolResult{Tool: ToolGetSuggestions, Content: FormatSuggestions(list)}, nil
}

// HandleGetStats summarises the trailing window.
func HandleGetStats(_ context.Context, tr *app.Tracker, params GetStatsParams) (*ToolResult, error) {
	if params.Days < 0 || params.Days > MaxStatsDays {
		return invalid(ToolGetStats, fmt.Sprintf("days must be between 1 and %d", MaxStatsDays)), nil
	}
	return &ToolResult{Tool: ToolGetStats, Content: FormatStats(tr.Stats(params.Days))}, nil
}

// HandleGetDashboard returns the home view.
func HandleGetDashboard(_ context.Context, tr *app.Tracker, _ GetDashboardParams) (*ToolResult, error) {
	return &ToolResult{Tool: ToolGetDashboard, Content: FormatDashboard(tr.Dashboard())}, nil
}

func invalid(tool, msg string) *ToolResult {
	return errorResult(tool, fmt.Errorf("%w: %s", types.ErrValidation, msg))
}

// errorResult maps an error onto a structured MCP error so agents can branch on Code.
func errorResult(tool string, err error) *ToolResult {
	mcpErr := classify(err)
	slog.Debug("mcp tool failed", "tool", tool, "code", mcpErr.Code, "error", err)
	return &ToolResult{Tool: tool, Error: mcpErr.Message, Code: mcpErr.Code}
}

func classify(err error) *types.MCPError {
	switch {
	case errors.Is(err, types.ErrValidation):
		return types.NewMCPError(CodeValidation, err.Error(), nil)
	case errors.Is(err, util.ErrAmbiguousID):
		return types.NewMCPError(CodeAmbiguous, err.Error(), nil)
	case errors.Is(err, util.ErrNotFound):
		return types.NewMCPError(CodeNotFound, err.Error(), nil)
	default:
		return types.NewMCPError(CodeInternal, err.Error(), nil)
	}
}
