package mcp

// Markdown formatting for MCP tool responses. Output is plain Markdown for
// agents; internal/ui handles colored CLI output.

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/interncare/internal/analytics"
	"github.com/josephgoksu/interncare/internal/util"
	"github.com/josephgoksu/interncare/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const dateLayout = "2006-01-02 15:04"

var titleCase = cases.Title(language.English)

// FormatTaskAdded confirms a new task.
func FormatTaskAdded(t models.Task) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Added task `%s`.\n\n", util.ShortID(t.ID, 0)))
	writeTask(&sb, t)
	return strings.TrimSpace(sb.String())
}

// FormatTaskToggled confirms a completion change.
func FormatTaskToggled(t models.Task) string {
	state := "pending"
	if t.Completed {
		state = "done"
	}
	return fmt.Sprintf("Task `%s` **%s** is now %s.", util.ShortID(t.ID, 0), t.Title, state)
}

func writeTask(sb *strings.Builder, t models.Task) {
	sb.WriteString(fmt.Sprintf("- **%s** (%s)", t.Title, t.Priority))
	if t.DueDate != "" {
		sb.WriteString(" due " + t.DueDate)
	}
	if t.TimeBlock != nil {
		sb.WriteString(fmt.Sprintf(" %s-%s", t.TimeBlock.Start, t.TimeBlock.End))
	}
	if len(t.Tags) > 0 {
		sb.WriteString(" #" + strings.Join(t.Tags, " #"))
	}
	sb.WriteString("\n")
	if t.Description != "" {
		sb.WriteString("  " + t.Description + "\n")
	}
}

// FormatMoodLogged confirms a mood entry and lists the top suggestions.
func FormatMoodLogged(m models.MoodEntry, top []models.Suggestion) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Logged mood %d/10 at %s.", m.Score, m.Date.Format(dateLayout)))
	if len(m.Factors) > 0 {
		sb.WriteString(" Factors: " + strings.Join(m.Factors, ", ") + ".")
	}
	writeTop(&sb, top)
	return sb.String()
}

// FormatHealthLogged confirms a health entry and lists the top suggestions.
func FormatHealthLogged(h models.HealthData, top []models.Suggestion) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Logged health at %s: %.1fh sleep, stress %d/10, %g glasses of water.",
		h.Date.Format(dateLayout), h.SleepHours, h.StressLevel, h.WaterIntake))
	if h.Exercise != nil {
		sb.WriteString(fmt.Sprintf(" Exercise: %d min", h.Exercise.Minutes))
		if h.Exercise.Type != "" {
			sb.WriteString(" " + h.Exercise.Type)
		}
		sb.WriteString(".")
	}
	writeTop(&sb, top)
	return sb.String()
}

func writeTop(sb *strings.Builder, top []models.Suggestion) {
	if len(top) == 0 {
		return
	}
	sb.WriteString("\n\n## Suggestions\n")
	writeSuggestionList(sb, top)
}

// FormatSuggestions renders suggestions as a numbered list.
func FormatSuggestions(list []models.Suggestion) string {
	if len(list) == 0 {
		return "No suggestions right now."
	}
	var sb strings.Builder
	sb.WriteString("## Suggestions\n")
	writeSuggestionList(&sb, list)
	return strings.TrimSpace(sb.String())
}

func writeSuggestionList(sb *strings.Builder, list []models.Suggestion) {
	for i, s := range list {
		sb.WriteString(fmt.Sprintf("%d. **%s** [%s] %s", i+1, titleCase.String(string(s.Type)), s.Priority, s.Message))
		if s.Dismissed {
			sb.WriteString(" _(dismissed)_")
		}
		sb.WriteString("\n")
	}
}

// FormatStats renders the windowed averages.
func FormatStats(s analytics.WeeklyStats) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Last %d days\n", s.Days))
	sb.WriteString(fmt.Sprintf("- Task completion: %.0f%% (%d done)\n", s.TaskCompletion, s.CompletedTasks))
	sb.WriteString(fmt.Sprintf("- Average mood: %s\n", orNone(s.AverageMood, "%.1f/10")))
	sb.WriteString(fmt.Sprintf("- Average sleep: %s\n", orNone(s.AverageSleep, "%.1fh")))
	sb.WriteString(fmt.Sprintf("- Average stress: %s\n", orNone(s.AverageStress, "%.1f/10")))
	sb.WriteString(fmt.Sprintf("- Water per day: %s\n", orNone(s.WaterIntakeAverage, "%.1f glasses")))
	return strings.TrimSpace(sb.String())
}

func orNone(v float64, format string) string {
	if v == 0 {
		return "no data"
	}
	return fmt.Sprintf(format, v)
}

// FormatDashboard renders the home view.
// Structure: Summary -> Up next -> Suggestions
func FormatDashboard(v analytics.DashboardView) string {
	var sb strings.Builder

	sb.WriteString("## Summary\n")
	sb.WriteString(fmt.Sprintf("- Pending tasks: %d\n", v.PendingCount))
	sb.WriteString(fmt.Sprintf("- Completed this week: %d\n", v.CompletedThisWeek))
	sb.WriteString(fmt.Sprintf("- Average mood this week: %s\n", orNone(v.AverageMoodThisWeek, "%.1f/10")))
	sb.WriteString(fmt.Sprintf("- Mood entries: %d\n", v.MoodEntries))
	if v.LatestMood != nil {
		sb.WriteString(fmt.Sprintf("- Latest mood: %d/10 (%s)\n", v.LatestMood.Score, v.LatestMood.Date.Format(dateLayout)))
	}
	if v.LatestHealth != nil {
		sb.WriteString(fmt.Sprintf("- Latest health: %.1fh sleep, stress %d/10\n", v.LatestHealth.SleepHours, v.LatestHealth.StressLevel))
	}

	sb.WriteString("\n## Up next\n")
	if len(v.TopPending) == 0 {
		sb.WriteString("Nothing pending.\n")
	}
	for _, t := range v.TopPending {
		writeTask(&sb, t)
	}

	sb.WriteString("\n## Suggestions\n")
	if len(v.TopSuggestions) == 0 {
		sb.WriteString("No suggestions right now.\n")
	}
	writeSuggestionList(&sb, v.TopSuggestions)
	return strings.TrimSpace(sb.String())
}
