package ui

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/interncare/internal/analytics"
	"github.com/josephgoksu/interncare/internal/util"
	"github.com/josephgoksu/interncare/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const dateLayout = "Jan 2 15:04"

var titleCase = cases.Title(language.English)

// Title title-cases a word for display ("productivity" -> "Productivity").
func Title(s string) string { return titleCase.String(s) }

// RenderTasks renders tasks as a table.
func RenderTasks(tasks []models.Task) string {
	if len(tasks) == 0 {
		return StyleSubtle.Render("No tasks yet. Add one with `interncare task add <title>`.") + "\n"
	}
	t := &Table{Headers: []string{"ID", "", "Title", "Priority", "Due", "Time", "Tags"}}
	for _, task := range tasks {
		check := "○"
		if task.Completed {
			check = "✓"
		}
		block := ""
		if task.TimeBlock != nil {
			block = task.TimeBlock.Start + "-" + task.TimeBlock.End
		}
		t.Rows = append(t.Rows, []string{
			util.ShortID(task.ID, 0),
			check,
			task.Title,
			string(task.Priority),
			task.DueDate,
			block,
			strings.Join(task.Tags, ","),
		})
	}
	t.FitWidth(TerminalWidth())
	return t.Render()
}

// RenderMoods renders mood entries, newest last.
func RenderMoods(moods []models.MoodEntry) string {
	if len(moods) == 0 {
		return StyleSubtle.Render("No mood entries yet.") + "\n"
	}
	t := &Table{Headers: []string{"ID", "Date", "Score", "Factors", "Notes"}}
	for _, m := range moods {
		t.Rows = append(t.Rows, []string{
			util.ShortID(m.ID, 0),
			m.Date.Local().Format(dateLayout),
			fmt.Sprintf("%d/10 %s", m.Score, MoodBar(m.Score)),
			strings.Join(m.Factors, ","),
			m.Notes,
		})
	}
	t.FitWidth(TerminalWidth())
	return t.Render()
}

// RenderHealth renders health entries, newest last.
func RenderHealth(health []models.HealthData) string {
	if len(health) == 0 {
		return StyleSubtle.Render("No health entries yet.") + "\n"
	}
	t := &Table{Headers: []string{"ID", "Date", "Sleep", "Stress", "Water", "Exercise", "Meals"}}
	for _, h := range health {
		exercise := ""
		if h.Exercise != nil {
			exercise = strings.TrimSpace(fmt.Sprintf("%dm %s", h.Exercise.Minutes, h.Exercise.Type))
		}
		t.Rows = append(t.Rows, []string{
			util.ShortID(h.ID, 0),
			h.Date.Local().Format(dateLayout),
			fmt.Sprintf("%.1fh", h.SleepHours),
			fmt.Sprintf("%d/10", h.StressLevel),
			fmt.Sprintf("%g", h.WaterIntake),
			exercise,
			mealsSummary(h.Meals),
		})
	}
	t.FitWidth(TerminalWidth())
	return t.Render()
}

func mealsSummary(m *models.Meals) string {
	if m == nil {
		return ""
	}
	var parts []string
	for _, meal := range []struct {
		name string
		had  bool
	}{{"B", m.Breakfast}, {"L", m.Lunch}, {"D", m.Dinner}} {
		if meal.had {
			parts = append(parts, meal.name)
		}
	}
	if m.Snacks > 0 {
		parts = append(parts, fmt.Sprintf("+%d snacks", m.Snacks))
	}
	return strings.Join(parts, " ")
}

// MoodBar draws a ten-cell bar for a 1..10 score.
func MoodBar(score int) string {
	score = max(0, min(score, 10))
	return strings.Repeat("█", score) + strings.Repeat("░", 10-score)
}

// RenderSuggestions renders suggestions as a bulleted list.
func RenderSuggestions(list []models.Suggestion) string {
	if len(list) == 0 {
		return StyleSubtle.Render("No suggestions right now. Log some data to get personalised tips.") + "\n"
	}
	var sb strings.Builder
	for _, s := range list {
		badge := PriorityStyle(s.Priority).Render(fmt.Sprintf("[%s]", s.Priority))
		line := fmt.Sprintf("%s %s %s  %s", StyleSubtle.Render(util.ShortID(s.ID, 0)), badge, StylePrimary.Render(Title(string(s.Type))), s.Message)
		if s.Dismissed {
			line = StyleSubtle.Render(line + " (dismissed)")
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

// RenderStats renders a WeeklyStats summary.
func RenderStats(s analytics.WeeklyStats) string {
	var sb strings.Builder
	sb.WriteString(StyleSectionTitle.Render(fmt.Sprintf("Last %d days", s.Days)) + "\n\n")
	row := func(label, value string) {
		sb.WriteString(fmt.Sprintf("  %-18s %s\n", label, StyleText.Render(value)))
	}
	row("Task completion", fmt.Sprintf("%.0f%% (%d done)", s.TaskCompletion, s.CompletedTasks))
	row("Average mood", orDash(s.AverageMood, "%.1f/10"))
	row("Average sleep", orDash(s.AverageSleep, "%.1fh"))
	row("Average stress", orDash(s.AverageStress, "%.1f/10"))
	row("Water per day", orDash(s.WaterIntakeAverage, "%.1f glasses"))
	return sb.String()
}

func orDash(v float64, format string) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf(format, v)
}

func ptr(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

// RenderReport renders the per-day report and priority distribution.
func RenderReport(r analytics.Report) string {
	var sb strings.Builder
	sb.WriteString(StyleSectionTitle.Render(Title(string(r.Range))+"ly report") + "\n\n")
	sb.WriteString(fmt.Sprintf("  Tasks: %d created, %d completed (%.0f%%)\n", r.TotalTasks, r.CompletedTasks, r.CompletionRate))
	sb.WriteString(fmt.Sprintf("  Priorities: %s %d  %s %d  %s %d\n\n",
		PriorityStyle(models.PriorityHigh).Render("high"), r.Priorities.High,
		PriorityStyle(models.PriorityMedium).Render("medium"), r.Priorities.Medium,
		PriorityStyle(models.PriorityLow).Render("low"), r.Priorities.Low))

	t := &Table{Headers: []string{"Day", "Done", "Mood", "Sleep", "Stress"}}
	for _, d := range r.Days {
		t.Rows = append(t.Rows, []string{
			d.Label,
			fmt.Sprintf("%d", d.Completed),
			ptr(d.Mood, "%.1f"),
			ptr(d.Sleep, "%.1fh"),
			ptr(d.Stress, "%.1f"),
		})
	}
	sb.WriteString(t.Render())
	return sb.String()
}

// RenderDashboard renders the home view.
func RenderDashboard(v analytics.DashboardView) string {
	var sb strings.Builder
	sb.WriteString(StyleHeader.Render("InternCare") + "\n\n")

	summary := fmt.Sprintf("Pending tasks: %d\nCompleted this week: %d\nAverage mood: %s\nMood entries: %d",
		v.PendingCount, v.CompletedThisWeek, orDash(v.AverageMoodThisWeek, "%.1f/10"), v.MoodEntries)
	if v.LatestMood != nil {
		summary += fmt.Sprintf("\nLatest mood: %d/10 (%s)", v.LatestMood.Score, v.LatestMood.Date.Local().Format(dateLayout))
	}
	if v.LatestHealth != nil {
		summary += fmt.Sprintf("\nLatest health: %.1fh sleep, stress %d/10, %g glasses",
			v.LatestHealth.SleepHours, v.LatestHealth.StressLevel, v.LatestHealth.WaterIntake)
	}
	sb.WriteString(StyleBox.Render(summary) + "\n\n")

	sb.WriteString(StyleSectionTitle.Render("Up next") + "\n")
	if len(v.TopPending) == 0 {
		sb.WriteString(StyleSubtle.Render("  Nothing pending.") + "\n")
	}
	for _, t := range v.TopPending {
		due := ""
		if t.DueDate != "" {
			due = StyleSubtle.Render(" due " + t.DueDate)
		}
		sb.WriteString(fmt.Sprintf("  %s %s%s\n", PriorityStyle(t.Priority).Render("●"), t.Title, due))
	}

	sb.WriteString("\n" + StyleSectionTitle.Render("Suggestions") + "\n")
	sb.WriteString(RenderSuggestions(v.TopSuggestions))
	return sb.String()
}
