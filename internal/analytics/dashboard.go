package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/josephgoksu/interncare/models"
)

// DashboardLimit caps the pending tasks and suggestions shown.
const DashboardLimit = 3

// DashboardView is the at-a-glance summary.
type DashboardView struct {
	PendingCount        int                 `json:"pendingCount"`
	TopPending          []models.Task       `json:"topPending"`
	CompletedThisWeek   int                 `json:"completedThisWeek"`
	AverageMoodThisWeek float64             `json:"averageMoodThisWeek"`
	MoodEntries         int                 `json:"moodEntries"`
	LatestMood          *models.MoodEntry   `json:"latestMood,omitempty"`
	LatestHealth        *models.HealthData  `json:"latestHealth,omitempty"`
	TopSuggestions      []models.Suggestion `json:"topSuggestions"`
}

// Dashboard builds the summary over the trailing window of the given size.
func Dashboard(tasks []models.Task, moods []models.MoodEntry, health []models.HealthData, suggestions []models.Suggestion, days int, now time.Time) DashboardView {
	view := DashboardView{
		CompletedThisWeek:   CompletedTasksCount(tasks, days, now),
		AverageMoodThisWeek: AverageMood(moods, days, now),
		MoodEntries:         len(moods),
	}

	var pending []models.Task
	for _, t := range tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	view.PendingCount = len(pending)
	slices.SortStableFunc(pending, comparePending)
	view.TopPending = head(pending, DashboardLimit)

	if len(moods) > 0 {
		latest := slices.MaxFunc(moods, func(a, b models.MoodEntry) int { return a.Date.Compare(b.Date) })
		view.LatestMood = &latest
	}
	if len(health) > 0 {
		latest := slices.MaxFunc(health, func(a, b models.HealthData) int { return a.Date.Compare(b.Date) })
		view.LatestHealth = &latest
	}

	var active []models.Suggestion
	for _, s := range suggestions {
		if !s.Dismissed {
			active = append(active, s)
		}
	}
	slices.SortStableFunc(active, func(a, b models.Suggestion) int {
		return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
	})
	view.TopSuggestions = head(active, DashboardLimit)
	return view
}

// comparePending orders by priority, then dated tasks before undated ones
// (earliest due first), then newest first.
func comparePending(a, b models.Task) int {
	if c := cmp.Compare(a.Priority.Rank(), b.Priority.Rank()); c != 0 {
		return c
	}
	switch {
	case a.DueDate != "" && b.DueDate != "":
		// YYYY-MM-DD sorts lexically.
		return cmp.Compare(a.DueDate, b.DueDate)
	case a.DueDate != "":
		return -1
	case b.DueDate != "":
		return 1
	}
	return b.CreatedAt.Compare(a.CreatedAt)
}

func head[T any](list []T, n int) []T {
	if len(list) > n {
		return list[:n]
	}
	return list
}
