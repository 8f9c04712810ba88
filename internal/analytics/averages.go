// Package analytics computes rolling-window aggregates over the tracked
// records. Every function is pure: callers pass the collections and "now".
package analytics

import (
	"time"

	"github.com/josephgoksu/interncare/models"
)

// DefaultWindowDays is the trailing window used when days <= 0.
const DefaultWindowDays = 7

// Cutoff returns the start of the trailing window. Subtraction is by
// calendar days, so a window spanning a DST change keeps wall-clock time.
func Cutoff(now time.Time, days int) time.Time {
	if days <= 0 {
		days = DefaultWindowDays
	}
	return now.AddDate(0, 0, -days)
}

// InWindow reports whether t falls on or after cutoff.
func InWindow(t, cutoff time.Time) bool {
	return !t.Before(cutoff)
}

// mean returns the arithmetic mean of value over the items kept by keep,
// or 0 when nothing is kept. 0 therefore also means "no data".
func mean[T any](items []T, keep func(T) bool, value func(T) float64) float64 {
	var sum float64
	var n int
	for _, it := range items {
		if !keep(it) {
			continue
		}
		sum += value(it)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// AverageMood is the mean mood score over the trailing window.
func AverageMood(moods []models.MoodEntry, days int, now time.Time) float64 {
	cutoff := Cutoff(now, days)
	return mean(moods,
		func(m models.MoodEntry) bool { return InWindow(m.Date, cutoff) },
		func(m models.MoodEntry) float64 { return float64(m.Score) })
}

// AverageSleep is the mean hours slept over the trailing window.
func AverageSleep(health []models.HealthData, days int, now time.Time) float64 {
	return averageHealth(health, days, now, func(h models.HealthData) float64 { return h.SleepHours })
}

// AverageStress is the mean stress level over the trailing window.
func AverageStress(health []models.HealthData, days int, now time.Time) float64 {
	return averageHealth(health, days, now, func(h models.HealthData) float64 { return float64(h.StressLevel) })
}

// AverageWater is the mean water intake over the trailing window.
func AverageWater(health []models.HealthData, days int, now time.Time) float64 {
	return averageHealth(health, days, now, func(h models.HealthData) float64 { return h.WaterIntake })
}

func averageHealth(health []models.HealthData, days int, now time.Time, field func(models.HealthData) float64) float64 {
	cutoff := Cutoff(now, days)
	return mean(health,
		func(h models.HealthData) bool { return InWindow(h.Date, cutoff) },
		field)
}

// CompletedTasksCount counts completed tasks that were created inside the
// window. Completion time is not tracked, so creation time gates inclusion.
func CompletedTasksCount(tasks []models.Task, days int, now time.Time) int {
	cutoff := Cutoff(now, days)
	n := 0
	for _, t := range tasks {
		if t.Completed && InWindow(t.CreatedAt, cutoff) {
			n++
		}
	}
	return n
}

// WeeklyStats summarises one trailing window.
type WeeklyStats struct {
	Days               int     `json:"days"`
	TaskCompletion     float64 `json:"taskCompletion"` // percentage, 0..100
	CompletedTasks     int     `json:"completedTasks"`
	AverageMood        float64 `json:"averageMood"`
	AverageSleep       float64 `json:"averageSleep"`
	AverageStress      float64 `json:"averageStress"`
	WaterIntakeAverage float64 `json:"waterIntakeAverage"`
}

// Weekly computes WeeklyStats for the trailing window of the given size.
func Weekly(tasks []models.Task, moods []models.MoodEntry, health []models.HealthData, days int, now time.Time) WeeklyStats {
	if days <= 0 {
		days = DefaultWindowDays
	}
	cutoff := Cutoff(now, days)

	var total, done int
	for _, t := range tasks {
		if !InWindow(t.CreatedAt, cutoff) {
			continue
		}
		total++
		if t.Completed {
			done++
		}
	}
	var completion float64
	if total > 0 {
		completion = float64(done) / float64(total) * 100
	}

	return WeeklyStats{
		Days:               days,
		TaskCompletion:     completion,
		CompletedTasks:     CompletedTasksCount(tasks, days, now),
		AverageMood:        AverageMood(moods, days, now),
		AverageSleep:       AverageSleep(health, days, now),
		AverageStress:      AverageStress(health, days, now),
		WaterIntakeAverage: AverageWater(health, days, now),
	}
}
