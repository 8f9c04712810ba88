package analytics

import (
	"testing"
	"time"

	"github.com/josephgoksu/interncare/models"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func daysAgo(d float64) time.Time {
	return now.Add(-time.Duration(d * float64(24*time.Hour)))
}

func health(at time.Time, sleep float64, stress int, water float64) models.HealthData {
	return models.HealthData{ID: at.String(), Date: at, SleepHours: sleep, StressLevel: stress, WaterIntake: water}
}

func TestAverages_EmptyWindowIsZero(t *testing.T) {
	assert.Equal(t, 0.0, AverageMood(nil, 7, now))
	assert.Equal(t, 0.0, AverageSleep(nil, 7, now))
	assert.Equal(t, 0.0, AverageStress(nil, 7, now))
	assert.Equal(t, 0.0, AverageWater(nil, 7, now))

	old := []models.HealthData{health(daysAgo(10), 8, 3, 8)}
	assert.Equal(t, 0.0, AverageSleep(old, 7, now))
}

func TestAverages_MeanOverWindow(t *testing.T) {
	records := []models.HealthData{
		health(daysAgo(1), 5, 8, 4),
		health(daysAgo(3), 7, 4, 6),
		health(daysAgo(6.9), 9, 3, 8),
		health(daysAgo(8), 2, 10, 0), // outside
	}

	assert.InDelta(t, 7.0, AverageSleep(records, 7, now), 1e-9)
	assert.InDelta(t, 5.0, AverageStress(records, 7, now), 1e-9)
	assert.InDelta(t, 6.0, AverageWater(records, 7, now), 1e-9)

	// A wider window picks up the older record.
	assert.InDelta(t, 5.75, AverageSleep(records, 10, now), 1e-9)
}

func TestAverages_CutoffIsInclusive(t *testing.T) {
	moods := []models.MoodEntry{
		{ID: "edge", Date: now.AddDate(0, 0, -7), Score: 4},
		{ID: "recent", Date: daysAgo(1), Score: 8},
		{ID: "before", Date: now.AddDate(0, 0, -7).Add(-time.Second), Score: 1},
	}
	assert.InDelta(t, 6.0, AverageMood(moods, 7, now), 1e-9)
}

func TestAverages_DefaultWindow(t *testing.T) {
	moods := []models.MoodEntry{
		{ID: "a", Date: daysAgo(2), Score: 6},
		{ID: "b", Date: daysAgo(9), Score: 2},
	}
	assert.Equal(t, AverageMood(moods, 7, now), AverageMood(moods, 0, now))
	assert.Equal(t, 6.0, AverageMood(moods, -3, now))
}

func TestCompletedTasksCount_GatesOnCreation(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Completed: true, CreatedAt: daysAgo(1)},
		{ID: "2", Completed: true, CreatedAt: daysAgo(6)},
		{ID: "3", Completed: false, CreatedAt: daysAgo(2)},
		// Completed yesterday but created long ago: excluded.
		{ID: "4", Completed: true, CreatedAt: daysAgo(20)},
	}
	assert.Equal(t, 2, CompletedTasksCount(tasks, 7, now))
	assert.Equal(t, 3, CompletedTasksCount(tasks, 30, now))
}

func TestWeekly(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Completed: true, CreatedAt: daysAgo(1)},
		{ID: "2", Completed: false, CreatedAt: daysAgo(2)},
		{ID: "3", Completed: true, CreatedAt: daysAgo(3)},
		{ID: "4", Completed: false, CreatedAt: daysAgo(4)},
	}
	moods := []models.MoodEntry{{ID: "m", Date: daysAgo(1), Score: 7}}
	records := []models.HealthData{health(daysAgo(1), 6, 5, 8)}

	stats := Weekly(tasks, moods, records, 0, now)

	assert.Equal(t, 7, stats.Days)
	assert.InDelta(t, 50.0, stats.TaskCompletion, 1e-9)
	assert.Equal(t, 2, stats.CompletedTasks)
	assert.Equal(t, 7.0, stats.AverageMood)
	assert.Equal(t, 6.0, stats.AverageSleep)
	assert.Equal(t, 5.0, stats.AverageStress)
	assert.Equal(t, 8.0, stats.WaterIntakeAverage)

	empty := Weekly(nil, nil, nil, 7, now)
	assert.Equal(t, 0.0, empty.TaskCompletion)
}
