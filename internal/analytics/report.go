package analytics

import (
	"fmt"
	"time"

	"github.com/josephgoksu/interncare/models"
)

// Range selects the span of a Report.
type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
)

// ParseRange validates a range name.
func ParseRange(s string) (Range, error) {
	switch r := Range(s); r {
	case RangeWeek, RangeMonth:
		return r, nil
	default:
		return "", fmt.Errorf("invalid range %q (use week or month)", s)
	}
}

// Days is the number of calendar days the range covers, today included.
func (r Range) Days() int {
	if r == RangeMonth {
		return 30
	}
	return 7
}

// PriorityDistribution counts tasks per priority.
type PriorityDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// DayPoint is one calendar day of a report. Nil averages mean no data.
type DayPoint struct {
	Date      time.Time `json:"date"`
	Label     string    `json:"label"`
	Completed int       `json:"completed"`
	Mood      *float64  `json:"mood,omitempty"`
	Sleep     *float64  `json:"sleep,omitempty"`
	Stress    *float64  `json:"stress,omitempty"`
}

// Report is the per-day breakdown behind the report command.
type Report struct {
	Range          Range                `json:"range"`
	Start          time.Time            `json:"start"`
	TotalTasks     int                  `json:"totalTasks"`
	CompletedTasks int                  `json:"completedTasks"`
	CompletionRate float64              `json:"completionRate"` // percentage
	Priorities     PriorityDistribution `json:"priorities"`
	Days           []DayPoint           `json:"days"`
}

// BuildReport groups records strictly after the range start by calendar day.
func BuildReport(r Range, tasks []models.Task, moods []models.MoodEntry, health []models.HealthData, now time.Time) Report {
	days := r.Days()
	start := now.AddDate(0, 0, -(days - 1))
	rep := Report{Range: r, Start: start}

	var recentTasks []models.Task
	for _, t := range tasks {
		if t.CreatedAt.After(start) {
			recentTasks = append(recentTasks, t)
		}
	}
	var recentMoods []models.MoodEntry
	for _, m := range moods {
		if m.Date.After(start) {
			recentMoods = append(recentMoods, m)
		}
	}
	var recentHealth []models.HealthData
	for _, h := range health {
		if h.Date.After(start) {
			recentHealth = append(recentHealth, h)
		}
	}

	rep.TotalTasks = len(recentTasks)
	for _, t := range recentTasks {
		if t.Completed {
			rep.CompletedTasks++
		}
		switch t.Priority {
		case models.PriorityHigh:
			rep.Priorities.High++
		case models.PriorityMedium:
			rep.Priorities.Medium++
		case models.PriorityLow:
			rep.Priorities.Low++
		}
	}
	if rep.TotalTasks > 0 {
		rep.CompletionRate = float64(rep.CompletedTasks) / float64(rep.TotalTasks) * 100
	}

	loc := now.Location()
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		point := DayPoint{Date: dayStart(day), Label: day.Format("Jan 2")}

		for _, t := range recentTasks {
			if t.Completed && sameDay(t.CreatedAt.In(loc), day) {
				point.Completed++
			}
		}
		point.Mood = dayMean(recentMoods, day, loc,
			func(m models.MoodEntry) time.Time { return m.Date },
			func(m models.MoodEntry) float64 { return float64(m.Score) })
		point.Sleep = dayMean(recentHealth, day, loc,
			func(h models.HealthData) time.Time { return h.Date },
			func(h models.HealthData) float64 { return h.SleepHours })
		point.Stress = dayMean(recentHealth, day, loc,
			func(h models.HealthData) time.Time { return h.Date },
			func(h models.HealthData) float64 { return float64(h.StressLevel) })

		rep.Days = append(rep.Days, point)
	}
	return rep
}

func dayMean[T any](items []T, day time.Time, loc *time.Location, when func(T) time.Time, value func(T) float64) *float64 {
	var sum float64
	var n int
	for _, it := range items {
		if sameDay(when(it).In(loc), day) {
			sum += value(it)
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
