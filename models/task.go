package models

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Priority is shared by tasks and suggestions.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank orders priorities for sorting: high first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// ParsePriority accepts a case-insensitive priority name.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("invalid priority %q (use low, medium or high)", s)
	}
}

// TimeBlock is a scheduled slot within a day, as HH:MM strings.
type TimeBlock struct {
	Start string `json:"start" validate:"required,hhmm"`
	End   string `json:"end" validate:"required,hhmm"`
}

// Task represents a unit of work.
type Task struct {
	ID          string     `json:"id" validate:"required"`
	Title       string     `json:"title" validate:"notblank,max=200"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority" validate:"required,oneof=low medium high"`
	DueDate     string     `json:"dueDate,omitempty" validate:"omitempty,isodate"` // YYYY-MM-DD
	Completed   bool       `json:"completed"`
	TimeBlock   *TimeBlock `json:"timeBlock,omitempty" validate:"omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" validate:"required"`
}

// NewTask carries the caller-supplied fields of a task. The store assigns
// ID, CreatedAt and Completed=false.
type NewTask struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     string
	TimeBlock   *TimeBlock
	Tags        []string
}

// Build creates the full record for the given id and creation time.
func (n NewTask) Build(id string, createdAt time.Time) Task {
	priority := n.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	return Task{
		ID:          id,
		Title:       n.Title,
		Description: n.Description,
		Priority:    priority,
		DueDate:     n.DueDate,
		Completed:   false,
		TimeBlock:   n.TimeBlock.clone(),
		Tags:        slices.Clone(n.Tags),
		CreatedAt:   createdAt,
	}
}

func (tb *TimeBlock) clone() *TimeBlock {
	if tb == nil {
		return nil
	}
	c := *tb
	return &c
}

// Clone returns a copy of t that shares no memory with it.
func (t Task) Clone() Task {
	t.TimeBlock = t.TimeBlock.clone()
	t.Tags = slices.Clone(t.Tags)
	return t
}

// TaskPatch is a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	DueDate     *string
	Completed   *bool
	TimeBlock   *TimeBlock
	Tags        []string // nil leaves tags alone, an empty slice clears them
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.DueDate == nil && p.Completed == nil && p.TimeBlock == nil && p.Tags == nil
}

// Apply returns a copy of t with the patch merged in. ID and CreatedAt
// never change.
func (p TaskPatch) Apply(t Task) Task {
	t = t.Clone()
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.TimeBlock != nil {
		t.TimeBlock = p.TimeBlock.clone()
	}
	if p.Tags != nil {
		t.Tags = append([]string{}, p.Tags...)
	}
	return t
}
