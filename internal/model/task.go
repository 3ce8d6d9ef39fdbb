package model

import (
	"math"
	"strings"
	"time"
)

// Priority is the urgency bucket of a sales task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Weight orders priorities: High > Medium > Low.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// ParsePriority matches s case-insensitively against the known priorities.
func ParsePriority(s string) (Priority, bool) {
	switch fold(s) {
	case "low":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	}
	return "", false
}

// Status is the workflow state of a sales task.
type Status string

const (
	StatusTodo       Status = "Todo"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// ParseStatus accepts "Todo", "In Progress", "InProgress", "in_progress", "done", etc.
func ParseStatus(s string) (Status, bool) {
	switch fold(s) {
	case "todo":
		return StatusTodo, true
	case "inprogress":
		return StatusInProgress, true
	case "done":
		return StatusDone, true
	}
	return "", false
}

// fold lowercases s and drops spaces, dashes and underscores.
func fold(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if r == ' ' || r == '-' || r == '_' {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

const (
	DefaultTitle     = "Untitled Task"
	DefaultTimeTaken = 1.0
)

// Task is a single sales task. Tasks are owned by the task store.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Revenue     float64    `json:"revenue"`
	TimeTaken   float64    `json:"timeTaken"` // hours, always > 0
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Clone returns a deep copy of t.
func (t Task) Clone() Task {
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		t.CompletedAt = &at
	}
	return t
}

// CoerceTitle falls back to DefaultTitle for blank titles.
func CoerceTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return DefaultTitle
	}
	return title
}

// CoerceRevenue maps NaN and ±Inf to 0.
func CoerceRevenue(revenue float64) float64 {
	if math.IsNaN(revenue) || math.IsInf(revenue, 0) {
		return 0
	}
	return revenue
}

// CoerceTimeTaken maps any non-positive or non-finite value to DefaultTimeTaken.
func CoerceTimeTaken(hours float64) float64 {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return DefaultTimeTaken
	}
	return hours
}

// CoercePriority defaults unknown priorities to Medium.
func CoercePriority(p Priority) Priority {
	if parsed, ok := ParsePriority(string(p)); ok {
		return parsed
	}
	return PriorityMedium
}

// CoerceStatus defaults unknown statuses to Todo.
func CoerceStatus(s Status) Status {
	if parsed, ok := ParseStatus(string(s)); ok {
		return parsed
	}
	return StatusTodo
}
