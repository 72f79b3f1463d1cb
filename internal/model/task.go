package model

import "time"

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is one of the accepted priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// MaxTitleLength caps task titles.
const MaxTitleLength = 80

// Task is a persisted to-do item.
// For all-day tasks EndDate is an exclusive boundary: local midnight after the last included day.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     time.Time  `json:"dueDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	AllDay      bool       `json:"allDay"`
	Priority    Priority   `json:"priority"`
	Tags        []string   `json:"tags,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Candidate is one untrusted task-shaped object produced by the model.
// Every field is optional; date fields are free-form text.
type Candidate struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Priority    string   `json:"priority"`
	AllDay      bool     `json:"allDay"`
	DueDate     *string  `json:"dueDate"`
	EndDate     *string  `json:"endDate"`
	Tags        []string `json:"tags"`
}
