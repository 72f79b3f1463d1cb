package repository

import (
	"time"

	"todo-assistant/internal/model"
)

// CreateOptions holds the fields of a task that does not exist yet.
// The repository assigns ID and UpdatedAt; CreatedAt is filled when zero.
type CreateOptions struct {
	Title       string
	Description string
	DueDate     time.Time
	EndDate     *time.Time
	AllDay      bool
	Priority    model.Priority
	Tags        []string
	Completed   bool
	CreatedAt   time.Time
}

// Build turns the options into a task stamped at now.
func (o CreateOptions) Build(id string, now time.Time) model.Task {
	createdAt := o.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := now
	return model.Task{
		ID:          id,
		Title:       o.Title,
		Description: o.Description,
		DueDate:     o.DueDate,
		EndDate:     o.EndDate,
		AllDay:      o.AllDay,
		Priority:    o.Priority,
		Tags:        o.Tags,
		Completed:   o.Completed,
		CreatedAt:   createdAt,
		UpdatedAt:   &updatedAt,
	}
}
