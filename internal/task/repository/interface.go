package repository

import (
	"context"

	"todo-assistant/internal/model"
)

// Repository persists the task list. Every mutation is atomic from the caller's view.
type Repository interface {
	LoadAll(ctx context.Context) ([]model.Task, error)
	SaveAll(ctx context.Context, tasks []model.Task) error
	Create(ctx context.Context, opt CreateOptions) (model.Task, error)
	Update(ctx context.Context, t model.Task) error
	Delete(ctx context.Context, id string) error
}
