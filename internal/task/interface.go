package task

import (
	"context"

	"todo-assistant/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (model.Task, error)
	Detail(ctx context.Context, id string) (model.Task, error)
	Update(ctx context.Context, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, id string) error
	ToggleComplete(ctx context.Context, id string) (model.Task, error)

	// List filters, searches and sorts the stored tasks.
	List(ctx context.Context, input ListInput) ([]model.Task, error)

	// Board groups incomplete tasks by whether their due day is today, later, or past.
	Board(ctx context.Context) (BoardOutput, error)

	// Calendar returns the tasks occurring on one local day and per-day counts for its month.
	Calendar(ctx context.Context, input CalendarInput) (CalendarOutput, error)

	// Dashboard derives statistics over the whole list.
	Dashboard(ctx context.Context, input DashboardInput) (DashboardOutput, error)
}
