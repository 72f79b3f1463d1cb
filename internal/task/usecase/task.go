package usecase

import (
	"context"
	"errors"
	"strings"

	"todo-assistant/internal/model"
	"todo-assistant/internal/task"
	"todo-assistant/internal/task/repository"
)

// Create validates the input, stores the task and mirrors it to Google Calendar when configured.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	t := model.Task{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		DueDate:     input.DueDate,
		EndDate:     input.EndDate,
		AllDay:      input.AllDay,
		Priority:    input.Priority,
		Tags:        input.Tags,
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if err := uc.validate(&t); err != nil {
		return model.Task{}, err
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		EndDate:     t.EndDate,
		AllDay:      t.AllDay,
		Priority:    t.Priority,
		Tags:        t.Tags,
		CreatedAt:   uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: repo.Create failed: %v", err)
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "task.usecase.Create: created task id=%s title=%q", created.ID, created.Title)
	uc.tryCreateCalendarEvent(ctx, created)
	return created, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Task, error) {
	tasks, err := uc.repo.LoadAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Detail: repo.LoadAll failed: %v", err)
		return model.Task{}, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, task.ErrNotFound
}

// Update applies the non-nil fields of input and re-validates the task.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (model.Task, error) {
	t, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return model.Task{}, err
	}

	if input.Title != nil {
		t.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.DueDate != nil {
		t.DueDate = *input.DueDate
	}
	if input.ClearEnd {
		t.EndDate = nil
	} else if input.EndDate != nil {
		end := *input.EndDate
		t.EndDate = &end
	}
	if input.AllDay != nil {
		t.AllDay = *input.AllDay
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.Tags != nil {
		t.Tags = input.Tags
	}
	if input.Completed != nil {
		t.Completed = *input.Completed
	}

	if err := uc.validate(&t); err != nil {
		return model.Task{}, err
	}
	if err := uc.repo.Update(ctx, t); err != nil {
		return model.Task{}, uc.mapRepoError(ctx, "Update", err)
	}
	return uc.Detail(ctx, t.ID)
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return uc.mapRepoError(ctx, "Delete", err)
	}
	uc.l.Infof(ctx, "task.usecase.Delete: deleted task id=%s", id)
	return nil
}

func (uc *implUseCase) ToggleComplete(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.Detail(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	t.Completed = !t.Completed
	if err := uc.repo.Update(ctx, t); err != nil {
		return model.Task{}, uc.mapRepoError(ctx, "ToggleComplete", err)
	}
	return uc.Detail(ctx, id)
}

func (uc *implUseCase) mapRepoError(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrNotFound
	}
	uc.l.Errorf(ctx, "task.usecase.%s: repository failed: %v", op, err)
	return err
}
