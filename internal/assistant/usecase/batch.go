package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/assistant/repository"
	"todo-assistant/internal/model"
	"todo-assistant/internal/task"
)

func (uc *implUseCase) GetBatch(ctx context.Context, id string) (assistant.Batch, error) {
	b, err := uc.repo.Get(ctx, id)
	if err != nil {
		return assistant.Batch{}, uc.mapRepoError(ctx, "GetBatch", err)
	}
	return b, nil
}

func (uc *implUseCase) UpdateItem(ctx context.Context, input assistant.UpdateItemInput) (assistant.Batch, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	b, err := uc.repo.Get(ctx, input.BatchID)
	if err != nil {
		return assistant.Batch{}, uc.mapRepoError(ctx, "UpdateItem", err)
	}
	if input.Index < 0 || input.Index >= len(b.Items) {
		return assistant.Batch{}, assistant.ErrItemIndex
	}

	item := &b.Items[input.Index]
	ed := item.Editable
	if ed == nil {
		// rejected candidates start from the same defaults the normalizer would use
		ed = &model.Task{Priority: model.PriorityMedium, DueDate: uc.now()}
		if item.Normalize.Task != nil {
			*ed = *item.Normalize.Task
		}
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return assistant.Batch{}, assistant.ErrEmptyEditedTitle
		}
		ed.Title = title
	}
	if input.Description != nil {
		ed.Description = *input.Description
	}
	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return assistant.Batch{}, assistant.ErrInvalidPriority
		}
		ed.Priority = *input.Priority
	}
	if input.DueDate != nil {
		ed.DueDate = *input.DueDate
	}
	if input.AllDay != nil {
		ed.AllDay = *input.AllDay
	}
	if input.ClearEnd {
		ed.EndDate = nil
	}
	if input.EndDate != nil {
		end := *input.EndDate
		ed.EndDate = &end
	}
	if input.Tags != nil {
		ed.Tags = append([]string(nil), input.Tags...)
	}
	item.Editable = ed

	if err := uc.repo.Update(ctx, b); err != nil {
		return assistant.Batch{}, uc.mapRepoError(ctx, "UpdateItem", err)
	}
	return b, nil
}

// Commit creates a task for every item. It refuses batches with unresolved errors;
// per-item store failures are reported in the output. The batch is discarded once
// at least one task was created.
func (uc *implUseCase) Commit(ctx context.Context, id string) (assistant.CommitOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	b, err := uc.repo.Get(ctx, id)
	if err != nil {
		return assistant.CommitOutput{}, uc.mapRepoError(ctx, "Commit", err)
	}
	if len(b.Items) == 0 {
		return assistant.CommitOutput{}, assistant.ErrNoItems
	}
	if b.HasErrors() {
		return assistant.CommitOutput{}, assistant.ErrBatchHasErrors
	}

	out := assistant.CommitOutput{Created: []model.Task{}, Failures: []string{}}
	for i, it := range b.Items {
		data := it.Editable
		if data == nil {
			data = it.Normalize.Task
		}
		if data == nil {
			out.Failures = append(out.Failures, fmt.Sprintf("Item %d: invalid data", i+1))
			continue
		}
		if strings.TrimSpace(data.Title) == "" {
			out.Failures = append(out.Failures, fmt.Sprintf("Item %d: missing title", i+1))
			continue
		}

		priority := data.Priority
		if priority == "" {
			priority = model.PriorityMedium
		}
		t, err := uc.tasks.Create(ctx, task.CreateInput{
			Title:       data.Title,
			Description: data.Description,
			DueDate:     data.DueDate,
			EndDate:     data.EndDate,
			AllDay:      data.AllDay,
			Priority:    priority,
			Tags:        data.Tags,
		})
		if err != nil {
			uc.l.Warnf(ctx, "assistant.usecase.Commit.tasks.Create: item %d: %v", i+1, err)
			out.Failures = append(out.Failures, fmt.Sprintf("Item %d: failed to add (%v)", i+1, err))
			continue
		}
		out.Created = append(out.Created, t)
	}
	out.Summary = summarize(len(out.Created), out.Failures)

	if len(out.Created) > 0 {
		if err := uc.repo.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
			uc.l.Warnf(ctx, "assistant.usecase.Commit.repo.Delete: %v", err)
		}
	}
	uc.l.Infof(ctx, "assistant.usecase.Commit: batch %s: %s", id, out.Summary)
	return out, nil
}

func (uc *implUseCase) Cancel(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return uc.mapRepoError(ctx, "Cancel", err)
	}
	return nil
}

func (uc *implUseCase) mapRepoError(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return assistant.ErrBatchNotFound
	}
	uc.l.Errorf(ctx, "assistant.usecase.%s: %v", op, err)
	return err
}

// summarize reports the created count and the first few failures.
func summarize(created int, failures []string) string {
	var parts []string
	if created > 0 {
		noun := "task"
		if created > 1 {
			noun = "tasks"
		}
		parts = append(parts, fmt.Sprintf("Created %d %s successfully.", created, noun))
	}
	if len(failures) > 0 {
		prefix := "Create failed: "
		if created > 0 {
			prefix = "Some items failed: "
		}
		shown := failures
		if len(shown) > maxFailuresInSummary {
			shown = shown[:maxFailuresInSummary]
		}
		msg := prefix + strings.Join(shown, "; ")
		if extra := len(failures) - len(shown); extra > 0 {
			msg += fmt.Sprintf("; +%d more", extra)
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, " ")
}
