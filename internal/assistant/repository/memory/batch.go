package memory

import (
	"context"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/assistant/repository"
	"todo-assistant/internal/model"
)

func (r *implRepository) Create(ctx context.Context, b assistant.Batch) (assistant.Batch, error) {
	b.ID = r.newID()
	r.batches.Add(b.ID, clone(b))
	return clone(b), nil
}

func (r *implRepository) Get(ctx context.Context, id string) (assistant.Batch, error) {
	b, ok := r.batches.Get(id)
	if !ok {
		return assistant.Batch{}, repository.ErrNotFound
	}
	return clone(b), nil
}

func (r *implRepository) Update(ctx context.Context, b assistant.Batch) error {
	if _, ok := r.batches.Peek(b.ID); !ok {
		return repository.ErrNotFound
	}
	r.batches.Add(b.ID, clone(b))
	return nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if !r.batches.Remove(id) {
		return repository.ErrNotFound
	}
	return nil
}

// clone copies the parts of a batch that callers may mutate, so stored state never
// aliases a caller's slices.
func clone(b assistant.Batch) assistant.Batch {
	items := make([]assistant.Item, len(b.Items))
	for i, it := range b.Items {
		items[i] = it
		if it.Editable != nil {
			items[i].Editable = cloneTask(*it.Editable)
		}
		items[i].Normalize.Warnings = append([]string(nil), it.Normalize.Warnings...)
	}
	b.Items = items
	return b
}

func cloneTask(t model.Task) *model.Task {
	t.Tags = append([]string(nil), t.Tags...)
	if t.EndDate != nil {
		end := *t.EndDate
		t.EndDate = &end
	}
	return &t
}
