package assistant

import (
	"context"

	"todo-assistant/internal/model"
)

// UseCase drives natural-language task creation: parse an instruction into a reviewable
// batch, let the caller adjust items, then commit them to the task store.
type UseCase interface {
	// Parse calls the model with the session's credentials and returns a batch ready for review.
	Parse(ctx context.Context, sess model.Session, input ParseInput) (Batch, error)
	GetBatch(ctx context.Context, id string) (Batch, error)
	// UpdateItem patches one item's editable task. The normalization result is never changed.
	UpdateItem(ctx context.Context, input UpdateItemInput) (Batch, error)
	// Commit creates every item of the batch. Individual failures are collected, not fatal.
	Commit(ctx context.Context, id string) (CommitOutput, error)
	Cancel(ctx context.Context, id string) error
}
