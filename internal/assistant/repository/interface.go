package repository

import (
	"context"

	"todo-assistant/internal/assistant"
)

// Repository holds batches between parse and commit. Batches may expire.
type Repository interface {
	// Create stores b under a fresh id and returns it.
	Create(ctx context.Context, b assistant.Batch) (assistant.Batch, error)
	Get(ctx context.Context, id string) (assistant.Batch, error)
	// Update replaces a stored batch wholesale.
	Update(ctx context.Context, b assistant.Batch) error
	Delete(ctx context.Context, id string) error
}
