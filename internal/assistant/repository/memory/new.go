package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/assistant/repository"
)

const (
	DefaultSize = 256
	DefaultTTL  = 30 * time.Minute
)

type implRepository struct {
	batches *expirable.LRU[string, assistant.Batch]
	newID   func() string
}

// New creates an in-memory batch store. Batches are evicted after ttl or when more than
// size are held. Zero values use the defaults.
func New(size int, ttl time.Duration) repository.Repository {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		batches: expirable.NewLRU[string, assistant.Batch](size, nil, ttl),
		newID:   uuid.NewString,
	}
}
