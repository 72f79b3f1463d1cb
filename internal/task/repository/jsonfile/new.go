package jsonfile

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"todo-assistant/internal/task/repository"
	pkgLog "todo-assistant/pkg/log"
)

type implRepository struct {
	l     pkgLog.Logger
	path  string
	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

// New creates a repository that keeps the whole task list in one JSON document at path.
func New(l pkgLog.Logger, path string) repository.Repository {
	return &implRepository{
		l:     l,
		path:  path,
		now:   time.Now,
		newID: uuid.NewString,
	}
}
