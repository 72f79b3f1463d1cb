package sqlite

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todo-assistant/internal/task/repository"
	pkgLog "todo-assistant/pkg/log"
)

type implRepository struct {
	l     pkgLog.Logger
	db    *gorm.DB
	now   func() time.Time
	newID func() string
}

// New creates a gorm-backed task repository.
func New(l pkgLog.Logger, db *gorm.DB) repository.Repository {
	return &implRepository{
		l:     l,
		db:    db,
		now:   time.Now,
		newID: uuid.NewString,
	}
}
