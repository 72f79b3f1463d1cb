package usecase

import (
	"sync"
	"time"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/assistant/normalize"
	"todo-assistant/internal/assistant/repository"
	"todo-assistant/internal/task"
	"todo-assistant/pkg/datemath"
	"todo-assistant/pkg/gemini"
	pkgLog "todo-assistant/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	llm        gemini.IGemini
	repo       repository.Repository
	tasks      task.UseCase
	dateMath   *datemath.Parser
	normalizer *normalize.Normalizer
	now        func() time.Time

	// mu serializes read-modify-write of stored batches.
	mu sync.Mutex
}

// New creates the assistant use case. A nil clock means time.Now.
func New(
	l pkgLog.Logger,
	llm gemini.IGemini,
	repo repository.Repository,
	tasks task.UseCase,
	dateMath *datemath.Parser,
	clock func() time.Time,
) assistant.UseCase {
	if clock == nil {
		clock = time.Now
	}
	return &implUseCase{
		l:          l,
		llm:        llm,
		repo:       repo,
		tasks:      tasks,
		dateMath:   dateMath,
		normalizer: normalize.New(dateMath, clock),
		now:        clock,
	}
}
