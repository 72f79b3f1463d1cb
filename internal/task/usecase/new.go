package usecase

import (
	"time"

	"todo-assistant/internal/task"
	"todo-assistant/internal/task/repository"
	"todo-assistant/pkg/datemath"
	"todo-assistant/pkg/gcalendar"
	pkgLog "todo-assistant/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	calendar   gcalendar.ICalendar
	calendarID string
	dateMath   *datemath.Parser
	now        func() time.Time
}

// New creates a new task UseCase instance. calendar may be nil to disable mirroring;
// a nil clock means time.Now.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar gcalendar.ICalendar,
	calendarID string,
	dateMath *datemath.Parser,
	clock func() time.Time,
) task.UseCase {
	if clock == nil {
		clock = time.Now
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		dateMath:   dateMath,
		now:        clock,
	}
}
