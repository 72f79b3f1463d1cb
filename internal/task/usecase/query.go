package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"todo-assistant/internal/model"
	"todo-assistant/internal/task"
	"todo-assistant/pkg/datemath"
)

func (uc *implUseCase) List(ctx context.Context, input task.ListInput) ([]model.Task, error) {
	priority := strings.ToLower(strings.TrimSpace(input.Priority))
	if priority != "" && priority != task.PriorityAll && !model.Priority(priority).IsValid() {
		return nil, task.ErrInvalidFilter
	}
	if input.Sort != "" && input.Sort != task.SortDueAsc && input.Sort != task.SortDueDesc {
		return nil, task.ErrInvalidFilter
	}

	tasks, err := uc.repo.LoadAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: repo.LoadAll failed: %v", err)
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(input.Search))
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if priority != "" && priority != task.PriorityAll && string(t.Priority) != priority {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Title), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		out = append(out, t)
	}

	desc := input.Sort == task.SortDueDesc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return out[i].DueDate.After(out[j].DueDate)
		}
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out, nil
}

// Board compares due days at local-midnight granularity.
func (uc *implUseCase) Board(ctx context.Context) (task.BoardOutput, error) {
	tasks, err := uc.repo.LoadAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Board: repo.LoadAll failed: %v", err)
		return task.BoardOutput{}, err
	}

	today := uc.dateMath.Today(uc.now())
	out := task.BoardOutput{
		Today:     []model.Task{},
		Future:    []model.Task{},
		Past:      []model.Task{},
		Completed: []model.Task{},
	}
	for _, t := range tasks {
		if t.Completed {
			out.Completed = append(out.Completed, t)
			continue
		}
		switch diff := datemath.DaysBetween(today, uc.dateMath.DateOf(t.DueDate)); {
		case diff == 0:
			out.Today = append(out.Today, t)
		case diff > 0:
			out.Future = append(out.Future, t)
		default:
			out.Past = append(out.Past, t)
		}
	}

	for _, col := range [][]model.Task{out.Today, out.Future, out.Past} {
		sort.SliceStable(col, func(i, j int) bool { return col[i].DueDate.Before(col[j].DueDate) })
	}
	return out, nil
}

func (uc *implUseCase) Calendar(ctx context.Context, input task.CalendarInput) (task.CalendarOutput, error) {
	tasks, err := uc.repo.LoadAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Calendar: repo.LoadAll failed: %v", err)
		return task.CalendarOutput{}, err
	}

	day := input.Day
	if day.IsZero() {
		day = uc.dateMath.Today(uc.now())
	}

	out := task.CalendarOutput{
		Date:  day.String(),
		Tasks: uc.tasksOn(tasks, day),
	}

	first, _ := datemath.NewDate(day.Year, day.Month, 1)
	for d := first; d.Month == day.Month; d = d.AddDays(1) {
		out.Counts = append(out.Counts, task.DayCount{Date: d.String(), Count: len(uc.tasksOn(tasks, d))})
	}
	return out, nil
}

func (uc *implUseCase) tasksOn(tasks []model.Task, day datemath.CalendarDate) []model.Task {
	start, end := uc.dayBounds(day)
	out := []model.Task{}
	for _, t := range tasks {
		if occursOn(t, start, end) {
			out = append(out, t)
		}
	}
	return out
}

func (uc *implUseCase) dayBounds(day datemath.CalendarDate) (time.Time, time.Time) {
	return uc.dateMath.ToInstant(day, 0), uc.dateMath.ToInstant(day.AddDays(1), 0)
}
