package usecase

import (
	"context"
	"sort"

	"todo-assistant/internal/model"
	"todo-assistant/internal/task"
)

func (uc *implUseCase) Dashboard(ctx context.Context, input task.DashboardInput) (task.DashboardOutput, error) {
	tasks, err := uc.repo.LoadAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Dashboard: repo.LoadAll failed: %v", err)
		return task.DashboardOutput{}, err
	}

	heatmapDays := input.HeatmapDays
	if heatmapDays <= 0 {
		heatmapDays = task.DefaultHeatmapDays
	}
	trendDays := input.TrendDays
	if trendDays <= 0 {
		trendDays = task.DefaultTrendDays
	}

	now := uc.now()
	today := uc.dateMath.Today(now)

	out := task.DashboardOutput{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			out.Completed++
			continue
		}
		if t.DueDate.Before(now) {
			out.Overdue++
		}
	}
	out.Active = out.Total - out.Completed

	out.Heatmap = make([]task.HeatmapCell, 0, heatmapDays)
	for i := heatmapDays - 1; i >= 0; i-- {
		day := today.AddDays(-i)
		cell := task.HeatmapCell{Date: day.String()}
		for _, t := range uc.tasksOn(tasks, day) {
			cell.Total++
			if t.Completed {
				cell.Complete++
			}
		}
		if cell.Total > 0 && cell.Total == cell.Complete {
			out.PerfectDays++
		}
		out.Heatmap = append(out.Heatmap, cell)
	}

	out.Trend = make([]task.TrendPoint, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := today.AddDays(-i)
		point := task.TrendPoint{Date: day.String()}
		for _, t := range tasks {
			if uc.dateMath.DateOf(t.CreatedAt) == day {
				point.Created++
			}
			if t.Completed && t.UpdatedAt != nil && uc.dateMath.DateOf(*t.UpdatedAt) == day {
				point.Completed++
			}
		}
		out.Trend = append(out.Trend, point)
	}

	out.Recent = recentActivity(tasks)
	return out, nil
}

// recentActivity lists creation and last-change events, newest first.
func recentActivity(tasks []model.Task) []task.Activity {
	activities := make([]task.Activity, 0, len(tasks)*2)
	for _, t := range tasks {
		if !t.CreatedAt.IsZero() {
			activities = append(activities, task.Activity{TaskID: t.ID, Title: t.Title, Kind: task.ActivityCreated, At: t.CreatedAt})
		}
		if t.UpdatedAt != nil && t.UpdatedAt.After(t.CreatedAt) {
			kind := task.ActivityUpdated
			if t.Completed {
				kind = task.ActivityCompleted
			}
			activities = append(activities, task.Activity{TaskID: t.ID, Title: t.Title, Kind: kind, At: *t.UpdatedAt})
		}
	}
	sort.SliceStable(activities, func(i, j int) bool { return activities[i].At.After(activities[j].At) })
	if len(activities) > task.RecentActivityMax {
		activities = activities[:task.RecentActivityMax]
	}
	return activities
}
