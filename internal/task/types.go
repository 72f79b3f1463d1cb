package task

import (
	"time"

	"todo-assistant/internal/model"
	"todo-assistant/pkg/datemath"
)

// CreateInput is the input for creating one task.
type CreateInput struct {
	Title       string
	Description string
	DueDate     time.Time
	EndDate     *time.Time
	AllDay      bool
	Priority    model.Priority
	Tags        []string
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	DueDate     *time.Time
	EndDate     *time.Time
	ClearEnd    bool
	AllDay      *bool
	Priority    *model.Priority
	Tags        []string
	Completed   *bool
}

// Sort orders for List.
const (
	SortDueAsc  = "due_asc"
	SortDueDesc = "due_desc"
)

// PriorityAll disables the priority filter.
const PriorityAll = "all"

// ListInput filters the task list.
type ListInput struct {
	Priority string // "all", "" or a model.Priority
	Search   string // case-insensitive match on title and description
	Sort     string // SortDueAsc (default) or SortDueDesc
}

// BoardOutput is the task board: incomplete tasks split by due day, plus completed ones.
type BoardOutput struct {
	Today     []model.Task `json:"today"`
	Future    []model.Task `json:"future"`
	Past      []model.Task `json:"past"`
	Completed []model.Task `json:"completed"`
}

// CalendarInput selects a local day.
type CalendarInput struct {
	Day datemath.CalendarDate
}

// DayCount is the number of tasks occurring on one local day.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CalendarOutput lists a day's tasks and counts for every day of its month.
type CalendarOutput struct {
	Date   string       `json:"date"`
	Tasks  []model.Task `json:"tasks"`
	Counts []DayCount   `json:"counts"`
}

// Dashboard defaults.
const (
	DefaultHeatmapDays = 120
	DefaultTrendDays   = 30
	RecentActivityMax  = 20
)

// DashboardInput sizes the dashboard windows. Zero values use the defaults.
type DashboardInput struct {
	HeatmapDays int
	TrendDays   int
}

// HeatmapCell counts tasks occurring on a day and how many of them are done.
type HeatmapCell struct {
	Date     string `json:"date"`
	Total    int    `json:"total"`
	Complete int    `json:"complete"`
}

// TrendPoint compares tasks created and completed on a day.
type TrendPoint struct {
	Date      string `json:"date"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

// Activity kinds.
const (
	ActivityCreated   = "created"
	ActivityUpdated   = "updated"
	ActivityCompleted = "completed"
)

// Activity is one recent change to a task.
type Activity struct {
	TaskID string    `json:"task_id"`
	Title  string    `json:"title"`
	Kind   string    `json:"kind"`
	At     time.Time `json:"at"`
}

// DashboardOutput holds the derived statistics.
type DashboardOutput struct {
	Total       int           `json:"total"`
	Completed   int           `json:"completed"`
	Active      int           `json:"active"`
	Overdue     int           `json:"overdue"`
	PerfectDays int           `json:"perfect_days"`
	Heatmap     []HeatmapCell `json:"heatmap"`
	Trend       []TrendPoint  `json:"trend"`
	Recent      []Activity    `json:"recent"`
}
