package http

import (
	"time"

	"todo-assistant/internal/model"
	"todo-assistant/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string   `json:"title"       binding:"required"`
	Description string   `json:"description" binding:"max=1000"`
	DueDate     string   `json:"dueDate"     binding:"required"`
	EndDate     *string  `json:"endDate"`
	AllDay      bool     `json:"allDay"`
	Priority    string   `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Tags        []string `json:"tags"`
}

func (r createReq) toInput(due time.Time, end *time.Time) task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     due,
		EndDate:     end,
		AllDay:      r.AllDay,
		Priority:    model.Priority(r.Priority),
		Tags:        r.Tags,
	}
}

// ---

type listReq struct {
	Priority string `form:"priority"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Priority: r.Priority,
		Search:   r.Search,
		Sort:     r.Sort,
	}
}

// ---

type updateReq struct {
	ID          string   `json:"-"` // populated from URI param
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	DueDate     *string  `json:"dueDate"`
	EndDate     *string  `json:"endDate"`
	ClearEnd    bool     `json:"clearEnd"`
	AllDay      *bool    `json:"allDay"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Tags        []string `json:"tags"`
	Completed   *bool    `json:"completed"`
}

// ---

type dashboardReq struct {
	HeatmapDays int `form:"heatmap_days" binding:"omitempty,min=1,max=366"`
	TrendDays   int `form:"trend_days"   binding:"omitempty,min=1,max=366"`
}

// --- Response DTOs ---

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"dueDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	AllDay      bool       `json:"allDay"`
	Priority    string     `json:"priority"`
	Tags        []string   `json:"tags"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		EndDate:     t.EndDate,
		AllDay:      t.AllDay,
		Priority:    string(t.Priority),
		Tags:        tags,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type detailResp struct {
	Task taskResp `json:"task"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

type boardResp struct {
	Today     []taskResp `json:"today"`
	Future    []taskResp `json:"future"`
	Past      []taskResp `json:"past"`
	Completed []taskResp `json:"completed"`
}

func newBoardResp(out task.BoardOutput) boardResp {
	return boardResp{
		Today:     newTaskResps(out.Today),
		Future:    newTaskResps(out.Future),
		Past:      newTaskResps(out.Past),
		Completed: newTaskResps(out.Completed),
	}
}

type calendarResp struct {
	Date   string          `json:"date"`
	Tasks  []taskResp      `json:"tasks"`
	Counts []task.DayCount `json:"counts"`
}

func newCalendarResp(out task.CalendarOutput) calendarResp {
	return calendarResp{
		Date:   out.Date,
		Tasks:  newTaskResps(out.Tasks),
		Counts: out.Counts,
	}
}
