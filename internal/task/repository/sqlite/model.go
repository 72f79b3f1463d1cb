package sqlite

import (
	"time"

	"todo-assistant/internal/model"
)

// taskRow is the table layout. Position keeps the list order across SaveAll.
type taskRow struct {
	ID          string `gorm:"primaryKey"`
	Position    int64  `gorm:"index"`
	Title       string
	Description string
	DueDate     time.Time `gorm:"index"`
	EndDate     *time.Time
	AllDay      bool
	Priority    string
	Tags        []string `gorm:"serializer:json"`
	Completed   bool
	CreatedAt   time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
}

func (taskRow) TableName() string {
	return "tasks"
}

func toRow(t model.Task, position int64) taskRow {
	return taskRow{
		ID:          t.ID,
		Position:    position,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		EndDate:     t.EndDate,
		AllDay:      t.AllDay,
		Priority:    string(t.Priority),
		Tags:        t.Tags,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r taskRow) toTask() model.Task {
	p := model.Priority(r.Priority)
	if !p.IsValid() {
		p = model.PriorityMedium
	}
	return model.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		EndDate:     r.EndDate,
		AllDay:      r.AllDay,
		Priority:    p,
		Tags:        r.Tags,
		Completed:   r.Completed,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
