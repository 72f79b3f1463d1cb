package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"todo-assistant/internal/model"
	"todo-assistant/internal/task/repository"
)

func (r *implRepository) LoadAll(ctx context.Context) ([]model.Task, error) {
	var rows []taskRow
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toTask())
	}
	return tasks, nil
}

// SaveAll replaces the whole table in one transaction.
func (r *implRepository) SaveAll(ctx context.Context, tasks []model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&taskRow{}).Error; err != nil {
			return fmt.Errorf("clear tasks: %w", err)
		}
		if len(tasks) == 0 {
			return nil
		}
		rows := make([]taskRow, 0, len(tasks))
		for i, t := range tasks {
			rows = append(rows, toRow(t, int64(i)))
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("save tasks: %w", err)
		}
		return nil
	})
}

// Create inserts the task ahead of every existing one.
func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Task, error) {
	t := opt.Build(r.newID(), r.now())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var first struct{ Min *int64 }
		if err := tx.Model(&taskRow{}).Select("MIN(position) AS min").Scan(&first).Error; err != nil {
			return fmt.Errorf("read position: %w", err)
		}
		position := int64(0)
		if first.Min != nil {
			position = *first.Min - 1
		}
		row := toRow(t, position)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (r *implRepository) Update(ctx context.Context, t model.Task) error {
	now := r.now()
	t.UpdatedAt = &now

	res := r.db.WithContext(ctx).Model(&taskRow{}).Where("id = ?", t.ID).Select("*").Omit("id", "position").Updates(toRow(t, 0))
	if res.Error != nil {
		return fmt.Errorf("update task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&taskRow{})
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
