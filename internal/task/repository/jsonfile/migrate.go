package jsonfile

import (
	"time"

	"todo-assistant/internal/model"
)

// migrateRaw upgrades one stored entry of any older shape to a Task.
// Missing or malformed fields get safe defaults instead of failing the whole load;
// changed reports whether any default was applied, so the list must be written back.
func (r *implRepository) migrateRaw(raw map[string]any, now time.Time) (t model.Task, changed bool) {
	t = model.Task{
		ID:          stringField(raw, "id"),
		Title:       stringField(raw, "title"),
		Description: stringField(raw, "description"),
		AllDay:      boolField(raw, "allDay"),
		Completed:   boolField(raw, "completed"),
		Priority:    model.Priority(stringField(raw, "priority")),
	}
	if t.ID == "" {
		t.ID = r.newID()
		changed = true
	}
	if !t.Priority.IsValid() {
		t.Priority = model.PriorityMedium
		changed = true
	}
	if v, ok := raw["allDay"]; ok {
		if _, isBool := v.(bool); !isBool {
			changed = true
		}
	}

	if due, ok := timeField(raw, "dueDate"); ok {
		t.DueDate = due
	} else {
		t.DueDate = now
		changed = true
	}
	if end, ok := timeField(raw, "endDate"); ok {
		t.EndDate = &end
	}
	if created, ok := timeField(raw, "createdAt"); ok {
		t.CreatedAt = created
	} else {
		t.CreatedAt = now
		changed = true
	}
	if updated, ok := timeField(raw, "updatedAt"); ok {
		t.UpdatedAt = &updated
	}

	if tags, ok := raw["tags"].([]any); ok {
		for _, tag := range tags {
			if s, ok := tag.(string); ok && s != "" {
				t.Tags = append(t.Tags, s)
			} else {
				changed = true
			}
		}
	}
	return t, changed
}

func stringField(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

func boolField(raw map[string]any, key string) bool {
	b, _ := raw[key].(bool)
	return b
}

func timeField(raw map[string]any, key string) (time.Time, bool) {
	s, ok := raw[key].(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
