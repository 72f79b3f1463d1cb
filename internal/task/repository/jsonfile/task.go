package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"todo-assistant/internal/model"
	"todo-assistant/internal/task/repository"
)

// LoadAll reads and migrates the stored list. A missing file is an empty list.
func (r *implRepository) LoadAll(ctx context.Context) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// SaveAll replaces the stored list.
func (r *implRepository) SaveAll(ctx context.Context, tasks []model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(ctx, tasks)
}

// Create assigns an id and timestamps and prepends the task to the list.
func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.load(ctx)
	if err != nil {
		return model.Task{}, err
	}

	t := opt.Build(r.newID(), r.now())
	tasks = append([]model.Task{t}, tasks...)
	if err := r.save(ctx, tasks); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// Update replaces the task with the same id and refreshes UpdatedAt.
func (r *implRepository) Update(ctx context.Context, t model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID == t.ID {
			now := r.now()
			t.UpdatedAt = &now
			tasks[i] = t
			return r.save(ctx, tasks)
		}
	}
	return repository.ErrNotFound
}

// Delete removes the task with the given id.
func (r *implRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			return r.save(ctx, tasks)
		}
	}
	return repository.ErrNotFound
}

func (r *implRepository) load(ctx context.Context) ([]model.Task, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	if len(data) == 0 {
		return []model.Task{}, nil
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		r.l.Warnf(ctx, "jsonfile.load: %s is not a task list, starting empty: %v", r.path, err)
		return []model.Task{}, nil
	}

	now := r.now()
	migrated := false
	tasks := make([]model.Task, 0, len(raw))
	for _, entry := range raw {
		if entry == nil {
			migrated = true
			continue
		}
		t, changed := r.migrateRaw(entry, now)
		migrated = migrated || changed
		tasks = append(tasks, t)
	}

	// generated ids and defaulted dates must stay stable across reads
	if migrated {
		if err := r.save(ctx, tasks); err != nil {
			return nil, fmt.Errorf("write migrated tasks: %w", err)
		}
		r.l.Infof(ctx, "jsonfile.load: migrated legacy entries in %s", r.path)
	}
	return tasks, nil
}

// save writes to a sibling temp file and renames it over the target.
func (r *implRepository) save(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create task dir %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tasks-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace task file: %w", err)
	}
	r.l.Debugf(ctx, "jsonfile.save: wrote %d tasks to %s", len(tasks), r.path)
	return nil
}
