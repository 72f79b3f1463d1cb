package normalize

import (
	"time"

	"todo-assistant/internal/model"
)

// Result is the outcome of normalizing one candidate. Task is nil exactly when Error is set.
type Result struct {
	Task     *model.Task `json:"task,omitempty"`
	Warnings []string    `json:"warnings"`
	Error    string      `json:"error,omitempty"`
}

// OK reports whether the candidate produced a task.
func (r Result) OK() bool {
	return r.Error == "" && r.Task != nil
}

// span is the resolved due/end pair of one date step. A non-empty warning means a default was used.
type span struct {
	due     time.Time
	end     *time.Time
	warning string
}
