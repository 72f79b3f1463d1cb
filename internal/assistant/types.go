package assistant

import (
	"strings"
	"time"

	"todo-assistant/internal/assistant/normalize"
	"todo-assistant/internal/model"
)

// State is a step of one parse run.
type State string

const (
	StateIdle           State = "idle"
	StateRequesting     State = "requesting"
	StateExtracting     State = "extracting"
	StateParsingJSON    State = "parsing_json"
	StateNormalizing    State = "normalizing"
	StateReadyForReview State = "ready_for_review"
	StateCommitted      State = "committed"
	StateFailed         State = "failed"
)

// ParseInput is the free-text instruction to turn into tasks.
type ParseInput struct {
	Instruction string
}

// Item is one reviewable task of a batch.
// Editable starts as a copy of Normalize.Task and absorbs the caller's edits.
type Item struct {
	Parsed    model.Candidate  `json:"parsed"`
	Normalize normalize.Result `json:"normalize"`
	Editable  *model.Task      `json:"editable,omitempty"`
}

// Blocking reports whether the item still prevents the batch from being committed:
// it failed normalization and no edit has supplied a title since.
func (it Item) Blocking() bool {
	if it.Normalize.Error == "" {
		return false
	}
	return it.Editable == nil || strings.TrimSpace(it.Editable.Title) == ""
}

// Batch is the working state of one parse run.
type Batch struct {
	ID          string    `json:"id"`
	Instruction string    `json:"instruction"`
	State       State     `json:"state"`
	Source      string    `json:"source"`
	Raw         string    `json:"raw,omitempty"`
	Items       []Item    `json:"items"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HasErrors reports whether any item blocks the commit.
func (b Batch) HasErrors() bool {
	for _, it := range b.Items {
		if it.Blocking() {
			return true
		}
	}
	return false
}

// UpdateItemInput patches the editable task of one item. Nil fields are left unchanged.
type UpdateItemInput struct {
	BatchID     string
	Index       int
	Title       *string
	Description *string
	DueDate     *time.Time
	EndDate     *time.Time
	ClearEnd    bool
	AllDay      *bool
	Priority    *model.Priority
	Tags        []string
}

// CommitOutput reports what a commit created and what failed.
type CommitOutput struct {
	Created  []model.Task `json:"created"`
	Failures []string     `json:"failures"`
	Summary  string       `json:"summary"`
}
