package http

import (
	"time"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/assistant/normalize"
	"todo-assistant/internal/model"
)

// --- Request DTOs ---

type parseReq struct {
	Instruction     string   `json:"instruction"`
	Model           string   `json:"model"`
	Temperature     *float64 `json:"temperature"       binding:"omitempty,min=0,max=2"`
	MaxOutputTokens *int     `json:"max_output_tokens" binding:"omitempty,min=1,max=8192"`
}

func (r parseReq) toSession(apiKey string, defaults model.Session) model.Session {
	sess := defaults
	if apiKey != "" {
		sess.APIKey = apiKey
	}
	if r.Model != "" {
		sess.Model = r.Model
	}
	if r.Temperature != nil {
		sess.Temperature = r.Temperature
	}
	if r.MaxOutputTokens != nil {
		sess.MaxOutputTokens = r.MaxOutputTokens
	}
	return sess
}

func (r parseReq) toInput() assistant.ParseInput {
	return assistant.ParseInput{Instruction: r.Instruction}
}

// ---

type updateItemReq struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	DueDate     *string  `json:"dueDate"`
	EndDate     *string  `json:"endDate"`
	ClearEnd    bool     `json:"clearEnd"`
	AllDay      *bool    `json:"allDay"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Tags        []string `json:"tags"`
}

// --- Response DTOs ---

type taskResp struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"dueDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	AllDay      bool       `json:"allDay"`
	Priority    string     `json:"priority"`
	Tags        []string   `json:"tags"`
}

func newTaskResp(t *model.Task) *taskResp {
	if t == nil {
		return nil
	}
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return &taskResp{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		EndDate:     t.EndDate,
		AllDay:      t.AllDay,
		Priority:    string(t.Priority),
		Tags:        tags,
	}
}

type normalizeResp struct {
	Task     *taskResp `json:"task,omitempty"`
	Warnings []string  `json:"warnings"`
	Error    string    `json:"error,omitempty"`
}

func newNormalizeResp(r normalize.Result) normalizeResp {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return normalizeResp{Task: newTaskResp(r.Task), Warnings: warnings, Error: r.Error}
}

type itemResp struct {
	Index     int             `json:"index"`
	Parsed    model.Candidate `json:"parsed"`
	Normalize normalizeResp   `json:"normalize"`
	Editable  *taskResp       `json:"editable,omitempty"`
	Blocking  bool            `json:"blocking"`
}

type batchResp struct {
	ID          string     `json:"id"`
	Instruction string     `json:"instruction"`
	State       string     `json:"state"`
	Source      string     `json:"source"`
	HasErrors   bool       `json:"has_errors"`
	Items       []itemResp `json:"items"`
	Raw         string     `json:"raw,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func newBatchResp(b assistant.Batch, withRaw bool) batchResp {
	items := make([]itemResp, len(b.Items))
	for i, it := range b.Items {
		items[i] = itemResp{
			Index:     i,
			Parsed:    it.Parsed,
			Normalize: newNormalizeResp(it.Normalize),
			Editable:  newTaskResp(it.Editable),
			Blocking:  it.Blocking(),
		}
	}
	resp := batchResp{
		ID:          b.ID,
		Instruction: b.Instruction,
		State:       string(b.State),
		Source:      b.Source,
		HasErrors:   b.HasErrors(),
		Items:       items,
		CreatedAt:   b.CreatedAt,
	}
	if withRaw {
		resp.Raw = b.Raw
	}
	return resp
}

type createdTaskResp struct {
	ID string `json:"id"`
	taskResp
}

type commitResp struct {
	Created  []createdTaskResp `json:"created"`
	Failures []string          `json:"failures"`
	Summary  string            `json:"summary"`
}

func newCommitResp(out assistant.CommitOutput) commitResp {
	created := make([]createdTaskResp, len(out.Created))
	for i := range out.Created {
		created[i] = createdTaskResp{ID: out.Created[i].ID, taskResp: *newTaskResp(&out.Created[i])}
	}
	failures := out.Failures
	if failures == nil {
		failures = []string{}
	}
	return commitResp{Created: created, Failures: failures, Summary: out.Summary}
}
