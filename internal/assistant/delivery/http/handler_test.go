package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/assistant/normalize"
	"todo-assistant/internal/middleware"
	"todo-assistant/internal/model"
	"todo-assistant/pkg/datemath"
	"todo-assistant/pkg/gemini"
	"todo-assistant/pkg/log"
)

type mockUseCase struct {
	sess   model.Session
	input  assistant.ParseInput
	update assistant.UpdateItemInput
	err    error
	batch  assistant.Batch
	out    assistant.CommitOutput
}

func (m *mockUseCase) Parse(ctx context.Context, sess model.Session, input assistant.ParseInput) (assistant.Batch, error) {
	m.sess = sess
	m.input = input
	return m.batch, m.err
}

func (m *mockUseCase) GetBatch(ctx context.Context, id string) (assistant.Batch, error) {
	if id != m.batch.ID {
		return assistant.Batch{}, assistant.ErrBatchNotFound
	}
	return m.batch, nil
}

func (m *mockUseCase) UpdateItem(ctx context.Context, input assistant.UpdateItemInput) (assistant.Batch, error) {
	m.update = input
	return m.batch, m.err
}

func (m *mockUseCase) Commit(ctx context.Context, id string) (assistant.CommitOutput, error) {
	return m.out, m.err
}

func (m *mockUseCase) Cancel(ctx context.Context, id string) error { return m.err }

var defaults = model.Session{APIKey: "configured-key", Model: "gemini-2.0-flash"}

func setupRouter(uc *mockUseCase, perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc, datemath.NewParserIn(time.UTC), defaults)
	mw := middleware.New(log.NewNop(), middleware.Config{RequestsPerMin: perMin, Burst: perMin})
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func do(r *gin.Engine, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func sampleBatch() assistant.Batch {
	due := time.Date(2024, 6, 11, 17, 0, 0, 0, time.UTC)
	task := &model.Task{Title: "Submit report", DueDate: due, Priority: model.PriorityHigh}
	return assistant.Batch{
		ID:    "b1",
		State: assistant.StateReadyForReview,
		Raw:   `{"candidates":[]}`,
		Items: []assistant.Item{
			{Normalize: normalize.Result{Task: task, Warnings: []string{}}, Editable: task},
			{Normalize: normalize.Result{Error: normalize.ErrMissingTitle}},
		},
	}
}

func TestParse_Session(t *testing.T) {
	tests := []struct {
		name      string
		header    map[string]string
		body      string
		wantKey   string
		wantModel string
	}{
		{
			name:      "configured defaults",
			body:      `{"instruction":"buy milk"}`,
			wantKey:   "configured-key",
			wantModel: "gemini-2.0-flash",
		},
		{
			name:      "header and body override",
			header:    map[string]string{APIKeyHeader: "user-key"},
			body:      `{"instruction":"buy milk","model":"gemini-pro","max_output_tokens":4096}`,
			wantKey:   "user-key",
			wantModel: "gemini-pro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{batch: sampleBatch()}
			w := do(setupRouter(uc, 60), http.MethodPost, "/api/v1/assistant/parse", tt.body, tt.header)
			if w.Code != http.StatusOK {
				t.Fatalf("code = %d, body %s", w.Code, w.Body.String())
			}
			if uc.sess.APIKey != tt.wantKey || uc.sess.Model != tt.wantModel {
				t.Errorf("session = %+v", uc.sess)
			}
			if uc.input.Instruction != "buy milk" {
				t.Errorf("instruction = %q", uc.input.Instruction)
			}
		})
	}
}

func TestParse_Response(t *testing.T) {
	uc := &mockUseCase{batch: sampleBatch()}
	w := do(setupRouter(uc, 60), http.MethodPost, "/api/v1/assistant/parse", `{"instruction":"x"}`, nil)

	var resp struct {
		Data batchResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	b := resp.Data
	if b.ID != "b1" || !b.HasErrors || len(b.Items) != 2 {
		t.Fatalf("batch = %+v", b)
	}
	if b.Raw != "" {
		t.Error("raw output should be omitted from parse responses")
	}
	if b.Items[0].Blocking || !b.Items[1].Blocking {
		t.Errorf("blocking flags = %v %v", b.Items[0].Blocking, b.Items[1].Blocking)
	}
	if b.Items[1].Normalize.Error != normalize.ErrMissingTitle {
		t.Errorf("item error = %q", b.Items[1].Normalize.Error)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "missing key", err: assistant.ErrMissingAPIKey, wantCode: http.StatusUnauthorized},
		{name: "empty instruction", err: assistant.ErrEmptyInstruction, wantCode: http.StatusBadRequest},
		{name: "truncated", err: assistant.ErrTruncated, wantCode: http.StatusBadGateway},
		{name: "not array", err: assistant.ErrNotJSONArray, wantCode: http.StatusBadGateway},
		{
			name:     "model auth",
			err:      fmt.Errorf("%w: %w", assistant.ErrModelCall, &gemini.APIError{Status: 401, Body: "bad key"}),
			wantCode: http.StatusBadGateway,
		},
		{
			name:     "model quota",
			err:      fmt.Errorf("%w: %w", assistant.ErrModelCall, &gemini.APIError{Status: 429, Body: "quota"}),
			wantCode: http.StatusTooManyRequests,
		},
		{name: "unexpected", err: errors.New("disk on fire"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.err}
			w := do(setupRouter(uc, 60), http.MethodPost, "/api/v1/assistant/parse", `{"instruction":"x"}`, nil)
			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}

func TestParse_ModelMessageIsSurfaced(t *testing.T) {
	uc := &mockUseCase{err: assistant.ErrTruncated}
	w := do(setupRouter(uc, 60), http.MethodPost, "/api/v1/assistant/parse", `{"instruction":"x"}`, nil)
	if !strings.Contains(w.Body.String(), "maxOutputTokens") {
		t.Errorf("body = %s, want actionable truncation message", w.Body.String())
	}
}

func TestParse_RateLimited(t *testing.T) {
	r := setupRouter(&mockUseCase{batch: sampleBatch()}, 1)

	first := do(r, http.MethodPost, "/api/v1/assistant/parse", `{"instruction":"x"}`, nil)
	second := do(r, http.MethodPost, "/api/v1/assistant/parse", `{"instruction":"x"}`, nil)
	if first.Code != http.StatusOK || second.Code != http.StatusTooManyRequests {
		t.Errorf("codes = %d, %d; want 200, 429", first.Code, second.Code)
	}

	// other routes are not limited
	if w := do(r, http.MethodGet, "/api/v1/assistant/batches/b1", "", nil); w.Code != http.StatusOK {
		t.Errorf("get batch code = %d", w.Code)
	}
}

func TestGetBatch(t *testing.T) {
	r := setupRouter(&mockUseCase{batch: sampleBatch()}, 60)

	w := do(r, http.MethodGet, "/api/v1/assistant/batches/b1?raw=true", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "candidates") {
		t.Errorf("code = %d, body %s", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodGet, "/api/v1/assistant/batches/zzz", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown batch code = %d, want 404", w.Code)
	}
}

func TestUpdateItem(t *testing.T) {
	uc := &mockUseCase{batch: sampleBatch()}
	r := setupRouter(uc, 60)

	w := do(r, http.MethodPatch, "/api/v1/assistant/batches/b1/items/1",
		`{"title":"Fixed","priority":"low","dueDate":"2024-06-12T08:00:00Z"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body %s", w.Code, w.Body.String())
	}
	in := uc.update
	if in.BatchID != "b1" || in.Index != 1 || in.Title == nil || *in.Title != "Fixed" {
		t.Errorf("input = %+v", in)
	}
	if in.Priority == nil || *in.Priority != model.PriorityLow {
		t.Errorf("priority = %v", in.Priority)
	}
	if in.DueDate == nil || !in.DueDate.Equal(time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("due = %v", in.DueDate)
	}

	bad := []struct {
		path string
		body string
	}{
		{"/api/v1/assistant/batches/b1/items/x", `{}`},
		{"/api/v1/assistant/batches/b1/items/-1", `{}`},
		{"/api/v1/assistant/batches/b1/items/0", `{"dueDate":"soon"}`},
		{"/api/v1/assistant/batches/b1/items/0", `{"priority":"urgent"}`},
	}
	for _, b := range bad {
		if w := do(r, http.MethodPatch, b.path, b.body, nil); w.Code != http.StatusBadRequest {
			t.Errorf("%s %s: code = %d, want 400", b.path, b.body, w.Code)
		}
	}
}

func TestCommit(t *testing.T) {
	out := assistant.CommitOutput{
		Created:  []model.Task{{ID: "t1", Title: "A", Priority: model.PriorityLow}},
		Failures: []string{"Item 2: failed to add (boom)"},
		Summary:  "Created 1 task successfully. Some items failed: Item 2: failed to add (boom)",
	}
	w := do(setupRouter(&mockUseCase{out: out}, 60), http.MethodPost, "/api/v1/assistant/batches/b1/commit", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	var resp struct {
		Data commitResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Data.Created) != 1 || resp.Data.Created[0].ID != "t1" || resp.Data.Created[0].Title != "A" {
		t.Errorf("created = %+v", resp.Data.Created)
	}
	if resp.Data.Summary != out.Summary {
		t.Errorf("summary = %q", resp.Data.Summary)
	}

	w = do(setupRouter(&mockUseCase{err: assistant.ErrBatchHasErrors}, 60), http.MethodPost, "/api/v1/assistant/batches/b1/commit", "", nil)
	if w.Code != http.StatusConflict {
		t.Errorf("blocked commit code = %d, want 409", w.Code)
	}
}

func TestCancel(t *testing.T) {
	if w := do(setupRouter(&mockUseCase{}, 60), http.MethodDelete, "/api/v1/assistant/batches/b1", "", nil); w.Code != http.StatusOK {
		t.Errorf("code = %d", w.Code)
	}
	w := do(setupRouter(&mockUseCase{err: assistant.ErrBatchNotFound}, 60), http.MethodDelete, "/api/v1/assistant/batches/b1", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", w.Code)
	}
}
