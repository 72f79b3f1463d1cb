package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"todo-assistant/internal/model"
	"todo-assistant/internal/task"
	"todo-assistant/internal/task/repository"
	"todo-assistant/internal/task/usecase"
	"todo-assistant/pkg/datemath"
	"todo-assistant/pkg/gcalendar"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	tasks []model.Task
	seq   int
	now   func() time.Time
	fail  bool
}

func (m *mockRepo) LoadAll(ctx context.Context) ([]model.Task, error) {
	if m.fail {
		return nil, errors.New("disk error")
	}
	out := make([]model.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

func (m *mockRepo) SaveAll(ctx context.Context, tasks []model.Task) error {
	m.tasks = tasks
	return nil
}

func (m *mockRepo) Create(ctx context.Context, opt repository.CreateOptions) (model.Task, error) {
	if m.fail {
		return model.Task{}, errors.New("disk error")
	}
	m.seq++
	t := opt.Build("task-"+string(rune('0'+m.seq)), m.now())
	m.tasks = append([]model.Task{t}, m.tasks...)
	return t, nil
}

func (m *mockRepo) Update(ctx context.Context, t model.Task) error {
	for i := range m.tasks {
		if m.tasks[i].ID == t.ID {
			now := m.now()
			t.UpdatedAt = &now
			m.tasks[i] = t
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type mockCalendar struct {
	requests []gcalendar.CreateEventRequest
	err      error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar/evt-1"}, nil
}

var loc = time.FixedZone("ICT", 7*3600)

func fixedNow() time.Time {
	return time.Date(2024, 6, 10, 12, 0, 0, 0, loc)
}

func newUseCase(repo *mockRepo, cal gcalendar.ICalendar) task.UseCase {
	repo.now = fixedNow
	return usecase.New(&mockLogger{}, repo, cal, "primary", datemath.NewParserIn(loc), fixedNow)
}

func at(day, hour int) time.Time {
	return time.Date(2024, 6, day, hour, 0, 0, 0, loc)
}

func ptr[T any](v T) *T { return &v }

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		input   task.CreateInput
		wantErr error
	}{
		{name: "Valid timed task", input: task.CreateInput{Title: "Report", DueDate: at(11, 17), Priority: model.PriorityHigh}},
		{name: "Empty title", input: task.CreateInput{Title: "  ", DueDate: at(11, 17)}, wantErr: task.ErrEmptyTitle},
		{name: "Title too long", input: task.CreateInput{Title: strings.Repeat("x", 81), DueDate: at(11, 17)}, wantErr: task.ErrTitleTooLong},
		{name: "Invalid priority", input: task.CreateInput{Title: "x", DueDate: at(11, 17), Priority: "urgent"}, wantErr: task.ErrInvalidPriority},
		{name: "Missing due date", input: task.CreateInput{Title: "x"}, wantErr: task.ErrMissingDueDate},
		{name: "Timed end before due", input: task.CreateInput{Title: "x", DueDate: at(11, 17), EndDate: ptr(at(11, 16))}, wantErr: task.ErrEndBeforeDue},
		{name: "All-day end not after due day", input: task.CreateInput{Title: "x", AllDay: true, DueDate: at(11, 0), EndDate: ptr(at(11, 0))}, wantErr: task.ErrInvalidEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&mockRepo{}, nil)
			_, err := uc.Create(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreate_DefaultsAndCalendarMirror(t *testing.T) {
	repo := &mockRepo{}
	cal := &mockCalendar{}
	uc := newUseCase(repo, cal)

	created, err := uc.Create(context.Background(), task.CreateInput{Title: "Holiday", AllDay: true, DueDate: at(11, 0)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Priority != model.PriorityMedium {
		t.Errorf("Priority = %q, want medium", created.Priority)
	}
	if created.EndDate == nil || !created.EndDate.Equal(at(12, 0)) {
		t.Errorf("EndDate = %v, want next midnight", created.EndDate)
	}
	if len(cal.requests) != 1 {
		t.Fatalf("expected one calendar event, got %d", len(cal.requests))
	}
	req := cal.requests[0]
	if !req.AllDay || !req.StartTime.Equal(at(11, 0)) || !req.EndTime.Equal(at(12, 0)) {
		t.Errorf("unexpected calendar request %+v", req)
	}
}

func TestCreate_CalendarFailureIsNonFatal(t *testing.T) {
	repo := &mockRepo{}
	uc := newUseCase(repo, &mockCalendar{err: errors.New("quota")})

	if _, err := uc.Create(context.Background(), task.CreateInput{Title: "Report", DueDate: at(11, 17)}); err != nil {
		t.Fatalf("calendar failure must not fail create: %v", err)
	}
	if len(repo.tasks) != 1 {
		t.Errorf("expected task to be stored")
	}
}

func TestUpdateToggleDelete(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc := newUseCase(repo, nil)

	created, _ := uc.Create(ctx, task.CreateInput{Title: "Draft", DueDate: at(11, 9)})

	updated, err := uc.Update(ctx, task.UpdateInput{ID: created.ID, Title: ptr("Final"), Priority: ptr(model.PriorityLow)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Final" || updated.Priority != model.PriorityLow {
		t.Errorf("unexpected update result %+v", updated)
	}
	if _, err := uc.Update(ctx, task.UpdateInput{ID: created.ID, Title: ptr("")}); !errors.Is(err, task.ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}

	toggled, err := uc.ToggleComplete(ctx, created.ID)
	if err != nil || !toggled.Completed {
		t.Fatalf("ToggleComplete: %+v, %v", toggled, err)
	}
	toggled, _ = uc.ToggleComplete(ctx, created.ID)
	if toggled.Completed {
		t.Error("second toggle should reopen the task")
	}

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := uc.Detail(ctx, created.ID); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := uc.Delete(ctx, created.ID); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func seedTasks() []model.Task {
	return []model.Task{
		{ID: "a", Title: "Write report", Description: "quarterly", DueDate: at(10, 15), Priority: model.PriorityHigh, CreatedAt: at(9, 8)},
		{ID: "b", Title: "Buy milk", DueDate: at(12, 9), Priority: model.PriorityLow, CreatedAt: at(10, 8)},
		{ID: "c", Title: "Pay rent", DueDate: at(8, 9), Priority: model.PriorityHigh, CreatedAt: at(1, 8)},
		{ID: "d", Title: "Gym", DueDate: at(9, 18), Priority: model.PriorityMedium, Completed: true, CreatedAt: at(8, 8), UpdatedAt: ptr(at(9, 20))},
		{ID: "e", Title: "Trip", AllDay: true, DueDate: at(14, 0), EndDate: ptr(at(17, 0)), Priority: model.PriorityMedium, CreatedAt: at(10, 9)},
	}
}

func ids(tasks []model.Task) string {
	parts := make([]string, 0, len(tasks))
	for _, t := range tasks {
		parts = append(parts, t.ID)
	}
	return strings.Join(parts, ",")
}

func TestList(t *testing.T) {
	tests := []struct {
		name    string
		input   task.ListInput
		want    string
		wantErr error
	}{
		{name: "All ascending", input: task.ListInput{}, want: "c,d,a,b,e"},
		{name: "Descending", input: task.ListInput{Sort: task.SortDueDesc}, want: "e,b,a,d,c"},
		{name: "High priority", input: task.ListInput{Priority: "high"}, want: "c,a"},
		{name: "Search matches description", input: task.ListInput{Search: "QUARTER"}, want: "a"},
		{name: "Priority all", input: task.ListInput{Priority: task.PriorityAll, Search: "m"}, want: "d,b"},
		{name: "Bad priority", input: task.ListInput{Priority: "urgent"}, wantErr: task.ErrInvalidFilter},
		{name: "Bad sort", input: task.ListInput{Sort: "title"}, wantErr: task.ErrInvalidFilter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&mockRepo{tasks: seedTasks()}, nil)
			got, err := uc.List(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("List() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && ids(got) != tt.want {
				t.Errorf("List() = %s, want %s", ids(got), tt.want)
			}
		})
	}
}

func TestBoard(t *testing.T) {
	uc := newUseCase(&mockRepo{tasks: seedTasks()}, nil)
	board, err := uc.Board(context.Background())
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if ids(board.Today) != "a" || ids(board.Future) != "b,e" || ids(board.Past) != "c" || ids(board.Completed) != "d" {
		t.Errorf("unexpected board: today=%s future=%s past=%s done=%s",
			ids(board.Today), ids(board.Future), ids(board.Past), ids(board.Completed))
	}
}

func TestCalendar(t *testing.T) {
	uc := newUseCase(&mockRepo{tasks: seedTasks()}, nil)
	day, _ := datemath.NewDate(2024, 6, 16)

	out, err := uc.Calendar(context.Background(), task.CalendarInput{Day: day})
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if ids(out.Tasks) != "e" {
		t.Errorf("tasks on 16th = %s, want e", ids(out.Tasks))
	}
	if len(out.Counts) != 30 {
		t.Fatalf("expected 30 day counts for June, got %d", len(out.Counts))
	}
	// the all-day span [14th, 17th) must not leak into the 17th
	if out.Counts[16].Date != "2024-06-17" || out.Counts[16].Count != 0 {
		t.Errorf("unexpected count for 17th: %+v", out.Counts[16])
	}
	if out.Counts[13].Count != 1 {
		t.Errorf("unexpected count for 14th: %+v", out.Counts[13])
	}
}

func TestDashboard(t *testing.T) {
	uc := newUseCase(&mockRepo{tasks: seedTasks()}, nil)
	out, err := uc.Dashboard(context.Background(), task.DashboardInput{HeatmapDays: 7, TrendDays: 3})
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if out.Total != 5 || out.Completed != 1 || out.Active != 4 {
		t.Errorf("unexpected totals %+v", out)
	}
	// a (15:00 today, now is 12:00) is not overdue yet; c is
	if out.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", out.Overdue)
	}
	if len(out.Heatmap) != 7 || out.Heatmap[6].Date != "2024-06-10" {
		t.Fatalf("unexpected heatmap %+v", out.Heatmap)
	}
	// only the 9th has tasks that are all complete
	if out.PerfectDays != 1 {
		t.Errorf("PerfectDays = %d, want 1", out.PerfectDays)
	}
	if len(out.Trend) != 3 || out.Trend[2].Created != 2 || out.Trend[1].Completed != 1 {
		t.Errorf("unexpected trend %+v", out.Trend)
	}
	if len(out.Recent) == 0 || out.Recent[0].TaskID != "e" || out.Recent[0].Kind != task.ActivityCreated {
		t.Errorf("unexpected recent activity %+v", out.Recent)
	}
}

func TestRepositoryFailure(t *testing.T) {
	uc := newUseCase(&mockRepo{fail: true}, nil)
	if _, err := uc.List(context.Background(), task.ListInput{}); err == nil {
		t.Error("expected List to surface repository error")
	}
	if _, err := uc.Dashboard(context.Background(), task.DashboardInput{}); err == nil {
		t.Error("expected Dashboard to surface repository error")
	}
}
