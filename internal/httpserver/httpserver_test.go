package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"todo-assistant/internal/middleware"
	"todo-assistant/pkg/log"
)

type stubTaskHandler struct{}

func ok(c *gin.Context) { c.Status(http.StatusOK) }

func (stubTaskHandler) Create(c *gin.Context)    { ok(c) }
func (stubTaskHandler) List(c *gin.Context)      { ok(c) }
func (stubTaskHandler) Detail(c *gin.Context)    { ok(c) }
func (stubTaskHandler) Update(c *gin.Context)    { ok(c) }
func (stubTaskHandler) Delete(c *gin.Context)    { ok(c) }
func (stubTaskHandler) Toggle(c *gin.Context)    { ok(c) }
func (stubTaskHandler) Board(c *gin.Context)     { ok(c) }
func (stubTaskHandler) Calendar(c *gin.Context)  { ok(c) }
func (stubTaskHandler) Dashboard(c *gin.Context) { ok(c) }

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		Middleware:  middleware.New(l, middleware.Config{}),
		TaskHandler: stubTaskHandler{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/live", http.StatusOK},
		{http.MethodGet, "/api/v1/tasks", http.StatusOK},
		{http.MethodGet, "/api/v1/tasks/board", http.StatusOK},
		{http.MethodPost, "/api/v1/tasks/abc/toggle", http.StatusOK},
		{http.MethodPost, "/api/v1/assistant/parse", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Code != tt.want {
				t.Errorf("code = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("missing request id header")
	}
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "no port", cfg: Config{Mode: gin.TestMode, TaskHandler: stubTaskHandler{}}},
		{name: "no mode", cfg: Config{Port: 1, TaskHandler: stubTaskHandler{}}},
		{name: "no task handler", cfg: Config{Port: 1, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(l, tt.cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
