package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPServer.Port != 8080 || cfg.HTTPServer.Mode != "debug" {
		t.Errorf("http = %+v", cfg.HTTPServer)
	}
	if cfg.Store.Driver != StoreDriverJSONFile || cfg.Store.Path != "data/tasks_v1.json" {
		t.Errorf("store = %+v", cfg.Store)
	}
	a := cfg.Assistant
	if a.Model != "gemini-2.0-flash" || a.MaxOutputTokens != 2048 || a.Timezone != "Local" {
		t.Errorf("assistant = %+v", a)
	}
	if a.BatchTTL != 30*time.Minute || a.RateLimitPerMin != 30 {
		t.Errorf("assistant ttl/rate = %v/%d", a.BatchTTL, a.RateLimitPerMin)
	}
	if cfg.GoogleCalendar.CalendarID != "primary" {
		t.Errorf("calendar id = %q", cfg.GoogleCalendar.CalendarID)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := chdirTemp(t)
	yaml := `
http_server:
  port: 9090
store:
  driver: sqlite
  path: data/tasks.db
assistant:
  api_key: ${MY_MODEL_KEY}
  timezone: Asia/Ho_Chi_Minh
  batch_ttl: 5m
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MY_MODEL_KEY", "from-file-env")
	t.Setenv("GOOGLE_CALENDAR_CREDENTIALS", "/secrets/creds.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("port = %d", cfg.HTTPServer.Port)
	}
	if cfg.Store.Driver != StoreDriverSQLite || cfg.Store.Path != "data/tasks.db" {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Assistant.APIKey != "from-file-env" {
		t.Errorf("api key = %q", cfg.Assistant.APIKey)
	}
	if cfg.Assistant.Timezone != "Asia/Ho_Chi_Minh" || cfg.Assistant.BatchTTL != 5*time.Minute {
		t.Errorf("assistant = %+v", cfg.Assistant)
	}
	if cfg.GoogleCalendar.CredentialsPath != "/secrets/creds.json" {
		t.Errorf("credentials = %q", cfg.GoogleCalendar.CredentialsPath)
	}

	t.Setenv("GEMINI_API_KEY", "shortcut")
	t.Setenv("STORE_PATH", "/var/lib/tasks.db")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Assistant.APIKey != "shortcut" || cfg.Store.Path != "/var/lib/tasks.db" {
		t.Errorf("env shortcuts not applied: key=%q path=%q", cfg.Assistant.APIKey, cfg.Store.Path)
	}
}

func TestLoad_InvalidDriver(t *testing.T) {
	chdirTemp(t)
	t.Setenv("STORE_DRIVER", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unknown store driver")
	}
}
