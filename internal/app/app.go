package app

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"todo-assistant/config"
	"todo-assistant/internal/assistant"
	batchRepo "todo-assistant/internal/assistant/repository/memory"
	assistantUC "todo-assistant/internal/assistant/usecase"
	"todo-assistant/internal/model"
	"todo-assistant/internal/task"
	taskRepo "todo-assistant/internal/task/repository"
	"todo-assistant/internal/task/repository/jsonfile"
	"todo-assistant/internal/task/repository/sqlite"
	taskUC "todo-assistant/internal/task/usecase"
	"todo-assistant/pkg/datemath"
	"todo-assistant/pkg/gcalendar"
	"todo-assistant/pkg/gemini"
	"todo-assistant/pkg/log"
)

// App is the wired set of use cases shared by the API server and the CLI.
type App struct {
	DateMath  *datemath.Parser
	Tasks     task.UseCase
	Assistant assistant.UseCase
	// Session is the default model session built from configuration.
	Session model.Session

	db *gorm.DB
}

// Build wires repositories, clients and use cases from cfg.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	dateMath, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to local time: %v", cfg.Assistant.Timezone, err)
		dateMath = datemath.NewParserIn(time.Local)
	}

	a := &App{DateMath: dateMath}

	repo, err := a.newTaskRepository(cfg.Store, l)
	if err != nil {
		return nil, err
	}

	// Google Calendar client (optional)
	var calendar gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			l.Warn(ctx, "→ Run `todo gcal-auth <credentials.json>` to generate token.json")
		} else {
			calendar = client
			l.Info(ctx, "Google Calendar initialized")
		}
	}

	a.Tasks = taskUC.New(l, repo, calendar, cfg.GoogleCalendar.CalendarID, dateMath, nil)

	llm, err := gemini.New(gemini.Config{APIURL: cfg.Assistant.APIURL})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("app.Build: gemini: %w", err)
	}
	batches := batchRepo.New(cfg.Assistant.BatchSize, cfg.Assistant.BatchTTL)
	a.Assistant = assistantUC.New(l, llm, batches, a.Tasks, dateMath, nil)

	temperature := cfg.Assistant.Temperature
	maxTokens := cfg.Assistant.MaxOutputTokens
	a.Session = model.Session{
		APIKey:          cfg.Assistant.APIKey,
		Model:           cfg.Assistant.Model,
		Temperature:     &temperature,
		MaxOutputTokens: &maxTokens,
	}
	return a, nil
}

func (a *App) newTaskRepository(cfg config.StoreConfig, l log.Logger) (taskRepo.Repository, error) {
	switch cfg.Driver {
	case config.StoreDriverSQLite:
		db, err := sqlite.NewDB(l, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("app.Build: sqlite: %w", err)
		}
		a.db = db
		return sqlite.New(l, db), nil
	default:
		return jsonfile.New(l, cfg.Path), nil
	}
}

// Close releases the SQL connection, if any.
func (a *App) Close() {
	if a.db == nil {
		return
	}
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
