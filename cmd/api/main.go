package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-assistant/config"
	_ "todo-assistant/docs" // Swagger docs
	"todo-assistant/internal/app"
	assistantHTTP "todo-assistant/internal/assistant/delivery/http"
	"todo-assistant/internal/httpserver"
	"todo-assistant/internal/middleware"
	taskHTTP "todo-assistant/internal/task/delivery/http"
	"todo-assistant/pkg/log"
)

// @title       Todo Assistant API
// @description To-do list with a calendar, a dashboard and a natural-language task assistant backed by Gemini.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todo Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store: %s (%s)", cfg.Store.Driver, cfg.Store.Path)

	// 3. Domains
	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		return
	}
	defer a.Close()

	if cfg.Assistant.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY is not set: assistant requests must send the X-Api-Key header")
	}

	mw := middleware.New(logger, middleware.Config{
		RequestsPerMin: cfg.Assistant.RateLimitPerMin,
		AllowOrigins:   cfg.HTTPServer.CORSOrigins,
	})

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		TaskHandler:      taskHTTP.New(logger, a.Tasks, a.DateMath),
		AssistantHandler: assistantHTTP.New(logger, a.Assistant, a.DateMath, a.Session),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
