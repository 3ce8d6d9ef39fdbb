package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sales-task-tracker/config"
	_ "sales-task-tracker/docs" // Swagger docs
	"sales-task-tracker/internal/httpserver"
	"sales-task-tracker/internal/middleware"
	taskHTTP "sales-task-tracker/internal/task/delivery/http"
	"sales-task-tracker/internal/task/repository/memory"
	"sales-task-tracker/internal/task/repository/seed"
	"sales-task-tracker/internal/task/usecase"
	"sales-task-tracker/pkg/clock"
	"sales-task-tracker/pkg/idgen"
	"sales-task-tracker/pkg/log"
)

// @title       Sales Task Tracker API
// @description Sales task store with ROI metrics, ranking and single-level undo.
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

	logger.Info(ctx, "Starting Sales Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task domain
	clk := clock.New()
	ids := idgen.NewUUID()

	taskRepo := memory.New(logger)
	source := seed.New(ctx, logger, seed.Config{
		URL:     cfg.Seed.URL,
		File:    cfg.Seed.File,
		Timeout: cfg.Seed.Timeout,
		OAuth2: seed.OAuth2Config{
			ClientID:     cfg.Seed.OAuth2.ClientID,
			ClientSecret: cfg.Seed.OAuth2.ClientSecret,
			TokenURL:     cfg.Seed.OAuth2.TokenURL,
			Scopes:       cfg.Seed.OAuth2.Scopes,
		},
	})
	generator := seed.NewGenerator(clk, ids, uint64(time.Now().UnixNano()))

	taskUC := usecase.New(logger, taskRepo, source, generator, clk, ids, usecase.Config{
		FallbackCount:   cfg.Seed.FallbackCount,
		FallbackOnError: cfg.Seed.FallbackOnError,
		ViewCacheSize:   cfg.Store.ViewCacheSize,
	})

	// Initial load runs in the background; /ready reports when it settles.
	go func() {
		if err := taskUC.Load(ctx); err != nil {
			logger.Warnf(ctx, "Initial task load failed: %v", err)
		}
	}()

	mw := middleware.New(logger, middleware.Config{
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
	})
	taskHandler := taskHTTP.New(logger, taskUC)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		TaskHandler: taskHandler,
		TaskUseCase: taskUC,
		Middleware:  mw,
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
