package main

import (
	"fmt"
	"log/slog"

	"github.com/belli/taskify/internal/config"
	"github.com/belli/taskify/internal/platform/memory"
	"github.com/belli/taskify/internal/service"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore   *memory.TaskStore
	taskService service.TaskService
}

// newApplication creates an application with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.taskStore = memory.NewTaskStore(cfg.Store.ShardCount, logger)

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"store", "memory",
		"shard_count", cfg.Store.ShardCount)
	return app, nil
}
