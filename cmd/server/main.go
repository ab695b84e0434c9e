// Package main implements the entry point for the taskify API server, which
// serves task CRUD over HTTP backed by an in-memory store.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/belli/taskify/internal/config"
	"github.com/belli/taskify/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("taskify: %v", err)
	}
}

// run loads configuration, sets up logging, wires the application and serves
// until SIGINT or SIGTERM.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return err
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"shard_count", cfg.Store.ShardCount)

	app, err := newApplication(cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}
