// Kaiseki server: accepts menu photo uploads, manages queue workers,
// and streams per-item analysis events to clients.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kaiseki-io/kaiseki/pkg/api"
	"github.com/kaiseki-io/kaiseki/pkg/cleanup"
	"github.com/kaiseki-io/kaiseki/pkg/config"
	"github.com/kaiseki-io/kaiseki/pkg/database"
	"github.com/kaiseki-io/kaiseki/pkg/events"
	"github.com/kaiseki-io/kaiseki/pkg/imagestore"
	"github.com/kaiseki-io/kaiseki/pkg/pipeline"
	"github.com/kaiseki-io/kaiseki/pkg/providers"
	"github.com/kaiseki-io/kaiseki/pkg/queue"
	"github.com/kaiseki-io/kaiseki/pkg/services"
	"github.com/kaiseki-io/kaiseki/pkg/stages"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting kaiseki",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Image store
	images, err := imagestore.NewFSStore(getEnv("IMAGE_STORE_DIR", "./data/images"))
	if err != nil {
		slog.Error("Failed to initialize image store", "error", err)
		os.Exit(1)
	}

	// 4. Domain services and event infrastructure
	publisher := events.NewPublisher(dbClient.DB())
	sessionService := services.NewSessionService(dbClient.Client, dbClient.DB(), publisher, cfg.Session.MaxPendingSessions)
	itemService := services.NewItemService(dbClient.DB(), publisher)
	eventService := services.NewEventService(dbClient.Client)
	taskService := services.NewTaskService(dbClient.Client)
	slog.Info("Services initialized")

	manager := events.NewManager(eventService)
	listener := events.NewListener(dbConfig.DSN(), manager)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start event listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	manager.SetListener(listener)
	slog.Info("Streaming infrastructure initialized")

	// 5. Providers
	// Note: the gRPC client dials lazily; the connection happens on first call.
	caps, closeProviders, err := providers.Build(cfg.Providers)
	if err != nil {
		slog.Error("Failed to build providers", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeProviders(); err != nil {
			slog.Error("Error closing providers", "error", err)
		}
	}()

	// 6. Orchestrator and stage executors
	orchestrator := pipeline.New(sessionService, itemService, taskService, publisher, cfg)
	orchestrator.Start(ctx)
	defer orchestrator.Stop()

	registry := stages.NewRegistry(&stages.Deps{
		Sessions:  sessionService,
		Items:     itemService,
		Events:    eventService,
		Publisher: publisher,
		Caps:      caps,
		Notifier:  orchestrator,
		Cfg:       cfg,
		Images:    images,
	})

	// 7. Worker pool (release this pod's stale claims first)
	workerPool := queue.NewPool(podID, cfg, taskService, registry, orchestrator)
	if err := workerPool.ReleaseStartupOrphans(ctx); err != nil {
		slog.Error("Failed to release startup orphans", "error", err)
		// Non-fatal; the orphan scan recovers them after the visibility timeout
	}
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Retention
	cleanupService := cleanup.NewService(cfg.Retention, sessionService, eventService)
	cleanupService.Start(ctx)

	// 9. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, sessionService, eventService,
		manager, publisher, orchestrator, workerPool, images, podID)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Kaiseki started successfully", "pod_id", podID)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop intake first, then drain workers.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 10*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, unfinished tasks will be orphan-recovered")
	}

	cleanupService.Stop()

	slog.Info("Shutdown complete")
}
