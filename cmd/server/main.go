package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planets-generator/internal/assembly"
	"planets-generator/internal/middleware"
	"planets-generator/internal/server"
	"planets-generator/internal/shared/config"
	"planets-generator/internal/shared/logger"
	"planets-generator/internal/topology"
	"planets-generator/internal/universe"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init()
	log := slog.With("component", "main")

	if err := run(log); err != nil {
		log.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg := config.GlobalConfig

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := topology.NewRegistry()
	pipeline := assembly.NewPipeline(registry, slog.Default(), assembly.WithWorkers(cfg.Generator.BatchWorkers))

	universeService, err := universe.NewService(pipeline, registry, cfg.Generator, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create universe service: %w", err)
	}
	log.Info("Services initialized",
		"presets", registry.IDs(),
		"default_preset", cfg.Generator.DefaultPreset,
		"cache_size", cfg.Generator.CacheSize,
		"batch_workers", cfg.Generator.BatchWorkers,
	)

	rateLimiter := middleware.NewRateLimiter(ctx, cfg.RateLimit)
	routes := server.NewRoutes(universeService, registry, rateLimiter)
	corsMiddleware := middleware.NewCORS(cfg.Frontend)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      corsMiddleware.Middleware(routes.Setup()),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Planets generator starting", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
