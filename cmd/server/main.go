// Portfolio Backend - Cybersecurity Portfolio API
// Copyright 2026 soldier0x00
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/soldier0x00/portfolio-backend

// Command server runs the portfolio backend API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/soldier0x00/portfolio-backend/internal/api"
	"github.com/soldier0x00/portfolio-backend/internal/blog"
	"github.com/soldier0x00/portfolio-backend/internal/config"
	"github.com/soldier0x00/portfolio-backend/internal/database"
	"github.com/soldier0x00/portfolio-backend/internal/logging"
	"github.com/soldier0x00/portfolio-backend/internal/supervisor"
	"github.com/soldier0x00/portfolio-backend/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Msg("Starting portfolio backend")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	counter, err := blog.NewViewCounter(cfg.Blog.CounterPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open view counter store")
	}
	defer func() {
		if err := counter.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing view counter store")
		}
	}()
	catalog := blog.NewCatalog(counter)

	handler := api.NewHandler(db, catalog, cfg)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       120 * time.Second,
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog
	slogLogger := slog.New(logging.NewSlogHandler())

	tree := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewCounterGCService(counter))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor has fully stopped
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
