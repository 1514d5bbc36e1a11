// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

// Package main is the entry point for the Feedscope server.
//
// Feedscope ranks social feed posts by importance and serves daily digests
// over a REST API. A collector process writes feed snapshots to disk
// (feed_posts_<timestamp>.json); Feedscope scores, prioritizes, categorizes
// and selects the top posts from the newest snapshot.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered from defaults, config.yaml and FEEDSCOPE_* env
//     vars (Koanf v2)
//  2. Ranking engine: scorer, prioritizer and categorizer built from the
//     configured weights and thresholds
//  3. Snapshot loader: reads the collector's output directory
//  4. Supervisor tree: snapshot watcher (data layer) and HTTP server
//     (api layer) under suture supervision
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (FEEDSCOPE_SERVER_PORT, FEEDSCOPE_SNAPSHOT_DIR, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Stops the snapshot watcher
//
// # Example Usage
//
//	export FEEDSCOPE_SNAPSHOT_DIR=/data/snapshots
//	export FEEDSCOPE_SERVER_PORT=8460
//	./feedscope
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/feedscope/internal/api"
	"github.com/tomtom215/feedscope/internal/classify"
	"github.com/tomtom215/feedscope/internal/config"
	"github.com/tomtom215/feedscope/internal/digest"
	"github.com/tomtom215/feedscope/internal/logging"
	"github.com/tomtom215/feedscope/internal/ranking"
	"github.com/tomtom215/feedscope/internal/snapshot"
	"github.com/tomtom215/feedscope/internal/supervisor"
	"github.com/tomtom215/feedscope/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("snapshot_dir", cfg.Snapshot.Dir).
		Int("port", cfg.Server.Port).
		Msg("Starting Feedscope")

	// Ranking engine. All components are immutable after construction, so
	// one instance of each serves every request.
	scorer := ranking.NewScorer(cfg.Ranking.Weights, cfg.Ranking.Engagement)
	prioritizer := ranking.NewPrioritizer(cfg.Ranking.Thresholds)
	categorizer := classify.NewCategorizer()
	selector := digest.NewSelector(scorer, prioritizer, categorizer)

	loader := snapshot.NewLoader(cfg.Snapshot.Dir)

	handler := api.NewHandler(scorer, prioritizer, categorizer, selector, loader, api.HandlerConfig{
		DefaultCount: cfg.API.DefaultCount,
		MaxCount:     cfg.API.MaxCount,
	})
	router := api.NewRouter(handler, api.NewMiddleware(&api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.API.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.API.RateLimitRequests,
		RateLimitWindow:    cfg.API.RateLimitWindow,
	}))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewSnapshotWatcherService(loader, cfg.Snapshot.WatchInterval))
	logging.Info().Dur("interval", cfg.Snapshot.WatchInterval).Msg("Snapshot watcher added to supervisor tree")

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

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
