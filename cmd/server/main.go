// MyNextMovie - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mynextmovie

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/mynextmovie/internal/api"
	"github.com/tomtom215/mynextmovie/internal/catalog"
	"github.com/tomtom215/mynextmovie/internal/config"
	"github.com/tomtom215/mynextmovie/internal/logging"
	"github.com/tomtom215/mynextmovie/internal/metrics"
	"github.com/tomtom215/mynextmovie/internal/supervisor"
	"github.com/tomtom215/mynextmovie/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// uptimeInterval is how often app_uptime_seconds is refreshed.
const uptimeInterval = 15 * time.Second

func main() {
	started := time.Now()

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.ToLoggingConfig())
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("movies_path", cfg.Data.MoviesPath).
		Str("ratings_path", cfg.Data.RatingsPath).
		Str("loader", cfg.Data.Loader).
		Msg("Starting MyNextMovie with supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}

	engine, err := initRecommend(cfg, cat, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	router := api.NewRouter(api.NewHandler(engine, version), api.NewChiMiddleware(chiMiddlewareConfig(cfg)))
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	tree.AddBackgroundService(services.NewUptimeService(started, uptimeInterval))
	if cfg.Data.ReloadInterval > 0 {
		reload := func(ctx context.Context) (*catalog.Catalog, error) {
			return loadCatalog(ctx, cfg)
		}
		tree.AddBackgroundService(services.NewCatalogReloadService(
			engine, reload, cfg.Data.ReloadInterval, logging.WithComponent("catalog")))
		logging.Info().Dur("interval", cfg.Data.ReloadInterval).Msg("Catalog reload service added")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*)")
	}

	// === START SUPERVISOR TREE ===

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

// chiMiddlewareConfig maps the security section onto the API middleware.
func chiMiddlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled
	return mw
}
