// Package main is the entry point for the docs server. It wires all
// dependencies using samber/do v2, loads the content source (local YAML
// data or the remote content API), starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/Firegrill/docs/internal/adapters/http"
	"github.com/Firegrill/docs/internal/adapters/http/handlers"
	"github.com/Firegrill/docs/internal/adapters/http/middleware"

	"github.com/Firegrill/docs/internal/adapters/clients/content"
	"github.com/Firegrill/docs/internal/adapters/store/pages"
	"github.com/Firegrill/docs/internal/adapters/store/tracks"
	"github.com/Firegrill/docs/internal/app"
	"github.com/Firegrill/docs/internal/platform/config"
	"github.com/Firegrill/docs/internal/platform/health"
	"github.com/Firegrill/docs/internal/platform/httpclient"
	"github.com/Firegrill/docs/internal/platform/logging"
	"github.com/Firegrill/docs/internal/platform/render"
	"github.com/Firegrill/docs/internal/platform/telemetry"
	"github.com/Firegrill/docs/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	for _, checker := range do.MustInvoke[[]ports.HealthChecker](injector) {
		registry.Register(checker)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.Renderer, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return render.Instrument(render.New(), metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (*pages.Catalog, error) {
		renderer := do.MustInvoke[ports.Renderer](i)
		return pages.Load(context.Background(),
			cfg.Content.DataDir,
			cfg.Content.Languages,
			cfg.Content.DefaultLanguage,
			cfg.Content.LoadWorkers,
			renderer,
			cfg.Content.Versions,
			logger,
		)
	})

	// The content source decides where track and link data come from:
	// "local" serves the YAML data directory, "remote" proxies the content
	// API through the resilient HTTP client.
	switch cfg.Content.Source {
	case config.SourceRemote:
		do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			return httpclient.New(&cfg.Client, "content-api", metrics, logger), nil
		})
		do.Provide(injector, func(i do.Injector) (*content.Client, error) {
			client := do.MustInvoke[*httpclient.Client](i)
			return content.New(client, cfg.Content.DefaultLanguage, logger), nil
		})
		do.Provide(injector, func(i do.Injector) (ports.TrackStore, error) {
			return do.MustInvoke[*content.Client](i), nil
		})
		do.Provide(injector, func(i do.Injector) (ports.LinkResolver, error) {
			return do.MustInvoke[*content.Client](i), nil
		})
		do.Provide(injector, func(i do.Injector) ([]ports.HealthChecker, error) {
			return []ports.HealthChecker{
				do.MustInvoke[*content.Client](i),
				do.MustInvoke[*pages.Catalog](i),
			}, nil
		})

	default:
		do.Provide(injector, func(_ do.Injector) (*tracks.Store, error) {
			return tracks.Load(context.Background(),
				cfg.Content.DataDir,
				cfg.Content.Languages,
				cfg.Content.DefaultLanguage,
				cfg.Content.LoadWorkers,
				logger,
			)
		})
		do.Provide(injector, func(i do.Injector) (ports.TrackStore, error) {
			return do.MustInvoke[*tracks.Store](i), nil
		})
		do.Provide(injector, func(i do.Injector) (ports.LinkResolver, error) {
			return do.MustInvoke[*pages.Catalog](i), nil
		})
		do.Provide(injector, func(i do.Injector) ([]ports.HealthChecker, error) {
			return []ports.HealthChecker{
				do.MustInvoke[*tracks.Store](i),
				do.MustInvoke[*pages.Catalog](i),
			}, nil
		})
	}

	do.Provide(injector, func(i do.Injector) (ports.PageFinder, error) {
		return do.MustInvoke[*pages.Catalog](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TrackResolver, error) {
		store := do.MustInvoke[ports.TrackStore](i)
		links := do.MustInvoke[ports.LinkResolver](i)
		renderer := do.MustInvoke[ports.Renderer](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTrackService(store, links, renderer, cfg.Content.Languages, logger, metrics), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*handlers.PageHandler, error) {
		return handlers.NewPageHandler(logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		pageH := do.MustInvoke[*handlers.PageHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		finder := do.MustInvoke[ports.PageFinder](i)
		resolver := do.MustInvoke[ports.TrackResolver](i)

		global := []func(nethttp.Handler) nethttp.Handler{
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		}
		page := []func(nethttp.Handler) nethttp.Handler{
			middleware.Language(cfg.Content.Languages, cfg.Content.DefaultLanguage),
			middleware.PageContext(finder, middleware.PageContextConfig{
				Languages:       cfg.Content.Languages,
				DefaultLanguage: cfg.Content.DefaultLanguage,
				DefaultVersion:  cfg.Content.DefaultVersion,
				VersionShorts:   cfg.Content.Versions,
			}),
			middleware.LearningTrack(resolver),
		}

		return adapthttp.NewRouter(pageH, healthH, global, page), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
