// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

// Package app wires configuration, the event bus, the catalog endpoint and
// the HTTP router into one supervised service process.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/librarium/internal/api"
	"github.com/tomtom215/librarium/internal/catalog"
	"github.com/tomtom215/librarium/internal/config"
	"github.com/tomtom215/librarium/internal/eventbus"
	"github.com/tomtom215/librarium/internal/logging"
	"github.com/tomtom215/librarium/internal/supervisor"
	"github.com/tomtom215/librarium/internal/supervisor/services"
)

// App is one fully wired catalog service.
type App struct {
	cfg     *config.Config
	bus     eventbus.Bus
	handler http.Handler
	tree    *supervisor.SupervisorTree
}

// New builds the service described by cfg. Nothing listens until Run.
func New(cfg *config.Config) (*App, error) {
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		Name:            cfg.Service.Name,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create supervisor tree: %w", err)
	}

	if cfg.Bus.Driver == config.BusDriverEmbedded {
		tree.AddMessagingService(services.NewEmbeddedNATSService(eventbus.ServerConfig{
			Host: cfg.Bus.Embedded.Host,
			Port: cfg.Bus.Embedded.Port,
		}, cfg.Server.ShutdownTimeout))
	}

	bus, err := newBus(cfg)
	if err != nil {
		return nil, err
	}
	tree.AddMessagingService(services.NewBusService(bus))

	resource, err := newResource(cfg, eventbus.NewNotifier(bus, cfg.Service.Name))
	if err != nil {
		_ = bus.Close()
		return nil, err
	}

	router := api.NewRouter(resource,
		api.NewHealthHandler(cfg.Service.Name, bus),
		api.WithChiMiddleware(api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security))),
		api.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
	)
	handler := router.SetupChi()

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(cfg.Service.Name+"-http", server, cfg.Server.ShutdownTimeout))

	return &App{cfg: cfg, bus: bus, handler: handler, tree: tree}, nil
}

// newBus connects the bus selected by cfg.Bus.Driver.
func newBus(cfg *config.Config) (eventbus.Bus, error) {
	wmLogger := logging.NewWatermillLogger()

	switch cfg.Bus.Driver {
	case config.BusDriverMemory:
		return eventbus.NewMemoryBus(wmLogger), nil

	case config.BusDriverNATS, config.BusDriverEmbedded:
		url := cfg.Bus.URL
		if cfg.Bus.Driver == config.BusDriverEmbedded {
			url = cfg.Bus.EmbeddedURL()
		}

		natsCfg := eventbus.DefaultNATSConfig(url)
		natsCfg.ClientName = "librarium-" + cfg.Service.Name
		natsCfg.PublishTimeout = cfg.Bus.PublishTimeout
		natsCfg.ConnectTimeout = cfg.Bus.ConnectTimeout
		if cb := cfg.Bus.CircuitBreaker; cb.Enabled {
			natsCfg.CircuitBreaker = &eventbus.CircuitBreakerConfig{
				Name:             cfg.Service.Name + "-publish",
				MaxRequests:      cb.MaxRequests,
				Interval:         cb.Interval,
				Timeout:          cb.Timeout,
				FailureThreshold: cb.FailureThreshold,
			}
		}

		bus, err := eventbus.NewNATSBus(natsCfg, wmLogger)
		if err != nil {
			return nil, fmt.Errorf("create NATS bus: %w", err)
		}
		return bus, nil

	default:
		return nil, fmt.Errorf("unknown bus driver %q", cfg.Bus.Driver)
	}
}

// newResource builds the HTTP resource for the configured service.
func newResource(cfg *config.Config, notifier catalog.Notifier) (api.Resource, error) {
	switch cfg.Service.Name {
	case config.ServiceAuthors:
		endpoint := catalog.NewAuthorEndpoint(catalog.NewAuthorService(nil), notifier, cfg.Bus.Topic)
		return api.NewResourceHandler(endpoint), nil
	case config.ServiceBooks:
		endpoint := catalog.NewBookEndpoint(catalog.NewBookService(nil), notifier, cfg.Bus.Topic)
		return api.NewResourceHandler(endpoint), nil
	default:
		return nil, fmt.Errorf("unknown service %q", cfg.Service.Name)
	}
}

// Handler returns the HTTP handler that Run serves.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run serves until ctx is canceled and the supervisor tree has stopped.
func (a *App) Run(ctx context.Context) error {
	logging.Info().
		Str("service", a.cfg.Service.Name).
		Str("addr", a.cfg.Server.Addr()).
		Str("bus_driver", a.cfg.Bus.Driver).
		Str("topic", a.cfg.Bus.Topic).
		Msg("Starting service")

	err := a.tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}

	if report, reportErr := a.tree.UnstoppedServiceReport(); reportErr == nil && len(report) > 0 {
		logging.Warn().Int("count", len(report)).Msg("Services did not stop within the shutdown timeout")
	}
	logging.Info().Str("service", a.cfg.Service.Name).Msg("Service stopped")
	return nil
}

// Main loads configuration for service, runs it until SIGINT or SIGTERM,
// and exits the process on startup failure.
func Main(service string) {
	cfg, err := config.Load(service)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})

	application, err := New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize service")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := application.Run(ctx); err != nil {
		logging.Error().Err(err).Msg("Service exited with error")
		cancel()
		os.Exit(1) //nolint:gocritic // cancel already called
	}
}
