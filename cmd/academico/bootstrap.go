package main

import (
	"context"
	"fmt"

	"github.com/jorge2985/El-Academico/internal/adapters/driven/clock"
	"github.com/jorge2985/El-Academico/internal/adapters/driven/config/env"
	"github.com/jorge2985/El-Academico/internal/adapters/driven/config/file"
	"github.com/jorge2985/El-Academico/internal/adapters/driven/location"
	portalhttp "github.com/jorge2985/El-Academico/internal/adapters/driven/portal/http"
	"github.com/jorge2985/El-Academico/internal/adapters/driven/portal/memory"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/cli"
	"github.com/jorge2985/El-Academico/internal/core/domain"
	"github.com/jorge2985/El-Academico/internal/core/ports/driven"
	"github.com/jorge2985/El-Academico/internal/core/services"
	"github.com/jorge2985/El-Academico/internal/logger"
)

// bootstrap wires the adapters. Settings are layered: config file, then
// environment (.env and process), then flags.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("Config file: %s", store.Path())

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	overrides, err := env.Load()
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if err := overrides.Apply(settings); err != nil {
		return nil, err
	}
	if opts.Offline {
		settings.Offline = true
	}

	client, err := newPortalClient(settings)
	if err != nil {
		return nil, err
	}

	publicURL := settings.Portal.PublicURL
	newLocation := func(raw string) (driven.Location, error) {
		loc, err := location.New(publicURL, raw)
		if err != nil {
			return nil, err
		}
		return loc, nil
	}
	cfg := services.SearchControllerConfig{
		Debounce: settings.Search.Debounce,
		PageSize: settings.Search.PageSize,
	}
	searches := services.NewSearchControllerFactory(client, clock.Real{}, newLocation, cfg)
	aggregator := services.NewLandingAggregator(client, settings.Landing.Categories)

	return &cli.Services{
		Searches: searches,
		OneShot:  searches.WithConfig(services.SearchControllerConfig{PageSize: cfg.PageSize}),
		Landing:  aggregator,
		Settings: settingsService,
		WatchConfig: func(ctx context.Context) error {
			return store.Watch(ctx, func() {
				reloaded, err := settingsService.Get()
				if err != nil {
					logger.Warn("Reloading settings: %v", err)
					return
				}
				aggregator.SetCategories(reloaded.Landing.Categories)
			})
		},
	}, nil
}

func newPortalClient(settings *domain.AppSettings) (driven.PortalClient, error) {
	if settings.Offline {
		logger.Info("Offline mode: using the built-in catalogue")
		return memory.NewSeeded(), nil
	}

	logger.Info("Portal API: %s", settings.API.BaseURL)
	client, err := portalhttp.NewClient(portalhttp.Config{
		BaseURL:       settings.API.BaseURL,
		Timeout:       settings.API.Timeout,
		RatePerSecond: settings.API.RatePerSecond,
	})
	if err != nil {
		return nil, fmt.Errorf("creating portal client: %w", err)
	}
	return client, nil
}
