// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies every domain system requires: lifecycle
// coordination, logging, the database pool and the metrics registry.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/gym-rutinas/internal/config"
	"github.com/JaimeStill/gym-rutinas/pkg/database"
	"github.com/JaimeStill/gym-rutinas/pkg/lifecycle"
	"github.com/JaimeStill/gym-rutinas/pkg/logging"
	"github.com/JaimeStill/gym-rutinas/pkg/metrics"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Metrics   *metrics.Registry

	metricsEnabled bool
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging, "service", "gym-rutinas")

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle:      lc,
		Logger:         logger,
		Database:       db,
		Metrics:        metrics.New(cfg.Metrics.Namespace),
		metricsEnabled: cfg.Metrics.IsEnabled(),
	}, nil
}

// Start connects the database, applies migrations and registers pool
// statistics with the metrics registry.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}

	if i.metricsEnabled {
		if err := i.Metrics.RegisterDB(i.Database.Connection(), string(i.Database.Engine())); err != nil {
			return fmt.Errorf("metrics registration failed: %w", err)
		}
	}

	return nil
}
