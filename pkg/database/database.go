// Package database opens the configured SQL engine, applies schema
// migrations and ties the connection pool to the service lifecycle.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/JaimeStill/gym-rutinas/pkg/lifecycle"
)

// ErrNotReady is returned by Ping before Start has completed.
var ErrNotReady = errors.New("database not ready")

// System owns the connection pool for the configured engine.
type System interface {
	Connection() *sql.DB
	Engine() Engine
	Start(lc *lifecycle.Coordinator) error
	Ping(ctx context.Context) error
}

type database struct {
	cfg    *Config
	conn   *sql.DB
	logger *slog.Logger
	ready  atomic.Bool
}

// New opens the pool without connecting. Call Start to verify connectivity
// and apply migrations.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	db, err := open(cfg)
	if err != nil {
		return nil, err
	}

	return &database{
		cfg:    cfg,
		conn:   db,
		logger: logger.With("system", "database", "engine", string(cfg.Engine)),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Engine() Engine {
	return d.cfg.Engine
}

// Start pings the store, runs pending migrations when enabled, and closes
// the pool when the lifecycle shuts down.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := d.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	d.logger.Info("database connection established")

	if d.cfg.ShouldMigrate() {
		version, err := Migrate(d.cfg)
		if err != nil {
			return err
		}
		d.logger.Info("database schema current", "version", version)
	}

	d.ready.Store(true)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.ready.Store(false)
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}

// Ping checks connectivity for readiness probes.
func (d *database) Ping(ctx context.Context) error {
	if !d.ready.Load() {
		return ErrNotReady
	}
	return d.conn.PingContext(ctx)
}

func open(cfg *Config) (*sql.DB, error) {
	db, err := sql.Open(cfg.Engine.driverName(), cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Engine, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return db, nil
}
