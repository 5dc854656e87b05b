package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/JaimeStill/gym-rutinas/pkg/database/migrations"
)

// Migrator runs the embedded schema migrations for one engine on a
// dedicated connection pool. Close releases that pool.
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator opens a separate pool for cfg so closing the migrator never
// closes the service pool.
func NewMigrator(cfg *Config) (*Migrator, error) {
	db, err := open(cfg)
	if err != nil {
		return nil, err
	}

	var driver migratedb.Driver
	switch cfg.Engine {
	case EngineSQLite:
		driver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	default:
		driver, err = migratepgx.WithInstance(db, &migratepgx.Config{})
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("migration driver: %w", err)
	}

	src, err := iofs.New(migrations.FS, string(cfg.Engine))
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, string(cfg.Engine), driver)
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("migrator: %w", err)
	}

	return &Migrator{m: m}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down reverts every applied migration.
func (m *Migrator) Down() error {
	if err := m.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Steps applies n migrations, reverting when n is negative.
func (m *Migrator) Steps(n int) error {
	if err := m.m.Steps(n); err != nil {
		return fmt.Errorf("migrate steps %d: %w", n, err)
	}
	return nil
}

// Version returns the current schema version; 0 means no migration applied.
func (m *Migrator) Version() (uint, bool, error) {
	v, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	return errors.Join(srcErr, dbErr)
}

// Migrate applies pending migrations for cfg and returns the resulting version.
func Migrate(cfg *Config) (uint, error) {
	m, err := NewMigrator(cfg)
	if err != nil {
		return 0, err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		return 0, err
	}

	v, dirty, err := m.Version()
	if err != nil {
		return 0, err
	}
	if dirty {
		return v, fmt.Errorf("schema version %d is dirty", v)
	}
	return v, nil
}
