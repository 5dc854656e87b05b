package database_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/gym-rutinas/pkg/database"
	"github.com/JaimeStill/gym-rutinas/pkg/lifecycle"
)

func sqliteConfig(t *testing.T) *database.Config {
	t.Helper()
	cfg := &database.Config{
		Engine: database.EngineSQLite,
		Path:   filepath.Join(t.TempDir(), "gym.db"),
	}
	require.NoError(t, cfg.Finalize(nil))
	return cfg
}

func TestSystem_StartMigratesAndShutsDown(t *testing.T) {
	cfg := sqliteConfig(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sys, err := database.New(cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, database.EngineSQLite, sys.Engine())

	ctx := context.Background()
	assert.ErrorIs(t, sys.Ping(ctx), database.ErrNotReady)

	lc := lifecycle.New()
	require.NoError(t, sys.Start(lc))
	require.NoError(t, sys.Ping(ctx))

	var tables int
	err = sys.Connection().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('rutinas', 'ejercicios')`,
	).Scan(&tables)
	require.NoError(t, err)
	assert.Equal(t, 2, tables)

	require.NoError(t, lc.Shutdown(5*time.Second))
	assert.Error(t, sys.Connection().PingContext(ctx))
}

func TestMigrator_UpDownVersion(t *testing.T) {
	cfg := sqliteConfig(t)

	m, err := database.NewMigrator(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })

	v, _, err := m.Version()
	require.NoError(t, err)
	assert.Zero(t, v)

	require.NoError(t, m.Up())
	require.NoError(t, m.Up(), "second Up is a no-op")

	v, dirty, err := m.Version()
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.Equal(t, uint(1), v)

	require.NoError(t, m.Down())
	v, _, err = m.Version()
	require.NoError(t, err)
	assert.Zero(t, v)
}
