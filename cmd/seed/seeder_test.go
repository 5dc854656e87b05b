package main

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/gym-rutinas/pkg/database"
	"github.com/JaimeStill/gym-rutinas/pkg/lifecycle"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	dbCfg := &database.Config{
		Engine: database.EngineSQLite,
		Path:   filepath.Join(t.TempDir(), "seed.db"),
	}
	require.NoError(t, dbCfg.Finalize(nil))

	sys, err := database.New(dbCfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	lc := lifecycle.New()
	require.NoError(t, sys.Start(lc))
	t.Cleanup(func() { lc.Shutdown(5 * time.Second) })

	return sys.Connection()
}

func count(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestListSeeders_Sorted(t *testing.T) {
	list := listSeeders()
	require.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Name(), list[i].Name())
	}

	_, ok := getSeeder("rutinas")
	assert.True(t, ok)
}

func TestRutinaSeeder_EmbeddedDataIsIdempotent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := &RutinaSeeder{}

	counts, err := runSeeders(ctx, db, s)
	require.NoError(t, err)
	assert.Equal(t, 3, counts["rutinas"])
	assert.Equal(t, 3, count(t, db, "rutinas"))
	assert.Equal(t, 13, count(t, db, "ejercicios"))

	counts, err = runSeeders(ctx, db, s)
	require.NoError(t, err)
	assert.Equal(t, 0, counts["rutinas"])
	assert.Equal(t, 3, count(t, db, "rutinas"))
}

func TestRutinaSeeder_PositionalOrden(t *testing.T) {
	db := setupDB(t)
	_, err := runSeeders(context.Background(), db, &RutinaSeeder{})
	require.NoError(t, err)

	rows, err := db.Query(`
		SELECT e.orden FROM ejercicios e
		JOIN rutinas r ON r.id = e.rutina_id
		WHERE r.nombre_clave = $1
		ORDER BY e.id`, "fuerza full body")
	require.NoError(t, err)
	defer rows.Close()

	var orden []int
	for rows.Next() {
		var o int
		require.NoError(t, rows.Scan(&o))
		orden = append(orden, o)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, orden)
}

func TestRutinaSeeder_ExternalFile(t *testing.T) {
	db := setupDB(t)

	path := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rutinas":[{"nombre":"Cardio","ejercicios":[]}]}`), 0o644))

	s := &RutinaSeeder{}
	s.SetFile(path)

	counts, err := runSeeders(context.Background(), db, s)
	require.NoError(t, err)
	assert.Equal(t, 1, counts["rutinas"])
	assert.Equal(t, 0, count(t, db, "ejercicios"))
}

func TestRutinaSeeder_InvalidDataRollsBack(t *testing.T) {
	db := setupDB(t)

	path := filepath.Join(t.TempDir(), "invalid.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rutinas":[
		{"nombre":"Valida"},
		{"nombre":"Mala","ejercicios":[{"nombre":"X","dia_semana":"Funday","series":1,"repeticiones":1}]}
	]}`), 0o644))

	s := &RutinaSeeder{}
	s.SetFile(path)

	_, err := runSeeders(context.Background(), db, s)
	require.Error(t, err)
	assert.Equal(t, 0, count(t, db, "rutinas"))
}
