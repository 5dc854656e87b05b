package main

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/JaimeStill/gym-rutinas/internal/ejercicios"
	"github.com/JaimeStill/gym-rutinas/internal/rutinas"
)

//go:embed rutinas.json
var rutinasSeed []byte

func init() {
	registerSeeder(&RutinaSeeder{})
}

// RutinaSeedData is the layout of rutinas.json and of external seed files.
type RutinaSeedData struct {
	Rutinas []rutinas.CreateRutinaCommand `json:"rutinas"`
}

// RutinaSeeder inserts demo routines. Routines whose name already exists,
// ignoring case, are left untouched so the seeder can run repeatedly.
type RutinaSeeder struct {
	file string
}

func (s *RutinaSeeder) Name() string {
	return "rutinas"
}

func (s *RutinaSeeder) Description() string {
	return "Seeds demo workout routines with their weekly exercises"
}

// SetFile replaces the embedded seed data with the file at path.
func (s *RutinaSeeder) SetFile(path string) {
	s.file = path
}

func (s *RutinaSeeder) Seed(ctx context.Context, tx *sql.Tx) (int, error) {
	data, err := s.load()
	if err != nil {
		return 0, err
	}

	inserted := 0
	for i, cmd := range data.Rutinas {
		if err := cmd.Validate(); err != nil {
			return inserted, fmt.Errorf("rutina %d (%q): %w", i, cmd.Nombre, err)
		}

		ok, err := s.insert(ctx, tx, cmd)
		if err != nil {
			return inserted, fmt.Errorf("rutina %q: %w", cmd.Nombre, err)
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}

func (s *RutinaSeeder) load() (*RutinaSeedData, error) {
	content := rutinasSeed
	if s.file != "" {
		var err error
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	}

	var data RutinaSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}

func (s *RutinaSeeder) insert(ctx context.Context, tx *sql.Tx, cmd rutinas.CreateRutinaCommand) (bool, error) {
	clave := strings.ToLower(cmd.Nombre)

	var existing int64
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM rutinas WHERE nombre_clave = $1`, clave,
	).Scan(&existing)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, sql.ErrNoRows):
		return false, err
	}

	var id int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO rutinas (nombre, nombre_clave, descripcion, fecha_creacion)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		cmd.Nombre, clave, cmd.Descripcion, time.Now().UTC().Truncate(time.Microsecond),
	).Scan(&id)
	if err != nil {
		return false, err
	}

	if err := ejercicios.InsertAll(ctx, tx, id, cmd.Ejercicios, true); err != nil {
		return false, err
	}
	return true, nil
}
