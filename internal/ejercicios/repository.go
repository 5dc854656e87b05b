package ejercicios

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/gym-rutinas/pkg/query"
	"github.com/JaimeStill/gym-rutinas/pkg/repository"
)

const insertSQL = `
	INSERT INTO ejercicios (rutina_id, nombre, dia_semana, series, repeticiones, peso, notas, orden)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id`

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "ejercicios"),
	}
}

func (r *repo) Add(ctx context.Context, rutinaID int64, cmd CreateEjercicioCommand) (*EjercicioRutina, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	e, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (EjercicioRutina, error) {
		exists, err := rutinaExists(ctx, tx, rutinaID)
		if err != nil {
			return EjercicioRutina{}, err
		}
		if !exists {
			return EjercicioRutina{}, ErrRutinaNotFound
		}

		var id int64
		if err := tx.QueryRowContext(ctx, insertSQL, insertArgs(rutinaID, cmd, cmd.Orden)...).Scan(&id); err != nil {
			return EjercicioRutina{}, fmt.Errorf("insert ejercicio: %w", err)
		}

		return find(ctx, tx, id)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("ejercicio created", "id", e.ID, "rutina_id", rutinaID, "nombre", e.Nombre)
	return &e, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd UpdateEjercicioCommand) (*EjercicioRutina, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `
		UPDATE ejercicios
		SET nombre = $2, dia_semana = $3, series = $4, repeticiones = $5,
			peso = $6, notas = $7, orden = $8
		WHERE id = $1`

	e, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (EjercicioRutina, error) {
		current, err := find(ctx, tx, id)
		if err != nil || cmd.Empty() {
			return current, err
		}

		cmd.Apply(&current.Ejercicio)

		err = repository.ExecExpectOne(ctx, tx, q,
			id, current.Nombre, string(current.DiaSemana), current.Series, current.Repeticiones,
			current.Peso, current.Notas, current.Orden,
		)
		if err != nil {
			return EjercicioRutina{}, err
		}

		return find(ctx, tx, id)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("ejercicio updated", "id", e.ID, "rutina_id", e.RutinaID)
	return &e, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	q := `DELETE FROM ejercicios WHERE id = $1`

	if err := repository.ExecExpectOne(ctx, r.db, q, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("ejercicio deleted", "id", id)
	return nil
}

// InsertAll inserts cmds for rutinaID within tx. When positional is set, an
// orden of zero is replaced by the command's index in cmds.
func InsertAll(ctx context.Context, tx *sql.Tx, rutinaID int64, cmds []CreateEjercicioCommand, positional bool) error {
	for i, cmd := range cmds {
		orden := cmd.Orden
		if positional && orden == 0 {
			orden = i
		}

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs(rutinaID, cmd, orden)...); err != nil {
			return fmt.Errorf("insert ejercicio %d: %w", i, err)
		}
	}
	return nil
}

// DeleteByRutina removes every exercise owned by rutinaID.
func DeleteByRutina(ctx context.Context, tx *sql.Tx, rutinaID int64) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM ejercicios WHERE rutina_id = $1`, rutinaID); err != nil {
		return fmt.Errorf("delete ejercicios: %w", err)
	}
	return nil
}

// ListByRutina returns the exercises of rutinaID sorted by weekday, orden and id.
func ListByRutina(ctx context.Context, q repository.Querier, rutinaID int64) ([]Ejercicio, error) {
	stmt, args := query.NewBuilder(projection, defaultSort...).
		WhereEquals("RutinaID", rutinaID).
		Build()

	rows, err := repository.QueryMany(ctx, q, stmt, args, scanEjercicio)
	if err != nil {
		return nil, fmt.Errorf("query ejercicios: %w", err)
	}

	items := make([]Ejercicio, len(rows))
	for i, row := range rows {
		items[i] = row.Ejercicio
	}
	Sort(items)
	return items, nil
}

func find(ctx context.Context, q repository.Querier, id int64) (EjercicioRutina, error) {
	stmt, args := query.NewBuilder(projection).
		WhereEquals("ID", id).
		Build()

	return repository.QueryOne(ctx, q, stmt, args, scanEjercicio)
}

func rutinaExists(ctx context.Context, q repository.Querier, rutinaID int64) (bool, error) {
	exists, err := repository.Exists(ctx, q, `SELECT EXISTS (SELECT 1 FROM rutinas WHERE id = $1)`, []any{rutinaID})
	if err != nil {
		return false, fmt.Errorf("check rutina: %w", err)
	}
	return exists, nil
}
