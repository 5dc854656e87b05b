package rutinas

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/gym-rutinas/internal/ejercicios"
	"github.com/JaimeStill/gym-rutinas/pkg/query"
	"github.com/JaimeStill/gym-rutinas/pkg/repository"
	"github.com/JaimeStill/gym-rutinas/pkg/validation"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "rutinas"),
	}
}

func (r *repo) List(ctx context.Context) ([]Rutina, error) {
	q, args := query.NewBuilder(projection, listSort...).Build()

	rutinas, err := repository.QueryMany(ctx, r.db, q, args, scanRutina)
	if err != nil {
		return nil, fmt.Errorf("query rutinas: %w", err)
	}
	return rutinas, nil
}

func (r *repo) Search(ctx context.Context, nombre string) ([]Rutina, error) {
	if nombre == "" {
		return nil, validation.Field("nombre", "field required")
	}

	q, args := query.NewBuilder(projection, searchSort...).
		WhereContains(nombreClaveColumn, nombreClave(nombre)).
		Build()

	rutinas, err := repository.QueryMany(ctx, r.db, q, args, scanRutina)
	if err != nil {
		return nil, fmt.Errorf("search rutinas: %w", err)
	}
	return rutinas, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*RutinaDetalle, error) {
	detalle, err := findDetalle(ctx, r.db, id)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &detalle, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateRutinaCommand) (*RutinaDetalle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO rutinas (nombre, nombre_clave, descripcion, fecha_creacion)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	detalle, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (RutinaDetalle, error) {
		if err := checkNombre(ctx, tx, cmd.Nombre, 0); err != nil {
			return RutinaDetalle{}, err
		}

		now := time.Now().UTC().Truncate(time.Microsecond)

		var id int64
		err := tx.QueryRowContext(ctx, q, cmd.Nombre, nombreClave(cmd.Nombre), cmd.Descripcion, now).Scan(&id)
		if err != nil {
			return RutinaDetalle{}, fmt.Errorf("insert rutina: %w", err)
		}

		if err := ejercicios.InsertAll(ctx, tx, id, cmd.Ejercicios, true); err != nil {
			return RutinaDetalle{}, err
		}

		return findDetalle(ctx, tx, id)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("rutina created", "id", detalle.ID, "nombre", detalle.Nombre, "ejercicios", len(detalle.Ejercicios))
	return &detalle, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd UpdateRutinaCommand) (*RutinaDetalle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `
		UPDATE rutinas
		SET nombre = $2, nombre_clave = $3, descripcion = $4
		WHERE id = $1`

	detalle, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (RutinaDetalle, error) {
		current, err := findRutina(ctx, tx, id)
		if err != nil {
			return RutinaDetalle{}, err
		}

		if cmd.Nombre != nil {
			if err := checkNombre(ctx, tx, *cmd.Nombre, id); err != nil {
				return RutinaDetalle{}, err
			}
			current.Nombre = *cmd.Nombre
		}
		if cmd.Descripcion != nil {
			current.Descripcion = cmd.Descripcion
		}

		if cmd.Nombre != nil || cmd.Descripcion != nil {
			err := repository.ExecExpectOne(ctx, tx, q, id, current.Nombre, nombreClave(current.Nombre), current.Descripcion)
			if err != nil {
				return RutinaDetalle{}, err
			}
		}

		if cmd.Ejercicios != nil {
			if err := ejercicios.DeleteByRutina(ctx, tx, id); err != nil {
				return RutinaDetalle{}, err
			}
			if err := ejercicios.InsertAll(ctx, tx, id, *cmd.Ejercicios, true); err != nil {
				return RutinaDetalle{}, err
			}
		}

		return findDetalle(ctx, tx, id)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"rutina updated",
		"id", detalle.ID,
		"nombre", detalle.Nombre,
		"ejercicios_replaced", cmd.Ejercicios != nil,
	)
	return &detalle, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := ejercicios.DeleteByRutina(ctx, tx, id); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, repository.ExecExpectOne(ctx, tx, `DELETE FROM rutinas WHERE id = $1`, id)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("rutina deleted", "id", id)
	return nil
}

// checkNombre returns ErrDuplicate when another routine already uses nombre
// ignoring case. excludeID skips the routine being renamed; zero skips none.
func checkNombre(ctx context.Context, q repository.Querier, nombre string, excludeID int64) error {
	b := query.NewBuilder(projection).WhereEquals(nombreClaveColumn, nombreClave(nombre))
	if excludeID != 0 {
		b.WhereNotEquals("ID", excludeID)
	}

	stmt, args := b.BuildExists()
	exists, err := repository.Exists(ctx, q, stmt, args)
	if err != nil {
		return fmt.Errorf("check nombre: %w", err)
	}
	if exists {
		return ErrDuplicate
	}
	return nil
}

func findRutina(ctx context.Context, q repository.Querier, id int64) (Rutina, error) {
	stmt, args := query.NewBuilder(projection).
		WhereEquals("ID", id).
		Build()

	return repository.QueryOne(ctx, q, stmt, args, scanRutina)
}

func findDetalle(ctx context.Context, q repository.Querier, id int64) (RutinaDetalle, error) {
	rutina, err := findRutina(ctx, q, id)
	if err != nil {
		return RutinaDetalle{}, err
	}

	items, err := ejercicios.ListByRutina(ctx, q, id)
	if err != nil {
		return RutinaDetalle{}, err
	}

	return RutinaDetalle{Rutina: rutina, Ejercicios: items}, nil
}
