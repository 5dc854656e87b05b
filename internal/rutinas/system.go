package rutinas

import "context"

// System defines the interface for routine management operations.
type System interface {
	// List returns every routine, newest first.
	List(ctx context.Context) ([]Rutina, error)

	// Search returns routines whose name contains nombre, ignoring case,
	// ordered by name.
	Search(ctx context.Context, nombre string) ([]Rutina, error)

	Find(ctx context.Context, id int64) (*RutinaDetalle, error)

	// Create inserts a routine and its exercises. An exercise orden of zero
	// defaults to its position in the list.
	Create(ctx context.Context, cmd CreateRutinaCommand) (*RutinaDetalle, error)

	Update(ctx context.Context, id int64, cmd UpdateRutinaCommand) (*RutinaDetalle, error)

	// Delete removes a routine together with all of its exercises.
	Delete(ctx context.Context, id int64) error
}
