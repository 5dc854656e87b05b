package ejercicios

import "context"

// System defines the interface for standalone exercise operations.
type System interface {
	// Add attaches a new exercise to an existing routine.
	Add(ctx context.Context, rutinaID int64, cmd CreateEjercicioCommand) (*EjercicioRutina, error)

	// Update applies the members present in cmd to the exercise.
	Update(ctx context.Context, id int64, cmd UpdateEjercicioCommand) (*EjercicioRutina, error)

	Delete(ctx context.Context, id int64) error
}
