// Package rutinas manages workout routines and the exercise lists they own.
// Routine names are unique ignoring case; creating or updating a routine
// writes its exercises in the same transaction.
package rutinas

import (
	"strings"
	"time"

	"github.com/JaimeStill/gym-rutinas/internal/ejercicios"
	"github.com/JaimeStill/gym-rutinas/pkg/validation"
)

// Rutina is the summary form returned by list and search.
type Rutina struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   *string   `json:"descripcion"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// RutinaDetalle is a routine with its exercises sorted by weekday and orden.
type RutinaDetalle struct {
	Rutina
	Ejercicios []ejercicios.Ejercicio `json:"ejercicios"`
}

type CreateRutinaCommand struct {
	Nombre      string                              `json:"nombre" validate:"required,max=200"`
	Descripcion *string                             `json:"descripcion" validate:"omitnil,max=1000"`
	Ejercicios  []ejercicios.CreateEjercicioCommand `json:"ejercicios" validate:"omitempty,dive"`
}

func (c CreateRutinaCommand) Validate() error {
	return validation.Struct(c)
}

// UpdateRutinaCommand changes only the members that are present and not
// null. A present Ejercicios list, even an empty one, replaces every exercise.
type UpdateRutinaCommand struct {
	Nombre      *string                              `json:"nombre" validate:"omitnil,min=1,max=200"`
	Descripcion *string                              `json:"descripcion" validate:"omitnil,max=1000"`
	Ejercicios  *[]ejercicios.CreateEjercicioCommand `json:"ejercicios" validate:"omitnil,dive"`
}

func (c UpdateRutinaCommand) Validate() error {
	return validation.Struct(c)
}

// nombreClave is the normalized name stored under the unique constraint.
func nombreClave(nombre string) string {
	return strings.ToLower(nombre)
}
