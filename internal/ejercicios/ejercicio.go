// Package ejercicios manages the exercises that make up a routine. Each
// exercise belongs to one routine and is scheduled on a single weekday.
package ejercicios

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"github.com/JaimeStill/gym-rutinas/pkg/patch"
	"github.com/JaimeStill/gym-rutinas/pkg/validation"
)

// DiaSemana is the weekday an exercise is scheduled on.
type DiaSemana string

const (
	Lunes     DiaSemana = "Lunes"
	Martes    DiaSemana = "Martes"
	Miercoles DiaSemana = "Miércoles"
	Jueves    DiaSemana = "Jueves"
	Viernes   DiaSemana = "Viernes"
	Sabado    DiaSemana = "Sábado"
	Domingo   DiaSemana = "Domingo"
)

// Dias lists the weekdays in calendar order starting on Monday.
var Dias = []DiaSemana{Lunes, Martes, Miercoles, Jueves, Viernes, Sabado, Domingo}

func init() {
	names := make([]string, len(Dias))
	for i, d := range Dias {
		names[i] = string(d)
	}

	validation.Register(
		"dia_semana",
		"must be one of "+strings.Join(names, ", "),
		func(v string) bool { return DiaSemana(v).Valid() },
	)
}

// Ordinal returns the calendar position of d (Lunes = 0). Unknown values
// sort after Domingo.
func (d DiaSemana) Ordinal() int {
	if i := slices.Index(Dias, d); i >= 0 {
		return i
	}
	return len(Dias)
}

func (d DiaSemana) Valid() bool {
	return slices.Contains(Dias, d)
}

// Ejercicio is the form an exercise takes when nested in a routine.
type Ejercicio struct {
	ID           int64     `json:"id"`
	Nombre       string    `json:"nombre"`
	DiaSemana    DiaSemana `json:"dia_semana"`
	Series       int       `json:"series"`
	Repeticiones int       `json:"repeticiones"`
	Peso         *float64  `json:"peso"`
	Notas        *string   `json:"notas"`
	Orden        int       `json:"orden"`
}

// EjercicioRutina is a standalone exercise carrying its owning routine id.
type EjercicioRutina struct {
	Ejercicio
	RutinaID int64 `json:"rutina_id"`
}

// Sort orders exercises by weekday, then orden, then id.
func Sort(items []Ejercicio) {
	slices.SortStableFunc(items, func(a, b Ejercicio) int {
		return cmp.Or(
			cmp.Compare(a.DiaSemana.Ordinal(), b.DiaSemana.Ordinal()),
			cmp.Compare(a.Orden, b.Orden),
			cmp.Compare(a.ID, b.ID),
		)
	})
}

// CreateEjercicioCommand carries the fields of a new exercise.
type CreateEjercicioCommand struct {
	Nombre       string    `json:"nombre" validate:"required,max=200"`
	DiaSemana    DiaSemana `json:"dia_semana" validate:"dia_semana"`
	Series       int       `json:"series" validate:"gte=1,lte=100"`
	Repeticiones int       `json:"repeticiones" validate:"gte=1,lte=1000"`
	Peso         *float64  `json:"peso" validate:"omitnil,gt=0,lte=500"`
	Notas        *string   `json:"notas" validate:"omitnil,max=500"`
	Orden        int       `json:"orden" validate:"gte=0"`
}

func (c CreateEjercicioCommand) Validate() error {
	return validation.Struct(c)
}

// UpdateEjercicioCommand is a partial update. Only members present in the
// request body are applied; null clears peso and notas.
type UpdateEjercicioCommand struct {
	Nombre       patch.Field[string]    `json:"nombre"`
	DiaSemana    patch.Field[DiaSemana] `json:"dia_semana"`
	Series       patch.Field[int]       `json:"series"`
	Repeticiones patch.Field[int]       `json:"repeticiones"`
	Peso         patch.Field[float64]   `json:"peso"`
	Notas        patch.Field[string]    `json:"notas"`
	Orden        patch.Field[int]       `json:"orden"`
}

func (c UpdateEjercicioCommand) Validate() error {
	out := &validation.Error{Message: "validation failed"}

	checkField(out, "nombre", c.Nombre, "required,max=200", false)
	checkField(out, "dia_semana", c.DiaSemana, "dia_semana", false)
	checkField(out, "series", c.Series, "gte=1,lte=100", false)
	checkField(out, "repeticiones", c.Repeticiones, "gte=1,lte=1000", false)
	checkField(out, "peso", c.Peso, "gt=0,lte=500", true)
	checkField(out, "notas", c.Notas, "max=500", true)
	checkField(out, "orden", c.Orden, "gte=0", false)

	if len(out.Fields) > 0 {
		return out
	}
	return nil
}

// Empty reports whether no member was present in the request.
func (c UpdateEjercicioCommand) Empty() bool {
	return !c.Nombre.Set && !c.DiaSemana.Set && !c.Series.Set &&
		!c.Repeticiones.Set && !c.Peso.Set && !c.Notas.Set && !c.Orden.Set
}

// Apply writes the present members of c onto e.
func (c UpdateEjercicioCommand) Apply(e *Ejercicio) {
	if c.Nombre.Present() {
		e.Nombre = c.Nombre.Value
	}
	if c.DiaSemana.Present() {
		e.DiaSemana = c.DiaSemana.Value
	}
	if c.Series.Present() {
		e.Series = c.Series.Value
	}
	if c.Repeticiones.Present() {
		e.Repeticiones = c.Repeticiones.Value
	}
	if c.Peso.Set {
		e.Peso = c.Peso.Ptr()
	}
	if c.Notas.Set {
		e.Notas = c.Notas.Ptr()
	}
	if c.Orden.Present() {
		e.Orden = c.Orden.Value
	}
}

func checkField[T any](out *validation.Error, name string, f patch.Field[T], tag string, nullable bool) {
	if !f.Set {
		return
	}
	if f.Null {
		if !nullable {
			out.Fields = append(out.Fields, validation.FieldError{Field: name, Message: "must not be null"})
		}
		return
	}

	var ve *validation.Error
	if err := validation.Var(name, f.Value, tag); errors.As(err, &ve) {
		out.Fields = append(out.Fields, ve.Fields...)
	}
}
