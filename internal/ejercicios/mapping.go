package ejercicios

import (
	"github.com/JaimeStill/gym-rutinas/pkg/query"
	"github.com/JaimeStill/gym-rutinas/pkg/repository"
)

var projection = query.
	NewProjectionMap("", "ejercicios", "e").
	Project("id", "ID").
	Project("rutina_id", "RutinaID").
	Project("nombre", "Nombre").
	Project("dia_semana", "DiaSemana").
	Project("series", "Series").
	Project("repeticiones", "Repeticiones").
	Project("peso", "Peso").
	Project("notas", "Notas").
	Project("orden", "Orden")

var defaultSort = []query.SortField{{Field: "Orden"}, {Field: "ID"}}

func scanEjercicio(s repository.Scanner) (EjercicioRutina, error) {
	var e EjercicioRutina
	err := s.Scan(
		&e.ID, &e.RutinaID, &e.Nombre, &e.DiaSemana,
		&e.Series, &e.Repeticiones, &e.Peso, &e.Notas, &e.Orden,
	)
	return e, err
}

// insertArgs returns the column values for an insert in the order
// rutina_id, nombre, dia_semana, series, repeticiones, peso, notas, orden.
func insertArgs(rutinaID int64, cmd CreateEjercicioCommand, orden int) []any {
	return []any{
		rutinaID, cmd.Nombre, string(cmd.DiaSemana),
		cmd.Series, cmd.Repeticiones, cmd.Peso, cmd.Notas, orden,
	}
}
