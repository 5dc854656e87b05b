package rutinas

import (
	"github.com/JaimeStill/gym-rutinas/pkg/query"
	"github.com/JaimeStill/gym-rutinas/pkg/repository"
)

var projection = query.
	NewProjectionMap("", "rutinas", "r").
	Project("id", "ID").
	Project("nombre", "Nombre").
	Project("descripcion", "Descripcion").
	Project("fecha_creacion", "FechaCreacion")

// nombreClaveColumn is filtered on but never selected.
const nombreClaveColumn = "r.nombre_clave"

var (
	listSort   = []query.SortField{{Field: "FechaCreacion", Descending: true}, {Field: "ID", Descending: true}}
	searchSort = []query.SortField{{Field: "Nombre"}, {Field: "ID"}}
)

func scanRutina(s repository.Scanner) (Rutina, error) {
	var (
		r  Rutina
		ts repository.Timestamp
	)
	err := s.Scan(&r.ID, &r.Nombre, &r.Descripcion, &ts)
	r.FechaCreacion = ts.UTC()
	return r, err
}
