package rutinas

import "github.com/JaimeStill/gym-rutinas/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Search *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "Listar rutinas",
		Description: "Lista todas las rutinas (resumen, sin ejercicios), de la más reciente a la más antigua",
		OperationID: "listarRutinas",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Rutinas", "RutinaRead"),
		},
	},
	Search: &openapi.Operation{
		Summary:     "Buscar rutinas",
		Description: "Busca rutinas por nombre (parcial, sin distinguir mayúsculas/minúsculas)",
		OperationID: "buscarRutinas",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("nombre", "string", "Fragmento del nombre", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Rutinas coincidentes ordenadas por nombre", "RutinaRead"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Obtener rutina",
		Description: "Obtiene el detalle de una rutina con sus ejercicios ordenados por día y orden",
		OperationID: "obtenerRutina",
		Parameters: []*openapi.Parameter{
			openapi.PathID("id", "ID de la rutina"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Rutina con ejercicios", "RutinaReadConEjercicios"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Crear rutina",
		Description: "Crea una nueva rutina y opcionalmente sus ejercicios",
		OperationID: "crearRutina",
		RequestBody: openapi.RequestBodyJSON("RutinaCreate", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Rutina creada", "RutinaReadConEjercicios"),
			400: openapi.ResponseRef("BadRequest"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Actualizar rutina",
		Description: "Actualiza una rutina. Si se envían ejercicios, se reemplazan los existentes",
		OperationID: "actualizarRutina",
		Parameters: []*openapi.Parameter{
			openapi.PathID("id", "ID de la rutina"),
		},
		RequestBody: openapi.RequestBodyJSON("RutinaUpdate", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Rutina actualizada", "RutinaReadConEjercicios"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Eliminar rutina",
		Description: "Elimina una rutina y todos sus ejercicios",
		OperationID: "eliminarRutina",
		Parameters: []*openapi.Parameter{
			openapi.PathID("id", "ID de la rutina"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Rutina eliminada"},
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	nombre := func() *openapi.Schema {
		return &openapi.Schema{Type: "string", MinLength: openapi.Ptr(1), MaxLength: openapi.Ptr(200)}
	}
	descripcion := func() *openapi.Schema {
		return &openapi.Schema{Type: openapi.Nullable("string"), MaxLength: openapi.Ptr(1000)}
	}
	ejercicios := &openapi.Schema{Type: "array", Items: openapi.SchemaRef("EjercicioCreate")}

	read := map[string]*openapi.Schema{
		"id":             {Type: "integer", Format: "int64"},
		"nombre":         nombre(),
		"descripcion":    descripcion(),
		"fecha_creacion": {Type: "string", Format: "date-time"},
	}
	readRequired := []string{"id", "nombre", "descripcion", "fecha_creacion"}

	detalle := map[string]*openapi.Schema{
		"ejercicios": {Type: "array", Items: openapi.SchemaRef("EjercicioReadSinRutina")},
	}
	for k, v := range read {
		detalle[k] = v
	}

	return map[string]*openapi.Schema{
		"RutinaCreate": {
			Type:     "object",
			Required: []string{"nombre"},
			Properties: map[string]*openapi.Schema{
				"nombre":      nombre(),
				"descripcion": descripcion(),
				"ejercicios":  ejercicios,
			},
		},
		"RutinaUpdate": {
			Type:        "object",
			Description: "Campos omitidos o null no se modifican. Si se envía ejercicios, reemplaza la lista completa",
			Properties: map[string]*openapi.Schema{
				"nombre":      {Type: openapi.Nullable("string"), MinLength: openapi.Ptr(1), MaxLength: openapi.Ptr(200)},
				"descripcion": descripcion(),
				"ejercicios":  {Type: openapi.Nullable("array"), Items: openapi.SchemaRef("EjercicioCreate")},
			},
		},
		"RutinaRead": {
			Type:       "object",
			Required:   readRequired,
			Properties: read,
		},
		"RutinaReadConEjercicios": {
			Type:       "object",
			Required:   append(readRequired, "ejercicios"),
			Properties: detalle,
		},
	}
}
