package ejercicios

import "github.com/JaimeStill/gym-rutinas/pkg/openapi"

type spec struct {
	Add    *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

var Spec = spec{
	Add: &openapi.Operation{
		Summary:     "Agregar ejercicio",
		Description: "Agrega un ejercicio a una rutina existente",
		OperationID: "agregarEjercicio",
		Parameters: []*openapi.Parameter{
			openapi.PathID("id", "ID de la rutina"),
		},
		RequestBody: openapi.RequestBodyJSON("EjercicioCreate", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Ejercicio creado", "EjercicioRead"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Actualizar ejercicio",
		Description: "Actualiza solo los campos enviados. null limpia peso y notas",
		OperationID: "actualizarEjercicio",
		Parameters: []*openapi.Parameter{
			openapi.PathID("id", "ID del ejercicio"),
		},
		RequestBody: openapi.RequestBodyJSON("EjercicioUpdate", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Ejercicio actualizado", "EjercicioRead"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Eliminar ejercicio",
		OperationID: "eliminarEjercicio",
		Parameters: []*openapi.Parameter{
			openapi.PathID("id", "ID del ejercicio"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Ejercicio eliminado"},
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
}

func diaSemanaSchema() *openapi.Schema {
	enum := make([]any, len(Dias))
	for i, d := range Dias {
		enum[i] = string(d)
	}
	return &openapi.Schema{Type: "string", Enum: enum}
}

func fieldSchemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"nombre":       {Type: "string", MinLength: openapi.Ptr(1), MaxLength: openapi.Ptr(200)},
		"dia_semana":   {Ref: "#/components/schemas/DiaSemana"},
		"series":       {Type: "integer", Minimum: openapi.Ptr(1.0), Maximum: openapi.Ptr(100.0)},
		"repeticiones": {Type: "integer", Minimum: openapi.Ptr(1.0), Maximum: openapi.Ptr(1000.0)},
		"peso":         {Type: openapi.Nullable("number"), ExclMinimum: openapi.Ptr(0.0), Maximum: openapi.Ptr(500.0)},
		"notas":        {Type: openapi.Nullable("string"), MaxLength: openapi.Ptr(500)},
		"orden":        {Type: "integer", Minimum: openapi.Ptr(0.0), Default: 0},
	}
}

func withID(props map[string]*openapi.Schema, extra ...string) map[string]*openapi.Schema {
	props["id"] = &openapi.Schema{Type: "integer", Format: "int64"}
	for _, name := range extra {
		props[name] = &openapi.Schema{Type: "integer", Format: "int64"}
	}
	return props
}

// Schemas returns the component schemas referenced by exercise operations
// and by nested routine payloads.
func (spec) Schemas() map[string]*openapi.Schema {
	required := []string{"nombre", "dia_semana", "series", "repeticiones"}
	read := []string{"id", "nombre", "dia_semana", "series", "repeticiones", "peso", "notas", "orden"}

	return map[string]*openapi.Schema{
		"DiaSemana": diaSemanaSchema(),
		"EjercicioCreate": {
			Type:       "object",
			Required:   required,
			Properties: fieldSchemas(),
		},
		"EjercicioUpdate": {
			Type:        "object",
			Description: "Todos los campos son opcionales",
			Properties:  fieldSchemas(),
		},
		"EjercicioReadSinRutina": {
			Type:       "object",
			Required:   read,
			Properties: withID(fieldSchemas()),
		},
		"EjercicioRead": {
			Type:       "object",
			Required:   append(read, "rutina_id"),
			Properties: withID(fieldSchemas(), "rutina_id"),
		},
	}
}
