package api

import (
	"net/http"

	"github.com/JaimeStill/gym-rutinas/internal/ejercicios"
	"github.com/JaimeStill/gym-rutinas/internal/rutinas"
	"github.com/JaimeStill/gym-rutinas/pkg/openapi"
	"github.com/JaimeStill/gym-rutinas/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	basePath string,
) {
	rutinasHandler := rutinas.NewHandler(domain.Rutinas, runtime.Logger)
	ejerciciosHandler := ejercicios.NewHandler(domain.Ejercicios, runtime.Logger)

	spec.Components.AddSchemas(ejercicios.Spec.Schemas())
	spec.Components.AddSchemas(rutinas.Spec.Schemas())

	routes.Register(
		mux,
		basePath,
		spec,
		rutinasHandler.Routes(),
		ejerciciosHandler.Routes(),
	)
}
