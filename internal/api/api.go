// Package api assembles the REST module: domain systems, routes, the
// OpenAPI document and the middleware chain mounted under the base path.
package api

import (
	"net/http"

	"github.com/JaimeStill/gym-rutinas/internal/config"
	"github.com/JaimeStill/gym-rutinas/internal/infrastructure"
	"github.com/JaimeStill/gym-rutinas/pkg/middleware"
	"github.com/JaimeStill/gym-rutinas/pkg/module"
	"github.com/JaimeStill/gym-rutinas/pkg/openapi"
)

func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, cfg.API.BasePath)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.RequestID())
	m.Use(middleware.Logger(runtime.Logger))
	if cfg.Metrics.IsEnabled() {
		m.Use(middleware.Metrics(runtime.Metrics.NewHTTP()))
	}
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.MaxBytes(cfg.API.MaxBodySizeBytes()))

	return m, nil
}
