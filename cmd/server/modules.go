package main

import (
	"context"
	"net/http"
	"time"

	"github.com/JaimeStill/gym-rutinas/internal/api"
	"github.com/JaimeStill/gym-rutinas/internal/config"
	"github.com/JaimeStill/gym-rutinas/internal/infrastructure"
	"github.com/JaimeStill/gym-rutinas/pkg/handlers"
	"github.com/JaimeStill/gym-rutinas/pkg/module"
	"github.com/JaimeStill/gym-rutinas/web/scalar"
)

const docsPrefix = "/docs"

type Modules struct {
	API  *module.Module
	Docs *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	docsModule, err := scalar.NewModule(
		docsPrefix,
		cfg.API.OpenAPI.Title,
		cfg.API.BasePath+"/openapi.json",
	)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API:  apiModule,
		Docs: docsModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Docs)
}

type rootInfo struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, rootInfo{
			Message: "API de Rutinas de Gimnasio",
			Docs:    docsPrefix,
		})
	})

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := infra.Database.Ping(ctx); err != nil {
			infra.Logger.Warn("readiness check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	if cfg.Metrics.IsEnabled() {
		router.HandleNative("GET "+cfg.Metrics.Path, infra.Metrics.Handler().ServeHTTP)
	}

	return router
}
