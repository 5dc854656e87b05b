package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/gym-rutinas/internal/config"
	"github.com/JaimeStill/gym-rutinas/internal/infrastructure"
	"github.com/JaimeStill/gym-rutinas/pkg/database"
	"github.com/JaimeStill/gym-rutinas/pkg/module"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Database: database.Config{
			Engine: database.EngineSQLite,
			Path:   filepath.Join(t.TempDir(), "server.db"),
		},
	}
	require.NoError(t, cfg.Finalize())
	return cfg
}

func newTestRouter(t *testing.T, cfg *config.Config) (*module.Router, *infrastructure.Infrastructure) {
	t.Helper()

	infra, err := infrastructure.New(cfg)
	require.NoError(t, err)

	modules, err := NewModules(infra, cfg)
	require.NoError(t, err)

	router := buildRouter(infra, cfg)
	modules.Mount(router)
	return router, infra
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouter_RootInfo(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))

	rec := get(router, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"API de Rutinas de Gimnasio","docs":"/docs"}`, rec.Body.String())
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))

	rec := get(router, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_Readiness(t *testing.T) {
	router, infra := newTestRouter(t, testConfig(t))

	rec := get(router, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	require.NoError(t, infra.Start())
	t.Cleanup(func() { infra.Lifecycle.Shutdown(5 * time.Second) })
	infra.Lifecycle.WaitForStartup()

	rec = get(router, "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	cfg := testConfig(t)
	router, infra := newTestRouter(t, cfg)
	require.NoError(t, infra.Start())
	t.Cleanup(func() { infra.Lifecycle.Shutdown(5 * time.Second) })

	get(router, "/api/rutinas")

	rec := get(router, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "gym_rutinas_http_requests_total")
	assert.Contains(t, body, `route="GET /rutinas"`)
	assert.Contains(t, body, "go_sql_open_connections")
}

func TestRouter_MetricsDisabled(t *testing.T) {
	cfg := testConfig(t)
	disabled := false
	cfg.Metrics.Enabled = &disabled

	router, _ := newTestRouter(t, cfg)

	rec := get(router, "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Docs(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))

	rec := get(router, "/docs")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `data-url="/api/openapi.json"`))
}
