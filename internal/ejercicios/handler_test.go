package ejercicios_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/gym-rutinas/internal/ejercicios"
	"github.com/JaimeStill/gym-rutinas/pkg/handlers"
	"github.com/JaimeStill/gym-rutinas/pkg/routes"
)

func setupHandler(t *testing.T) (http.Handler, int64) {
	t.Helper()

	db := setupDB(t)
	rutinaID := insertRutina(t, db, "fuerza")

	h := ejercicios.NewHandler(ejercicios.New(db, discardLogger()), discardLogger())
	mux := http.NewServeMux()
	routes.Register(mux, "/api", nil, h.Routes())

	return mux, rutinaID
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const sentadilla = `{"nombre":"Sentadilla","dia_semana":"Lunes","series":4,"repeticiones":10,"peso":60,"notas":"profunda","orden":2}`

func TestHandler_AddUpdateDelete(t *testing.T) {
	h, rutinaID := setupHandler(t)

	rec := do(t, h, http.MethodPost, "/rutinas/"+itoa(rutinaID)+"/ejercicios", sentadilla)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created ejercicios.EjercicioRutina
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, rutinaID, created.RutinaID)
	assert.Equal(t, 2, created.Orden)

	rec = do(t, h, http.MethodPut, "/ejercicios/"+itoa(created.ID), `{"series":5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated ejercicios.EjercicioRutina
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 5, updated.Series)
	assert.Equal(t, 10, updated.Repeticiones)
	assert.Equal(t, created.Peso, updated.Peso)
	assert.Equal(t, created.Notas, updated.Notas)
	assert.Equal(t, 2, updated.Orden)

	rec = do(t, h, http.MethodDelete, "/ejercicios/"+itoa(created.ID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/ejercicios/"+itoa(created.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ejercicios.ErrNotFound.Error(), body.Error)
}

func TestHandler_Errors(t *testing.T) {
	h, rutinaID := setupHandler(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"add to missing rutina", http.MethodPost, "/rutinas/999/ejercicios", sentadilla, http.StatusNotFound},
		{"add bad rutina id", http.MethodPost, "/rutinas/abc/ejercicios", sentadilla, http.StatusUnprocessableEntity},
		{"add invalid dia", http.MethodPost, "/rutinas/" + itoa(rutinaID) + "/ejercicios",
			`{"nombre":"x","dia_semana":"Lun","series":1,"repeticiones":1}`, http.StatusUnprocessableEntity},
		{"add malformed body", http.MethodPost, "/rutinas/" + itoa(rutinaID) + "/ejercicios", `{`, http.StatusUnprocessableEntity},
		{"add wrong type", http.MethodPost, "/rutinas/" + itoa(rutinaID) + "/ejercicios",
			`{"nombre":"x","dia_semana":"Lunes","series":"4","repeticiones":1}`, http.StatusUnprocessableEntity},
		{"update missing", http.MethodPut, "/ejercicios/999", `{"series":5}`, http.StatusNotFound},
		{"update null required", http.MethodPut, "/ejercicios/1", `{"series":null}`, http.StatusUnprocessableEntity},
		{"update zero id", http.MethodPut, "/ejercicios/0", `{"series":5}`, http.StatusNotFound},
		{"delete negative id", http.MethodDelete, "/ejercicios/-1", "", http.StatusNotFound},
		{"delete bad id", http.MethodDelete, "/ejercicios/uno", "", http.StatusUnprocessableEntity},
		{"add to zero rutina", http.MethodPost, "/rutinas/0/ejercicios", sentadilla, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
