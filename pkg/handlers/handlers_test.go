package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/gym-rutinas/pkg/handlers"
	"github.com/JaimeStill/gym-rutinas/pkg/validation"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()

	handlers.RespondJSON(w, http.StatusCreated, map[string]int{"id": 1})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if w.Body.String() != "{\"id\":1}\n" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		err        error
		wantError  string
		wantFields int
	}{
		{"not found", http.StatusNotFound, errors.New("rutina not found"), "rutina not found", 0},
		{"server error hidden", http.StatusInternalServerError, errors.New("pq: connection refused"), "Internal Server Error", 0},
		{"validation fields", http.StatusUnprocessableEntity, validation.Field("nombre", "field required"), "validation failed", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			handlers.RespondError(w, discard(), tt.status, tt.err)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}

			var body handlers.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error != tt.wantError {
				t.Errorf("error = %q, want %q", body.Error, tt.wantError)
			}
			if len(body.Fields) != tt.wantFields {
				t.Errorf("fields = %v, want %d entries", body.Fields, tt.wantFields)
			}
		})
	}
}
