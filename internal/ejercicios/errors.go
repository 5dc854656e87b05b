package ejercicios

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/gym-rutinas/pkg/validation"
)

// Domain errors for exercise operations.
var (
	ErrNotFound       = errors.New("Ejercicio no encontrado")
	ErrRutinaNotFound = errors.New("Rutina no encontrada")
	ErrDuplicate      = errors.New("ejercicio already exists")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrRutinaNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusBadRequest
	}
	if validation.Is(err) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
