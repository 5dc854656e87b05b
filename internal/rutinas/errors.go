package rutinas

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/gym-rutinas/pkg/validation"
)

// Domain errors for routine operations.
var (
	ErrNotFound  = errors.New("Rutina no encontrada")
	ErrDuplicate = errors.New("Ya existe una rutina con ese nombre. El nombre debe ser único.")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
// Duplicate names answer 400 for compatibility with existing clients.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
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
