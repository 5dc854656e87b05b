// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/gym-rutinas/pkg/validation"
)

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// RespondJSON writes a JSON response with the given status code and data.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs err and writes an ErrorResponse. Server errors are
// logged at error level and answered with a generic message; client errors
// are logged at debug level and echo the error text.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	body := ErrorResponse{Error: err.Error()}

	if status >= http.StatusInternalServerError {
		logger.Error("handler error", "error", err, "status", status)
		body.Error = http.StatusText(status)
	} else {
		logger.Debug("handler error", "error", err, "status", status)
	}

	var ve *validation.Error
	if errors.As(err, &ve) {
		body.Error = ve.Message
		body.Fields = ve.Fields
	}

	RespondJSON(w, status, body)
}
