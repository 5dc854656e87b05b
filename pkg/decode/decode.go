// Package decode reads JSON request bodies and reports malformed input as
// validation errors.
package decode

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/JaimeStill/gym-rutinas/pkg/validation"
)

// JSON decodes the request body into T. Empty, malformed or oversized bodies
// and type mismatches return a *validation.Error.
func JSON[T any](r *http.Request) (T, error) {
	var result T

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&result); err != nil {
		return result, bodyError(err)
	}
	if dec.More() {
		return result, validation.New("request body must contain a single JSON value")
	}
	return result, nil
}

// PathID parses the named path value as an integer id. Zero and negative
// ids parse successfully and resolve to not found downstream.
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, validation.Field(name, "must be an integer")
	}
	return id, nil
}

func bodyError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		maxErr    *http.MaxBytesError
	)

	switch {
	case errors.Is(err, io.EOF):
		return validation.New("request body required")
	case errors.As(err, &typeErr):
		return validation.Field(typeErr.Field, "invalid type, expected "+typeErr.Type.String())
	case errors.As(err, &syntaxErr):
		return validation.New("malformed JSON at offset %d", syntaxErr.Offset)
	case errors.As(err, &maxErr):
		return validation.New("request body exceeds %d bytes", maxErr.Limit)
	case errors.As(err, new(*validation.Error)):
		return err
	default:
		return validation.New("invalid request body: %v", err)
	}
}
