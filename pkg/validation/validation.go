// Package validation wraps go-playground/validator with JSON field naming and
// a single error type that handlers map to 422 Unprocessable Entity.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed constraint on a JSON field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is returned for any request that fails shape or constraint checks.
type Error struct {
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// New creates an Error without field details.
func New(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Field creates an Error for a single field.
func Field(field, message string) *Error {
	return &Error{
		Message: "validation failed",
		Fields:  []FieldError{{Field: field, Message: message}},
	}
}

// Is reports whether err is or wraps an *Error.
func Is(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

var (
	validate = newValidator()
	custom   = map[string]string{}
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Register adds a custom string tag reported with msg when it fails.
// It must be called during package initialization.
func Register(tag, msg string, fn func(value string) bool) {
	custom[tag] = msg
	err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return convert(validate.Struct(s), "")
}

// Var validates a single value for the named field against tag.
func Var(field string, value any, tag string) error {
	return convert(validate.Var(value, tag), field)
}

func convert(err error, field string) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Message: "validation failed"}
	for _, fe := range verrs {
		name := field
		if name == "" {
			name = fieldPath(fe.Namespace())
		}
		out.Fields = append(out.Fields, FieldError{
			Field:   name,
			Message: message(fe),
		})
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	}
	if msg, ok := custom[fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("failed %q constraint", fe.Tag())
}
