// Package patch distinguishes omitted, null and valued JSON members for
// partial updates.
package patch

import (
	"bytes"
	"encoding/json"
)

// Field records whether a JSON member was present and whether it was null.
// The zero value is an omitted field.
type Field[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Of returns a Field set to v.
func Of[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// UnmarshalJSON is only invoked for members present in the document.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.Value = zero
		f.Null = true
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON writes null for omitted or null fields.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Present reports whether the member carried a non-null value.
func (f Field[T]) Present() bool {
	return f.Set && !f.Null
}

// Ptr returns the value as a pointer, nil when omitted or null.
func (f Field[T]) Ptr() *T {
	if !f.Present() {
		return nil
	}
	v := f.Value
	return &v
}
