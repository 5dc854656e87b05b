// Package middleware provides composable http.Handler wrappers shared by
// modules: request ids, request logging, metrics, CORS and body limits.
package middleware

import "net/http"

// System accumulates middleware and applies them around a handler.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type system struct {
	stack []func(http.Handler) http.Handler
}

func New() System {
	return &system{}
}

func (s *system) Use(mw func(http.Handler) http.Handler) {
	s.stack = append(s.stack, mw)
}

// Apply wraps handler so the first registered middleware runs outermost.
func (s *system) Apply(handler http.Handler) http.Handler {
	for i := len(s.stack) - 1; i >= 0; i-- {
		handler = s.stack[i](handler)
	}
	return handler
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
