// Package module mounts self-contained HTTP handlers under single-segment
// path prefixes. Each module owns its middleware chain and sees requests
// with its prefix stripped.
package module

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/JaimeStill/gym-rutinas/pkg/middleware"
)

// Module is an http.Handler bound to a prefix such as "/api".
type Module struct {
	prefix     string
	handler    http.Handler
	middleware middleware.System
	chain      func() http.Handler
}

// New creates a Module. It panics when prefix is empty, lacks a leading
// slash, or spans more than one path segment.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	m := &Module{
		prefix:     prefix,
		handler:    handler,
		middleware: middleware.New(),
	}
	m.reset()
	return m
}

func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. The first registered middleware runs outermost.
// Register middleware before the module starts serving.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
	m.reset()
}

// Handler returns the wrapped handler without prefix stripping. The chain
// is built once on first use.
func (m *Module) Handler() http.Handler {
	return m.chain()
}

func (m *Module) reset() {
	m.chain = sync.OnceValue(func() http.Handler {
		return m.middleware.Apply(m.handler)
	})
}

// Serve strips the module prefix from the request path and dispatches to Handler.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	req := r.Clone(r.Context())
	req.URL.Path = path
	req.URL.RawPath = ""

	m.Handler().ServeHTTP(w, req)
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix required")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix %q must start with /", prefix)
	}
	if strings.Count(prefix, "/") != 1 || len(prefix) == 1 {
		return fmt.Errorf("module prefix %q must be a single path segment", prefix)
	}
	return nil
}
