package module_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/gym-rutinas/pkg/module"
)

func echoPath() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	})
}

func TestNew_InvalidPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"empty", ""},
		{"no leading slash", "api"},
		{"root only", "/"},
		{"multi level", "/api/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("New(%q) did not panic", tt.prefix)
				}
			}()
			module.New(tt.prefix, echoPath())
		})
	}
}

func TestModule_Serve_StripsPrefix(t *testing.T) {
	m := module.New("/api", echoPath())

	tests := []struct {
		path     string
		wantPath string
	}{
		{"/api", "/"},
		{"/api/rutinas", "/rutinas"},
		{"/api/rutinas/7/ejercicios", "/rutinas/7/ejercicios"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			m.Serve(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			body, _ := io.ReadAll(w.Result().Body)
			if string(body) != tt.wantPath {
				t.Errorf("path = %q, want %q", body, tt.wantPath)
			}
		})
	}
}

func TestModule_MiddlewareOrder(t *testing.T) {
	var order []string

	m := module.New("/api", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))

	for _, name := range []string{"outer", "inner"} {
		m.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		})
	}

	m.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := []string{"outer", "inner", "handler"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestModule_Serve_BuildsChainOnce(t *testing.T) {
	built := 0

	m := module.New("/api", echoPath())
	m.Use(func(next http.Handler) http.Handler {
		built++
		return next
	})

	for _, path := range []string{"/api/rutinas", "/api/rutinas/1", "/api"} {
		m.Serve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if built != 1 {
		t.Errorf("middleware built %d times, want 1", built)
	}
}
