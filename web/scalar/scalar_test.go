package scalar_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/gym-rutinas/pkg/module"
	"github.com/JaimeStill/gym-rutinas/web/scalar"
)

func TestPage_EmbedsSpecURL(t *testing.T) {
	body, err := scalar.Page("Rutinas <API>", "/api/openapi.json")
	if err != nil {
		t.Fatalf("Page: %v", err)
	}

	html := string(body)
	if !strings.Contains(html, `data-url="/api/openapi.json"`) {
		t.Errorf("spec url missing from page:\n%s", html)
	}
	if !strings.Contains(html, "Rutinas &lt;API&gt;") {
		t.Errorf("title not escaped:\n%s", html)
	}
}

func TestNewModule_ServesIndex(t *testing.T) {
	m, err := scalar.NewModule("/docs", "Docs", "/api/openapi.json")
	if err != nil {
		t.Fatalf("NewModule: %v", err)
	}

	router := module.NewRouter()
	router.Mount(m)

	for _, path := range []string{"/docs", "/docs/"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("GET %s content type = %q", path, ct)
		}
	}
}
