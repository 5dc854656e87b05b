package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/gym-rutinas/pkg/openapi"
	"github.com/JaimeStill/gym-rutinas/pkg/routes"
)

func noop(w http.ResponseWriter, r *http.Request) {}

func TestGroup_AddToSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/rutinas",
		Tags:   []string{"Rutinas"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: noop, OpenAPI: &openapi.Operation{Summary: "List"}},
			{Method: "POST", Pattern: "", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Create"}},
		},
	}

	group.AddToSpec("/api", spec)

	item := spec.Paths["/api/rutinas"]
	if item == nil {
		t.Fatal("path /api/rutinas not added to spec")
	}
	if item.Get == nil || item.Get.Summary != "List" {
		t.Errorf("GET = %+v, want List", item.Get)
	}
	if item.Post == nil {
		t.Error("POST operation not added")
	}
}

func TestGroup_AddToSpec_Tags(t *testing.T) {
	tests := []struct {
		name     string
		explicit []string
		want     string
	}{
		{"inherits group tags", nil, "Rutinas"},
		{"preserves explicit tags", []string{"Admin"}, "Admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := openapi.NewSpec("Test API", "1.0.0")
			group := routes.Group{
				Prefix: "/rutinas",
				Tags:   []string{"Rutinas"},
				Routes: []routes.Route{
					{Method: "GET", Handler: noop, OpenAPI: &openapi.Operation{Tags: tt.explicit}},
				},
			}

			group.AddToSpec("", spec)

			tags := spec.Paths["/rutinas"].Get.Tags
			if len(tags) != 1 || tags[0] != tt.want {
				t.Errorf("Tags = %v, want [%s]", tags, tt.want)
			}
		})
	}
}

func TestGroup_AddToSpec_Children(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/rutinas",
		Routes: []routes.Route{
			{Method: "GET", Handler: noop, OpenAPI: &openapi.Operation{Summary: "List"}},
		},
		Children: []routes.Group{
			{
				Prefix: "/{id}/ejercicios",
				Routes: []routes.Route{
					{Method: "POST", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Add"}},
				},
			},
		},
	}

	group.AddToSpec("/api", spec)

	if spec.Paths["/api/rutinas/{id}/ejercicios"] == nil {
		t.Fatal("child path not added")
	}
	if got := spec.Paths["/api/rutinas/{id}/ejercicios"].Post.Summary; got != "Add" {
		t.Errorf("child summary = %q, want Add", got)
	}
}

func TestGroup_AddToSpec_SkipsUndocumented(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/internal",
		Routes: []routes.Route{{Method: "GET", Handler: noop}},
	}

	group.AddToSpec("/api", spec)

	if _, ok := spec.Paths["/api/internal"]; ok {
		t.Error("route without OpenAPI operation should not be documented")
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/rutinas",
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "/{id}",
				Handler: func(w http.ResponseWriter, r *http.Request) {
					w.Write([]byte(r.PathValue("id")))
				},
				OpenAPI: &openapi.Operation{Summary: "Find"},
			},
		},
	}

	routes.Register(mux, "/api", spec, group)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rutinas/42", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "42" {
		t.Errorf("body = %q, want 42", rec.Body.String())
	}
	if spec.Paths["/api/rutinas/{id}"] == nil {
		t.Error("spec path not registered under base path")
	}
}
