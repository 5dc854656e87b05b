// Package routes declares HTTP routes alongside their OpenAPI operations so
// registration on a mux and documentation stay in one place.
package routes

import (
	"net/http"

	"github.com/JaimeStill/gym-rutinas/pkg/openapi"
)

// Route is a single method and pattern bound to a handler. Pattern is
// relative to the enclosing group's prefix.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// AddToSpec documents every route of the group and its children under
// basePath. Operations without explicit tags inherit the group's tags.
func (g Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addToSpec(basePath, spec)
}

func (g Group) addToSpec(prefix string, spec *openapi.Spec) {
	full := prefix + g.Prefix

	for _, tag := range g.Tags {
		spec.AddTag(tag, g.Description)
	}

	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}

		spec.AddOperation(full+route.Pattern, route.Method, &op)
	}

	for _, child := range g.Children {
		child.addToSpec(full, spec)
	}
}

func (g Group) register(mux *http.ServeMux, prefix string) {
	full := prefix + g.Prefix

	for _, route := range g.Routes {
		mux.HandleFunc(route.Method+" "+full+route.Pattern, route.Handler)
	}

	for _, child := range g.Children {
		child.register(mux, full)
	}
}

// Register binds each group to mux relative to the module root and documents
// it in spec under basePath, the prefix the module is mounted at.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		group.register(mux, "")
		if spec != nil {
			group.AddToSpec(basePath, spec)
		}
	}
}
