// Package scalar serves the interactive API reference rendered by Scalar.
// The page is embedded at compile time and points at the API's OpenAPI document.
package scalar

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/gym-rutinas/pkg/module"
)

//go:embed index.html
var indexHTML string

var page = template.Must(template.New("index").Parse(indexHTML))

// Page renders the reference page once for the given title and spec URL.
func Page(title, specURL string) ([]byte, error) {
	var buf bytes.Buffer
	err := page.Execute(&buf, struct {
		Title   string
		SpecURL string
	}{title, specURL})
	return buf.Bytes(), err
}

// Handler serves a pre-rendered page.
func Handler(body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}

// NewModule mounts the reference page at prefix.
func NewModule(prefix, title, specURL string) (*module.Module, error) {
	body, err := Page(title, specURL)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", Handler(body))

	return module.New(prefix, mux), nil
}
