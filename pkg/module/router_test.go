package module_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/gym-rutinas/pkg/module"
)

func TestRouter_Dispatch(t *testing.T) {
	r := module.NewRouter()
	r.Mount(module.New("/api", echoPath()))
	r.HandleNative("GET /healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("OK"))
	})

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"module route", "/api/rutinas", http.StatusOK, "/rutinas"},
		{"trailing slash trimmed", "/api/rutinas/", http.StatusOK, "/rutinas"},
		{"module root", "/api/", http.StatusOK, "/"},
		{"native fallback", "/healthz", http.StatusOK, "OK"},
		{"prefix is a whole segment", "/apis", http.StatusNotFound, ""},
		{"unmatched", "/unknown", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			resp := w.Result()
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantBody == "" {
				return
			}
			body, _ := io.ReadAll(resp.Body)
			if string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}
