package decode_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/gym-rutinas/pkg/decode"
	"github.com/JaimeStill/gym-rutinas/pkg/validation"
)

type payload struct {
	Nombre string `json:"nombre"`
	Series int    `json:"series"`
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"nombre":"Fuerza A","series":4}`, false},
		{"unknown fields ignored", `{"nombre":"x","extra":true}`, false},
		{"empty body", ``, true},
		{"malformed", `{"nombre":`, true},
		{"wrong type", `{"series":"cuatro"}`, true},
		{"trailing value", `{} {}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			_, err := decode.JSON[payload](req)

			if tt.wantErr {
				var ve *validation.Error
				if !errors.As(err, &ve) {
					t.Errorf("JSON() error = %v, want *validation.Error", err)
				}
				return
			}
			if err != nil {
				t.Errorf("JSON() error = %v", err)
			}
		})
	}
}

func TestPathID(t *testing.T) {
	tests := []struct {
		value   string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, false},
		{"-3", -3, false},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/rutinas/"+tt.value, nil)
			req.SetPathValue("id", tt.value)

			got, err := decode.PathID(req, "id")
			if (err != nil) != tt.wantErr {
				t.Fatalf("PathID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("PathID() = %d, want %d", got, tt.want)
			}
		})
	}
}
