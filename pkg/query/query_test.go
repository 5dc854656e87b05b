package query_test

import (
	"testing"

	"github.com/JaimeStill/gym-rutinas/pkg/query"
)

func projection() *query.ProjectionMap {
	return query.NewProjectionMap("", "rutinas", "r").
		Project("id", "ID").
		Project("nombre", "Nombre").
		Project("nombre_clave", "Clave").
		Project("fecha_creacion", "FechaCreacion")
}

func TestProjectionMap(t *testing.T) {
	pm := projection()

	if got := pm.Table(); got != "rutinas r" {
		t.Errorf("Table() = %q, want %q", got, "rutinas r")
	}
	if got := query.NewProjectionMap("public", "rutinas", "r").Table(); got != "public.rutinas r" {
		t.Errorf("Table() with schema = %q, want %q", got, "public.rutinas r")
	}
	if got := pm.Column("Nombre"); got != "r.nombre" {
		t.Errorf("Column(Nombre) = %q, want %q", got, "r.nombre")
	}
	if got := pm.Column("unknown"); got != "unknown" {
		t.Errorf("Column(unknown) = %q, want %q", got, "unknown")
	}
	if got := pm.Columns(); got != "r.id, r.nombre, r.nombre_clave, r.fecha_creacion" {
		t.Errorf("Columns() = %q", got)
	}
}

func TestBuilder_Build(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *query.Builder
		wantSQL  string
		wantArgs int
	}{
		{
			name: "default sort",
			build: func() *query.Builder {
				return query.NewBuilder(projection(),
					query.SortField{Field: "FechaCreacion", Descending: true},
					query.SortField{Field: "ID", Descending: true})
			},
			wantSQL: "SELECT r.id, r.nombre, r.nombre_clave, r.fecha_creacion FROM rutinas r ORDER BY r.fecha_creacion DESC, r.id DESC",
		},
		{
			name: "contains",
			build: func() *query.Builder {
				return query.NewBuilder(projection(), query.SortField{Field: "Nombre"}).
					WhereContains("Clave", "fuer")
			},
			wantSQL:  `SELECT r.id, r.nombre, r.nombre_clave, r.fecha_creacion FROM rutinas r WHERE r.nombre_clave LIKE $1 ESCAPE '\' ORDER BY r.nombre ASC`,
			wantArgs: 1,
		},
		{
			name: "numbered placeholders",
			build: func() *query.Builder {
				return query.NewBuilder(projection()).
					WhereEquals("Clave", "fuerza a").
					WhereNotEquals("ID", int64(3))
			},
			wantSQL:  "SELECT r.id, r.nombre, r.nombre_clave, r.fecha_creacion FROM rutinas r WHERE r.nombre_clave = $1 AND r.id <> $2",
			wantArgs: 2,
		},
		{
			name: "nil and empty ignored",
			build: func() *query.Builder {
				return query.NewBuilder(projection()).
					WhereEquals("ID", nil).
					WhereContains("Clave", "")
			},
			wantSQL: "SELECT r.id, r.nombre, r.nombre_clave, r.fecha_creacion FROM rutinas r",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.build().Build()
			if sql != tt.wantSQL {
				t.Errorf("Build() sql =\n%q\nwant\n%q", sql, tt.wantSQL)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("Build() args = %v, want %d", args, tt.wantArgs)
			}
		})
	}
}

func TestBuilder_BuildExists(t *testing.T) {
	sql, args := query.NewBuilder(projection()).WhereEquals("ID", int64(9)).BuildExists()

	want := "SELECT EXISTS (SELECT 1 FROM rutinas r WHERE r.id = $1)"
	if sql != want {
		t.Errorf("BuildExists() = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != int64(9) {
		t.Errorf("BuildExists() args = %v, want [9]", args)
	}
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fuer", "%fuer%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`c:\x`, `%c:\\x%`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := query.ContainsPattern(tt.in); got != tt.want {
				t.Errorf("ContainsPattern(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
