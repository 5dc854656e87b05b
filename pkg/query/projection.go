// Package query builds parameterized SELECT statements from projection maps.
// Generated SQL uses $N placeholders, LIKE with an explicit escape character
// and no engine-specific operators, so the same text runs on PostgreSQL and SQLite.
package query

import "strings"

// ProjectionMap maps view field names to qualified table columns.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	byView  map[string]string
}

// NewProjectionMap creates a map for table aliased as alias. An empty schema
// leaves the table name unqualified.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		byView: make(map[string]string),
	}
}

// Project registers column under view. Columns keep registration order.
func (p *ProjectionMap) Project(column, view string) *ProjectionMap {
	qualified := p.alias + "." + column
	p.columns = append(p.columns, qualified)
	p.byView[view] = qualified
	return p
}

// Table returns the FROM clause fragment, e.g. "rutinas r".
func (p *ProjectionMap) Table() string {
	name := p.table
	if p.schema != "" {
		name = p.schema + "." + p.table
	}
	return name + " " + p.alias
}

// Column returns the qualified column for view, or view itself when unknown.
func (p *ProjectionMap) Column(view string) string {
	if col, ok := p.byView[view]; ok {
		return col
	}
	return view
}

// Columns returns the comma-separated select list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}
