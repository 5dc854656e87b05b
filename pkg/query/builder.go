package query

import (
	"fmt"
	"strings"
)

// SortField names a projected view field and its direction.
type SortField struct {
	Field      string
	Descending bool
}

type condition struct {
	clause string
	args   []any
}

// Builder constructs SQL queries using a fluent API with automatic parameter numbering.
type Builder struct {
	projection *ProjectionMap
	conditions []condition
	sort       []SortField
}

// NewBuilder creates a Builder with the default sort order.
func NewBuilder(projection *ProjectionMap, sort ...SortField) *Builder {
	return &Builder{
		projection: projection,
		sort:       sort,
	}
}

// WhereEquals adds an equality condition. Nil values are ignored.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if value == nil {
		return b
	}
	return b.where(fmt.Sprintf("%s = $%%d", b.projection.Column(field)), value)
}

// WhereNotEquals adds an inequality condition. Nil values are ignored.
func (b *Builder) WhereNotEquals(field string, value any) *Builder {
	if value == nil {
		return b
	}
	return b.where(fmt.Sprintf("%s <> $%%d", b.projection.Column(field)), value)
}

// WhereContains adds a LIKE condition matching value anywhere in the field.
// Wildcards in value match literally. Empty values are ignored.
func (b *Builder) WhereContains(field, value string) *Builder {
	if value == "" {
		return b
	}
	return b.where(
		fmt.Sprintf(`%s LIKE $%%d ESCAPE '\'`, b.projection.Column(field)),
		ContainsPattern(value),
	)
}

// Build returns the SELECT statement and its arguments.
func (b *Builder) Build() (string, []any) {
	where, args := b.buildWhere()
	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s",
		b.projection.Columns(),
		b.projection.Table(),
		where,
		b.buildOrderBy(),
	)
	return sql, args
}

// BuildExists returns a query yielding a single boolean row.
func (b *Builder) BuildExists() (string, []any) {
	where, args := b.buildWhere()
	return fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s%s)", b.projection.Table(), where), args
}

// ContainsPattern escapes LIKE wildcards in s and wraps it in %.
func ContainsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func (b *Builder) where(clause string, args ...any) *Builder {
	b.conditions = append(b.conditions, condition{clause: clause, args: args})
	return b
}

func (b *Builder) buildOrderBy() string {
	if len(b.sort) == 0 {
		return ""
	}

	parts := make([]string, len(b.sort))
	for i, s := range b.sort {
		dir := "ASC"
		if s.Descending {
			dir = "DESC"
		}
		parts[i] = b.projection.Column(s.Field) + " " + dir
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func (b *Builder) buildWhere() (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(b.conditions))
	args := make([]any, 0, len(b.conditions))

	for _, cond := range b.conditions {
		clause := cond.clause
		for _, arg := range cond.args {
			args = append(args, arg)
			clause = strings.Replace(clause, "$%d", fmt.Sprintf("$%d", len(args)), 1)
		}
		clauses = append(clauses, clause)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}
