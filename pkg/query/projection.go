// Package query builds parameterised PostgreSQL SELECT statements from a
// projection of view field names onto qualified columns.
package query

import (
	"fmt"
	"strings"
)

// JoinType is the SQL join keyword used by ProjectionMap.Join.
type JoinType string

const (
	InnerJoin JoinType = "JOIN"
	LeftJoin  JoinType = "LEFT JOIN"
)

type join struct {
	kind   JoinType
	schema string
	table  string
	alias  string
	on     string
}

// ProjectionMap maps view names to alias-qualified columns across a base
// table and any joined tables.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	joins   []join
	columns map[string]string
	order   []string
}

func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:  schema,
		table:   table,
		alias:   alias,
		columns: make(map[string]string),
	}
}

// Project maps column on the base table to view.
func (p *ProjectionMap) Project(column, view string) *ProjectionMap {
	return p.ProjectFrom(p.alias, column, view)
}

// ProjectFrom maps column on the table known by alias to view.
func (p *ProjectionMap) ProjectFrom(alias, column, view string) *ProjectionMap {
	qualified := alias + "." + column
	p.columns[view] = qualified
	p.order = append(p.order, qualified)
	return p
}

// Join adds a joined table. on is written verbatim after ON.
func (p *ProjectionMap) Join(schema, table, alias string, kind JoinType, on string) *ProjectionMap {
	p.joins = append(p.joins, join{kind: kind, schema: schema, table: table, alias: alias, on: on})
	return p
}

func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the base table reference, e.g. "public.policies p".
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// From returns the base table followed by every join clause.
func (p *ProjectionMap) From() string {
	if len(p.joins) == 0 {
		return p.Table()
	}

	var sb strings.Builder
	sb.WriteString(p.Table())
	for _, j := range p.joins {
		fmt.Fprintf(&sb, " %s %s.%s %s ON %s", j.kind, j.schema, j.table, j.alias, j.on)
	}
	return sb.String()
}

// Column resolves view to its qualified column. Unknown names pass through.
func (p *ProjectionMap) Column(view string) string {
	if col, ok := p.columns[view]; ok {
		return col
	}
	return view
}

// Columns returns the projected columns in declaration order.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.order, ", ")
}
