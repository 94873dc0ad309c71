package model

import (
	"fmt"
	"strings"

	"github.com/roach88/relq/internal/canonical"
	"github.com/roach88/relq/internal/queryir"
	"github.com/roach88/relq/internal/querysql"
)

// Manager is the query entry point attached to every record type.
type Manager struct {
	model *RecordType
}

// Model returns the record type the manager queries.
func (m *Manager) Model() *RecordType { return m.model }

// All returns a builder with no predicates.
func (m *Manager) All() QueryBuilder {
	return QueryBuilder{model: m.model}
}

// Where returns a builder holding exprs.
func (m *Manager) Where(exprs ...queryir.Expression) QueryBuilder {
	return m.All().Where(exprs...)
}

// QueryBuilder accumulates predicates over a record type. It is a value:
// Where returns a new builder and never modifies the receiver, so a base
// builder can be refined in several directions.
type QueryBuilder struct {
	model   *RecordType
	filters []queryir.Expression
}

// Where returns a new builder with exprs appended to the predicates.
// The predicate list is copied; builders never share backing storage.
func (q QueryBuilder) Where(exprs ...queryir.Expression) QueryBuilder {
	filters := make([]queryir.Expression, 0, len(q.filters)+len(exprs))
	filters = append(filters, q.filters...)
	filters = append(filters, exprs...)
	return QueryBuilder{model: q.model, filters: filters}
}

// Model returns the record type being queried.
func (q QueryBuilder) Model() *RecordType { return q.model }

// Filters returns a copy of the predicates in the order they were added.
func (q QueryBuilder) Filters() []queryir.Expression {
	out := make([]queryir.Expression, len(q.filters))
	copy(out, q.filters)
	return out
}

// Compile renders the query with the default compiler.
func (q QueryBuilder) Compile() (string, []any, error) {
	return q.CompileWith(querysql.NewSQLCompiler())
}

// CompileWith renders the query with c.
func (q QueryBuilder) CompileWith(c *querysql.SQLCompiler) (string, []any, error) {
	if q.model == nil {
		return "", nil, fmt.Errorf("compile query: no record type")
	}
	sql, params, err := c.CompileSelect(q.model.name, q.filters)
	if err != nil {
		return "", nil, fmt.Errorf("compile query on %s: %w", q.model.name, err)
	}
	return sql, params, nil
}

// Fingerprint returns the content hash of the statement compiled with the
// default compiler. Equal statements hash equally regardless of how their
// predicates were built.
func (q QueryBuilder) Fingerprint() (string, error) {
	sql, params, err := q.Compile()
	if err != nil {
		return "", err
	}
	return canonical.Fingerprint(sql, params)
}

// String renders the compiled statement for debugging:
//
//	<QuerySet SELECT * FROM Team WHERE (name = ?) params=["Eagles"]>
func (q QueryBuilder) String() string {
	sql, params, err := q.Compile()
	if err != nil {
		return fmt.Sprintf("<QuerySet error=%q>", err.Error())
	}
	encoded, err := canonical.Marshal(params)
	if err != nil {
		encoded = []byte(fmt.Sprint(params))
	}
	var b strings.Builder
	b.WriteString("<QuerySet ")
	b.WriteString(sql)
	b.WriteString(" params=")
	b.Write(encoded)
	b.WriteString(">")
	return b.String()
}
