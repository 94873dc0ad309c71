package querysql

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/roach88/relq/internal/queryir"
)

// exprSqlizer adapts an expression tree to squirrel. ToSql returns "?"
// placeholders; the enclosing squirrel statement applies its own format.
type exprSqlizer struct {
	c    *SQLCompiler
	expr queryir.Expression
}

func (s exprSqlizer) ToSql() (string, []interface{}, error) {
	return s.c.compile(s.expr)
}

// conjunctionSqlizer renders "(p1) AND (p2) ..." like CompileSelect.
type conjunctionSqlizer struct {
	c     *SQLCompiler
	preds []queryir.Expression
}

func (s conjunctionSqlizer) ToSql() (string, []interface{}, error) {
	return s.c.compileConjunction(s.preds)
}

// Sqlizer wraps expr for use in squirrel builders, e.g.
//
//	sq.Select("id").From("Match").Where(c.Sqlizer(expr))
func (c *SQLCompiler) Sqlizer(expr queryir.Expression) sq.Sqlizer {
	return exprSqlizer{c: c, expr: expr}
}

// SelectBuilder returns a squirrel builder equivalent to CompileSelect, for
// callers that go on to add columns, ordering or limits.
func (c *SQLCompiler) SelectBuilder(table string, preds []queryir.Expression) sq.SelectBuilder {
	b := sq.StatementBuilder.PlaceholderFormat(c.placeholderFormat()).Select("*").From(table)
	if len(preds) == 0 {
		return b
	}
	copied := make([]queryir.Expression, len(preds))
	copy(copied, preds)
	return b.Where(conjunctionSqlizer{c: c, preds: copied})
}

func (c *SQLCompiler) placeholderFormat() sq.PlaceholderFormat {
	if c.Dialect.Placeholder == nil {
		return sq.Question
	}
	return c.Dialect.Placeholder
}
