package querysql

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/roach88/relq/internal/queryir"
)

// SQLCompiler compiles expression trees to parameterized SQL.
//
// CRITICAL: Values are never interpolated into the text. Every value is
// bound to a placeholder and returned in params, in placeholder order.
type SQLCompiler struct {
	Dialect Dialect
}

// Option configures a SQLCompiler.
type Option func(*SQLCompiler)

// WithDialect selects the dialect used for placeholders and keywords.
func WithDialect(d Dialect) Option {
	return func(c *SQLCompiler) { c.Dialect = d }
}

// NewSQLCompiler creates a compiler for the Default dialect unless an
// option says otherwise.
func NewSQLCompiler(opts ...Option) *SQLCompiler {
	c := &SQLCompiler{Dialect: Default}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CompileExpr compiles a single expression tree.
// Returns (sql, params, error); nothing partial is returned on error.
func (c *SQLCompiler) CompileExpr(expr queryir.Expression) (string, []any, error) {
	sql, params, err := c.compile(expr)
	if err != nil {
		return "", nil, err
	}
	return c.placeholders(sql, params)
}

// CompileSelect compiles a full SELECT over table. Each predicate is
// parenthesized and the predicates are joined with AND.
//
//	SELECT * FROM Match
//	SELECT * FROM Match WHERE (p1) AND (p2)
func (c *SQLCompiler) CompileSelect(table string, preds []queryir.Expression) (string, []any, error) {
	if err := checkIdentifier(table); err != nil {
		return "", nil, err
	}
	sql := "SELECT * FROM " + table
	if len(preds) == 0 {
		return sql, []any{}, nil
	}

	where, params, err := c.compileConjunction(preds)
	if err != nil {
		return "", nil, err
	}
	return c.placeholders(sql+" WHERE "+where, params)
}

// compileConjunction renders "(p1) AND (p2) ..." with "?" placeholders.
func (c *SQLCompiler) compileConjunction(preds []queryir.Expression) (string, []any, error) {
	parts := make([]string, 0, len(preds))
	params := []any{}
	for i, pred := range preds {
		sql, p, err := c.compile(pred)
		if err != nil {
			return "", nil, fmt.Errorf("predicate %d: %w", i, err)
		}
		parts = append(parts, "("+sql+")")
		params = append(params, p...)
	}
	return strings.Join(parts, " AND "), params, nil
}

// placeholders rewrites "?" markers once over the finished statement so
// numbering formats count from 1 across all predicates.
func (c *SQLCompiler) placeholders(sql string, params []any) (string, []any, error) {
	if c.Dialect.Placeholder == nil {
		return sql, params, nil
	}
	out, err := c.Dialect.Placeholder.ReplacePlaceholders(sql)
	if err != nil {
		return "", nil, fmt.Errorf("replace placeholders: %w", err)
	}
	return out, params, nil
}

func checkIdentifier(name string) error {
	if strings.Contains(name, "?") {
		return &InvalidIdentifierError{Name: name}
	}
	return nil
}

// compile renders expr with "?" placeholders.
func (c *SQLCompiler) compile(expr queryir.Expression) (string, []any, error) {
	if expr == nil {
		return "", nil, ErrNilExpression
	}

	switch e := expr.(type) {
	case queryir.Leaf:
		return c.compileLeaf(e)
	case *queryir.Leaf:
		if e == nil {
			return "", nil, ErrNilExpression
		}
		return c.compileLeaf(*e)
	case queryir.Composite:
		return c.compileComposite(e)
	case *queryir.Composite:
		if e == nil {
			return "", nil, ErrNilExpression
		}
		return c.compileComposite(*e)
	default:
		return "", nil, fmt.Errorf("unsupported expression type: %T", expr)
	}
}

// compileComposite renders "(left) OP (right)"; params are left then right.
func (c *SQLCompiler) compileComposite(comp queryir.Composite) (string, []any, error) {
	if !comp.BoolOp.Known() {
		return "", nil, &UnknownOperatorError{Op: string(comp.BoolOp)}
	}

	leftSQL, leftParams, err := c.compile(comp.Left)
	if err != nil {
		return "", nil, err
	}
	rightSQL, rightParams, err := c.compile(comp.Right)
	if err != nil {
		return "", nil, err
	}

	sql := fmt.Sprintf("(%s) %s (%s)", leftSQL, comp.BoolOp, rightSQL)
	params := make([]any, 0, len(leftParams)+len(rightParams))
	params = append(params, leftParams...)
	params = append(params, rightParams...)
	return sql, params, nil
}

var comparisonSymbols = map[queryir.Op]string{
	queryir.OpExact: "=",
	queryir.OpNe:    "<>",
	queryir.OpGt:    ">",
	queryir.OpGte:   ">=",
	queryir.OpLt:    "<",
	queryir.OpLte:   "<=",
}

// compileLeaf renders a single predicate on the column named by the path.
func (c *SQLCompiler) compileLeaf(leaf queryir.Leaf) (string, []any, error) {
	col := leaf.Path.Column(c.separator())
	if err := checkIdentifier(col); err != nil {
		return "", nil, err
	}

	if symbol, ok := comparisonSymbols[leaf.Op]; ok {
		return fmt.Sprintf("%s %s ?", col, symbol), []any{leaf.Value}, nil
	}

	switch leaf.Op {
	case queryir.OpIn:
		values, ok := listValues(leaf.Value)
		if !ok {
			return "", nil, fmt.Errorf("%s on %s: want a list, got %T", leaf.Op, col, leaf.Value)
		}
		if len(values) == 0 {
			// Never matches.
			return "1 = 0", []any{}, nil
		}
		marks := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
		return fmt.Sprintf("%s IN (%s)", col, marks), values, nil

	case queryir.OpIsNull:
		flag, ok := leaf.Value.(bool)
		if !ok {
			return "", nil, fmt.Errorf("%s on %s: want a bool, got %T", leaf.Op, col, leaf.Value)
		}
		if flag {
			return col + " IS NULL", []any{}, nil
		}
		return col + " IS NOT NULL", []any{}, nil

	case queryir.OpContains, queryir.OpIContains:
		return c.compilePattern(leaf, col, "%"+fmt.Sprint(leaf.Value)+"%")
	case queryir.OpStartsWith, queryir.OpIStartsWith:
		return c.compilePattern(leaf, col, fmt.Sprint(leaf.Value)+"%")
	case queryir.OpEndsWith, queryir.OpIEndsWith:
		return c.compilePattern(leaf, col, "%"+fmt.Sprint(leaf.Value))
	}

	return "", nil, &UnknownOperatorError{Op: string(leaf.Op), Column: col}
}

func (c *SQLCompiler) compilePattern(leaf queryir.Leaf, col, pattern string) (string, []any, error) {
	return fmt.Sprintf("%s %s ?", col, c.Dialect.patternKeyword(leaf.Op)), []any{pattern}, nil
}

func (c *SQLCompiler) separator() string {
	if c.Dialect.Separator == "" {
		return queryir.DefaultSeparator
	}
	return c.Dialect.Separator
}

// listValues materializes an IN value into a fresh slice.
func listValues(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if values, ok := v.([]any); ok {
		out := make([]any, len(values))
		copy(out, values)
		return out, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
