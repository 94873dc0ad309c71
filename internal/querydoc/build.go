package querydoc

import (
	"fmt"
	"log/slog"

	"github.com/roach88/relq/internal/canonical"
	"github.com/roach88/relq/internal/model"
	"github.com/roach88/relq/internal/queryir"
	"github.com/roach88/relq/internal/querysql"
)

// Build resolves q against reg and returns its query builder.
func Build(reg *model.Registry, q Query) (model.QueryBuilder, error) {
	root, ok := reg.Lookup(q.Model)
	if !ok {
		return model.QueryBuilder{}, fmt.Errorf("query %q: unknown record type %q", q.Name, q.Model)
	}

	exprs := make([]queryir.Expression, 0, len(q.Where))
	for i, p := range q.Where {
		expr, err := buildPredicate(root, p)
		if err != nil {
			return model.QueryBuilder{}, fmt.Errorf("query %q: where[%d]: %w", q.Name, i, err)
		}
		exprs = append(exprs, expr)
	}
	return root.Objects().Where(exprs...), nil
}

func buildPredicate(root *model.RecordType, p Predicate) (queryir.Expression, error) {
	switch {
	case p.All != nil:
		return fold(root, "all", p.All, queryir.And)
	case p.Any != nil:
		return fold(root, "any", p.Any, queryir.Or)
	}

	op, ok := queryir.ParseOp(p.Op)
	if !ok {
		return nil, fmt.Errorf("unknown operator %q", p.Op)
	}

	attr, err := model.ResolveDotted(root, p.Path)
	if err != nil {
		return nil, err
	}
	ref, ok := attr.(model.FieldRef)
	if !ok {
		return nil, fmt.Errorf("%s is a relation, not a field", p.Path)
	}

	return model.Apply(ref, op, p.Value)
}

// fold combines members left to right: [a, b, c] becomes combine(combine(a, b), c).
// An empty group is an error.
func fold(root *model.RecordType, group string, members []Predicate, combine func(l, r queryir.Expression) queryir.Composite) (queryir.Expression, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("%s: at least one predicate is required", group)
	}
	var acc queryir.Expression
	for i, m := range members {
		expr, err := buildPredicate(root, m)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		if acc == nil {
			acc = expr
			continue
		}
		acc = combine(acc, expr)
	}
	return acc, nil
}

// Compiled is a query compiled to a statement.
type Compiled struct {
	Name        string `json:"name"`
	Model       string `json:"model"`
	SQL         string `json:"sql"`
	Params      []any  `json:"params"`
	Fingerprint string `json:"fingerprint"`

	// Warnings are portability notes from queryir.Validate.
	Warnings []string `json:"warnings,omitempty"`

	// Mismatch describes a difference from the query's expectation.
	Mismatch string `json:"mismatch,omitempty"`

	// Filters are the built predicates, for further checks.
	Filters []queryir.Expression `json:"-"`
}

// Compile builds and compiles every query of doc with c.
// It stops at the first query that fails to build or compile.
func Compile(reg *model.Registry, doc *Document, c *querysql.SQLCompiler) ([]Compiled, error) {
	results := make([]Compiled, 0, len(doc.Queries))
	for _, q := range doc.Queries {
		qb, err := Build(reg, q)
		if err != nil {
			return nil, err
		}

		sql, params, err := qb.CompileWith(c)
		if err != nil {
			return nil, fmt.Errorf("query %q: %w", q.Name, err)
		}
		fp, err := canonical.Fingerprint(sql, params)
		if err != nil {
			return nil, fmt.Errorf("query %q: fingerprint: %w", q.Name, err)
		}

		result := Compiled{
			Name:        q.Name,
			Model:       q.Model,
			SQL:         sql,
			Params:      params,
			Fingerprint: fp,
			Filters:     qb.Filters(),
		}
		for _, f := range result.Filters {
			result.Warnings = append(result.Warnings, queryir.Validate(f).Warnings...)
		}
		if q.Expect != nil {
			result.Mismatch = compareExpectation(q.Expect, sql, params)
		}

		slog.Debug("query compiled", "name", q.Name, "model", q.Model, "params", len(params))
		results = append(results, result)
	}
	return results, nil
}

// compareExpectation returns "" when the statement matches. Params are
// compared in canonical form, so 10 from YAML equals an int64 10.
func compareExpectation(want *Expectation, sql string, params []any) string {
	if want.SQL != sql {
		return fmt.Sprintf("sql: want %q, got %q", want.SQL, sql)
	}
	if want.Params == nil {
		return ""
	}
	wantParams, err := canonical.Marshal(want.Params)
	if err != nil {
		return fmt.Sprintf("params: %v", err)
	}
	gotParams, err := canonical.Marshal(params)
	if err != nil {
		return fmt.Sprintf("params: %v", err)
	}
	if string(wantParams) != string(gotParams) {
		return fmt.Sprintf("params: want %s, got %s", wantParams, gotParams)
	}
	return ""
}
