// Package querydoc reads YAML query documents and builds them into
// queries against a schema.
//
// A document lists named queries over a root record type:
//
//	queries:
//	  - name: eagles
//	    model: Match
//	    where:
//	      - {path: team.league.name, op: icontains, value: eagles}
//	      - any:
//	          - {path: result.score, op: gt, value: 10}
//	          - {path: result.published, op: isnull, value: true}
//	    expect:
//	      sql: SELECT * FROM Match WHERE ...
//
// Each where entry becomes one predicate of the query. Paths are resolved
// through the record type's attribute proxies, so unknown attributes and
// operators the field does not support fail here, not in the compiler.
package querydoc

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is a set of queries.
type Document struct {
	// Queries are built and compiled in document order.
	Queries []Query `yaml:"queries"`
}

// Query is a named query over one record type.
type Query struct {
	// Name identifies the query in output and errors.
	Name string `yaml:"name"`

	// Model is the root record type name.
	Model string `yaml:"model"`

	// Where holds the predicates; they are combined with AND.
	// An empty list selects every record.
	Where []Predicate `yaml:"where,omitempty"`

	// Expect optionally pins the compiled statement.
	Expect *Expectation `yaml:"expect,omitempty"`
}

// Predicate is either a leaf (Path, Op, Value) or a group (All or Any).
type Predicate struct {
	// Path is the dotted attribute path from the query's model,
	// e.g. "team.league.name".
	Path string `yaml:"path,omitempty"`

	// Op is the operator name, e.g. "exact", "icontains", "in".
	Op string `yaml:"op,omitempty"`

	// Value is the right-hand side: a scalar, a list for "in", a bool
	// for "isnull".
	Value any `yaml:"value,omitempty"`

	// All combines its members with AND, left to right.
	All []Predicate `yaml:"all,omitempty"`

	// Any combines its members with OR, left to right.
	Any []Predicate `yaml:"any,omitempty"`
}

// Expectation is the statement a query must compile to.
type Expectation struct {
	SQL    string `yaml:"sql"`
	Params []any  `yaml:"params,omitempty"`
}

// Parse decodes a document. Unknown keys are rejected so that typos such
// as "wher:" fail loudly.
func Parse(data []byte) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateDocument(&doc); err != nil {
		return nil, fmt.Errorf("invalid query document: %w", err)
	}
	return &doc, nil
}

// LoadFile reads and parses a document file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query file: %w", err)
	}
	return Parse(data)
}

func validateDocument(doc *Document) error {
	if len(doc.Queries) == 0 {
		return fmt.Errorf("queries list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(doc.Queries))
	for i, q := range doc.Queries {
		if q.Name == "" {
			return fmt.Errorf("queries[%d]: name is required", i)
		}
		if seen[q.Name] {
			return fmt.Errorf("queries[%d]: duplicate name %q", i, q.Name)
		}
		seen[q.Name] = true

		if q.Model == "" {
			return fmt.Errorf("queries[%d]: model is required", i)
		}
		for j, p := range q.Where {
			if err := validatePredicate(fmt.Sprintf("queries[%d].where[%d]", i, j), p); err != nil {
				return err
			}
		}
		if q.Expect != nil && q.Expect.SQL == "" {
			return fmt.Errorf("queries[%d].expect: sql is required", i)
		}
	}
	return nil
}

// validatePredicate checks the shape only; names are resolved by Build.
func validatePredicate(at string, p Predicate) error {
	forms := 0
	if p.Path != "" || p.Op != "" {
		forms++
	}
	if p.All != nil {
		forms++
	}
	if p.Any != nil {
		forms++
	}

	switch {
	case forms == 0:
		return fmt.Errorf("%s: one of path, all or any is required", at)
	case forms > 1:
		return fmt.Errorf("%s: path, all and any are mutually exclusive", at)
	}

	if p.All != nil || p.Any != nil {
		members, key := p.All, "all"
		if p.Any != nil {
			members, key = p.Any, "any"
		}
		if len(members) == 0 {
			return fmt.Errorf("%s.%s: at least one predicate is required", at, key)
		}
		for k, m := range members {
			if err := validatePredicate(fmt.Sprintf("%s.%s[%d]", at, key, k), m); err != nil {
				return err
			}
		}
		return nil
	}

	if p.Path == "" {
		return fmt.Errorf("%s: path is required", at)
	}
	if p.Op == "" {
		return fmt.Errorf("%s: op is required", at)
	}
	return nil
}
