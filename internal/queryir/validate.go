package queryir

import (
	"fmt"
	"reflect"
)

// ValidationResult contains the lint findings for an expression tree.
type ValidationResult struct {
	// IsPortable indicates that every leaf references a column of the root
	// table and no suspicious shapes were found.
	IsPortable bool

	// Warnings lists the findings in tree order (left before right).
	// Empty when IsPortable is true.
	Warnings []string
}

// Validate lints an expression tree.
//
// Checks:
//  1. Operators belong to the closed set (compilers reject the rest)
//  2. Paths are non-empty
//  3. Composites have both children
//  4. "in" lists are non-empty (an empty list never matches)
//  5. Paths stay on the root type (multi-hop paths need join planning)
//
// Validate never fails; compilation is the authority on what is rejected.
// Validate is a pure function with no side effects.
func Validate(expr Expression) ValidationResult {
	v := &validator{
		warnings: []string{},
	}
	v.validateExpression(expr)

	return ValidationResult{
		IsPortable: len(v.warnings) == 0,
		Warnings:   v.warnings,
	}
}

// validator accumulates warnings during traversal.
type validator struct {
	warnings []string
}

func (v *validator) addWarning(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

func (v *validator) validateExpression(e Expression) {
	switch expr := e.(type) {
	case nil:
		v.addWarning("nil expression")
	case Leaf:
		v.validateLeaf(expr)
	case *Leaf:
		if expr == nil {
			v.addWarning("nil expression")
			return
		}
		v.validateLeaf(*expr)
	case Composite:
		v.validateComposite(expr)
	case *Composite:
		if expr == nil {
			v.addWarning("nil expression")
			return
		}
		v.validateComposite(*expr)
	default:
		v.addWarning("unknown expression type: %T", e)
	}
}

func (v *validator) validateLeaf(l Leaf) {
	if l.Path.IsEmpty() {
		v.addWarning("predicate %q has an empty path", l.Op)
	}
	if !l.Op.Known() {
		v.addWarning("unknown operator %q on %s", l.Op, l.Path)
		return
	}
	if l.Path.Len() > 1 {
		v.addWarning("path %s crosses %d relation(s) - rendered as a flat column, join semantics are not modeled",
			l.Path, l.Path.Len()-1)
	}
	if l.Op == OpIn && listLen(l.Value) == 0 {
		v.addWarning("empty IN list on %s never matches", l.Path)
	}
}

func (v *validator) validateComposite(c Composite) {
	if !c.BoolOp.Known() {
		v.addWarning("unknown boolean operator %q", c.BoolOp)
	}
	v.validateExpression(c.Left)
	v.validateExpression(c.Right)
}

// listLen returns the length of a slice value, or 0 for anything else.
func listLen(value any) int {
	if vals, ok := value.([]any); ok {
		return len(vals)
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return rv.Len()
	}
	return 0
}
