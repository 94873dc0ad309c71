package model

import (
	"fmt"
	"reflect"

	"github.com/roach88/relq/internal/queryir"
)

// Apply builds the predicate op on ref with value, checking at runtime what
// the proxy's Go type checks at compile time. It serves callers that hold
// an operator name rather than a method, such as query documents.
//
// Returns *UnsupportedOperatorError when the proxy lacks the capability,
// and an error wrapping ErrInvalidValue when value has the wrong shape.
func Apply(ref FieldRef, op queryir.Op, value any) (queryir.Leaf, error) {
	unsupported := &UnsupportedOperatorError{Path: ref.Path(), Kind: ref.Kind(), Op: op}

	switch op {
	case queryir.OpExact:
		return ref.Eq(value), nil
	case queryir.OpNe:
		return ref.Ne(value), nil

	case queryir.OpGt, queryir.OpGte, queryir.OpLt, queryir.OpLte:
		o, ok := ref.(Ordering)
		if !ok {
			return queryir.Leaf{}, unsupported
		}
		switch op {
		case queryir.OpGt:
			return o.Gt(value), nil
		case queryir.OpGte:
			return o.Gte(value), nil
		case queryir.OpLt:
			return o.Lt(value), nil
		default:
			return o.Lte(value), nil
		}

	case queryir.OpIn:
		values, ok := asList(value)
		if !ok {
			return queryir.Leaf{}, fmt.Errorf("%s %s: want a list, got %T: %w", ref.Path(), op, value, ErrInvalidValue)
		}
		return ref.In(values...), nil

	case queryir.OpIsNull:
		flag, ok := value.(bool)
		if !ok {
			return queryir.Leaf{}, fmt.Errorf("%s %s: want a bool, got %T: %w", ref.Path(), op, value, ErrInvalidValue)
		}
		return ref.IsNull(flag), nil
	}

	if op.IsPattern() {
		p, ok := ref.(Pattern)
		if !ok {
			return queryir.Leaf{}, unsupported
		}
		text, ok := value.(string)
		if !ok {
			return queryir.Leaf{}, fmt.Errorf("%s %s: want a string, got %T: %w", ref.Path(), op, value, ErrInvalidValue)
		}
		switch op {
		case queryir.OpContains:
			return p.Contains(text), nil
		case queryir.OpIContains:
			return p.IContains(text), nil
		case queryir.OpStartsWith:
			return p.StartsWith(text), nil
		case queryir.OpIStartsWith:
			return p.IStartsWith(text), nil
		case queryir.OpEndsWith:
			return p.EndsWith(text), nil
		default:
			return p.IEndsWith(text), nil
		}
	}

	return queryir.Leaf{}, unsupported
}

// Supports reports whether a proxy of kind can build op.
func Supports(kind Kind, op queryir.Op) bool {
	switch {
	case op == queryir.OpExact, op == queryir.OpNe, op == queryir.OpIn, op == queryir.OpIsNull:
		return true
	case op.IsComparison():
		return kind == KindString || kind == KindInt
	case op.IsPattern():
		return kind == KindString
	default:
		return false
	}
}

// Capabilities lists the operators a proxy of kind supports, in the
// canonical operator order.
func Capabilities(kind Kind) []queryir.Op {
	var ops []queryir.Op
	for _, op := range queryir.Ops {
		if Supports(kind, op) {
			ops = append(ops, op)
		}
	}
	return ops
}

func asList(value any) ([]any, bool) {
	if values, ok := value.([]any); ok {
		return values, true
	}
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	values := make([]any, rv.Len())
	for i := range values {
		values[i] = rv.Index(i).Interface()
	}
	return values, true
}
