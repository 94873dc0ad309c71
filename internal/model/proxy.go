package model

import "github.com/roach88/relq/internal/queryir"

// Attribute is the result of accessing a name on a record type or a
// relation: a FieldRef or a RelationRef.
type Attribute interface {
	// Root is the record type the path starts from.
	Root() *RecordType
	// Path leads from Root to this attribute.
	Path() queryir.Path
	attribute()
}

// Equality builds identity predicates.
type Equality interface {
	Eq(value any) queryir.Leaf
	Ne(value any) queryir.Leaf
	Exact(value any) queryir.Leaf
}

// Ordering builds comparison predicates.
type Ordering interface {
	Gt(value any) queryir.Leaf
	Gte(value any) queryir.Leaf
	Lt(value any) queryir.Leaf
	Lte(value any) queryir.Leaf
}

// Membership builds IN predicates.
type Membership interface {
	In(values ...any) queryir.Leaf
}

// NullCheck builds IS [NOT] NULL predicates.
type NullCheck interface {
	IsNull(flag bool) queryir.Leaf
}

// Pattern builds string match predicates. The I-prefixed variants match
// without regard to case.
type Pattern interface {
	Contains(text string) queryir.Leaf
	IContains(text string) queryir.Leaf
	StartsWith(text string) queryir.Leaf
	IStartsWith(text string) queryir.Leaf
	EndsWith(text string) queryir.Leaf
	IEndsWith(text string) queryir.Leaf
}

// FieldRef is a proxy for a scalar field. Every field supports Equality,
// Membership and NullCheck; the concrete type adds Ordering and Pattern
// according to its Kind.
type FieldRef interface {
	Attribute
	Equality
	Membership
	NullCheck
	Kind() Kind
}

// NewFieldRef returns the proxy type matching kind. Unrecognized kinds get
// the minimal capability set instead of an error, since the field may still
// be filtered by identity.
func NewFieldRef(root *RecordType, path queryir.Path, kind Kind) FieldRef {
	base := fieldBase{root: root, path: path}
	switch kind {
	case KindString:
		return StringRef{base}
	case KindInt:
		return IntRef{base}
	case KindBool:
		return BoolRef{base}
	default:
		return ValueRef{base}
	}
}

// reroot builds a fresh proxy with a new root and path and the capability
// kind of ref. ref itself is left untouched.
func reroot(ref FieldRef, root *RecordType, path queryir.Path) FieldRef {
	return NewFieldRef(root, path, ref.Kind())
}

// fieldBase carries the root and path shared by all field proxies and
// implements the capabilities every kind has.
type fieldBase struct {
	root *RecordType
	path queryir.Path
}

func (f fieldBase) Root() *RecordType  { return f.root }
func (f fieldBase) Path() queryir.Path { return f.path }
func (fieldBase) attribute()           {}

func (f fieldBase) leaf(op queryir.Op, value any) queryir.Leaf {
	return queryir.NewLeaf(op, f.path, value)
}

// Eq matches records whose field equals value.
func (f fieldBase) Eq(value any) queryir.Leaf { return f.leaf(queryir.OpExact, value) }

// Exact is an alias of Eq.
func (f fieldBase) Exact(value any) queryir.Leaf { return f.leaf(queryir.OpExact, value) }

// Ne matches records whose field differs from value.
func (f fieldBase) Ne(value any) queryir.Leaf { return f.leaf(queryir.OpNe, value) }

// In matches records whose field equals one of values. The values are
// copied immediately; later changes to the caller's slice have no effect.
func (f fieldBase) In(values ...any) queryir.Leaf {
	materialized := make([]any, len(values))
	copy(materialized, values)
	return f.leaf(queryir.OpIn, materialized)
}

// IsNull matches records whose field is NULL (flag true) or not NULL.
func (f fieldBase) IsNull(flag bool) queryir.Leaf { return f.leaf(queryir.OpIsNull, flag) }

// InValues is In for a typed slice.
func InValues[T any](m Membership, values []T) queryir.Leaf {
	materialized := make([]any, len(values))
	for i, v := range values {
		materialized[i] = v
	}
	return m.In(materialized...)
}

// StringRef is the proxy of a KindString field.
type StringRef struct{ fieldBase }

func (StringRef) Kind() Kind { return KindString }

func (f StringRef) Gt(value any) queryir.Leaf  { return f.leaf(queryir.OpGt, value) }
func (f StringRef) Gte(value any) queryir.Leaf { return f.leaf(queryir.OpGte, value) }
func (f StringRef) Lt(value any) queryir.Leaf  { return f.leaf(queryir.OpLt, value) }
func (f StringRef) Lte(value any) queryir.Leaf { return f.leaf(queryir.OpLte, value) }

func (f StringRef) Contains(text string) queryir.Leaf    { return f.leaf(queryir.OpContains, text) }
func (f StringRef) IContains(text string) queryir.Leaf   { return f.leaf(queryir.OpIContains, text) }
func (f StringRef) StartsWith(text string) queryir.Leaf  { return f.leaf(queryir.OpStartsWith, text) }
func (f StringRef) IStartsWith(text string) queryir.Leaf { return f.leaf(queryir.OpIStartsWith, text) }
func (f StringRef) EndsWith(text string) queryir.Leaf    { return f.leaf(queryir.OpEndsWith, text) }
func (f StringRef) IEndsWith(text string) queryir.Leaf   { return f.leaf(queryir.OpIEndsWith, text) }

// IntRef is the proxy of a KindInt field.
type IntRef struct{ fieldBase }

func (IntRef) Kind() Kind { return KindInt }

func (f IntRef) Gt(value any) queryir.Leaf  { return f.leaf(queryir.OpGt, value) }
func (f IntRef) Gte(value any) queryir.Leaf { return f.leaf(queryir.OpGte, value) }
func (f IntRef) Lt(value any) queryir.Leaf  { return f.leaf(queryir.OpLt, value) }
func (f IntRef) Lte(value any) queryir.Leaf { return f.leaf(queryir.OpLte, value) }

// BoolRef is the proxy of a KindBool field.
type BoolRef struct{ fieldBase }

func (BoolRef) Kind() Kind { return KindBool }

// ValueRef is the proxy of a KindOther field.
type ValueRef struct{ fieldBase }

func (ValueRef) Kind() Kind { return KindOther }

// Compile-time capability checks.
var (
	_ FieldRef = StringRef{}
	_ Ordering = StringRef{}
	_ Pattern  = StringRef{}
	_ FieldRef = IntRef{}
	_ Ordering = IntRef{}
	_ FieldRef = BoolRef{}
	_ FieldRef = ValueRef{}
)
