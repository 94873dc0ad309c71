package queryir

// Expression is a node of a predicate tree.
//
// This is a sealed interface - only Leaf and Composite implement it.
type Expression interface {
	expressionNode() // Marker method - seals interface to this package
}

// Leaf is a single field predicate.
//
// Semantics:
//
//	<path> <op> <value>
//
// Value depends on Op:
//   - comparison and pattern operators: the right-hand side
//   - in: []any holding the candidate values, in caller order
//   - isnull: bool; true selects IS NULL, false IS NOT NULL
//
// Example:
//
//	Leaf{Op: OpIContains, Path: NewPath("team", "league", "name"), Value: "eagles"}
//
// Translates to SQL:
//
//	team__league__name ILIKE ?   -- params ["%eagles%"]
type Leaf struct {
	Op    Op
	Path  Path
	Value any
}

func (Leaf) expressionNode() {}

// NewLeaf creates a Leaf.
func NewLeaf(op Op, path Path, value any) Leaf {
	return Leaf{Op: op, Path: path, Value: value}
}

// And combines l with other into an AND composite.
func (l Leaf) And(other Expression) Composite { return And(l, other) }

// Or combines l with other into an OR composite.
func (l Leaf) Or(other Expression) Composite { return Or(l, other) }

// Composite is a binary boolean combination of two expressions.
//
// Semantics:
//
//	(<left>) <op> (<right>)
//
// Composites are built exactly as combined: no flattening of nested ANDs,
// no simplification and no short-circuiting. A chain a.And(b).And(c)
// is the tree AND(AND(a, b), c) and compiles as such.
type Composite struct {
	BoolOp BoolOp
	Left   Expression
	Right  Expression
}

func (Composite) expressionNode() {}

// And combines c with other into an AND composite.
func (c Composite) And(other Expression) Composite { return And(c, other) }

// Or combines c with other into an OR composite.
func (c Composite) Or(other Expression) Composite { return Or(c, other) }

// And returns the conjunction of left and right.
func And(left, right Expression) Composite {
	return Composite{BoolOp: BoolAnd, Left: left, Right: right}
}

// Or returns the disjunction of left and right.
func Or(left, right Expression) Composite {
	return Composite{BoolOp: BoolOr, Left: left, Right: right}
}
