package queryir

import "strings"

// Op names a leaf predicate operator. The set is closed; compilers reject
// anything outside it.
type Op string

const (
	OpExact       Op = "exact"
	OpNe          Op = "ne"
	OpGt          Op = "gt"
	OpGte         Op = "gte"
	OpLt          Op = "lt"
	OpLte         Op = "lte"
	OpIn          Op = "in"
	OpIsNull      Op = "isnull"
	OpContains    Op = "contains"
	OpIContains   Op = "icontains"
	OpStartsWith  Op = "startswith"
	OpIStartsWith Op = "istartswith"
	OpEndsWith    Op = "endswith"
	OpIEndsWith   Op = "iendswith"
)

// Ops lists every known operator in a stable order.
var Ops = []Op{
	OpExact, OpNe, OpGt, OpGte, OpLt, OpLte, OpIn, OpIsNull,
	OpContains, OpIContains, OpStartsWith, OpIStartsWith, OpEndsWith, OpIEndsWith,
}

var knownOps = func() map[Op]bool {
	m := make(map[Op]bool, len(Ops))
	for _, op := range Ops {
		m[op] = true
	}
	return m
}()

// Known reports whether op belongs to the closed operator set.
func (op Op) Known() bool { return knownOps[op] }

// IsComparison reports whether op is one of exact, ne, gt, gte, lt, lte.
func (op Op) IsComparison() bool {
	switch op {
	case OpExact, OpNe, OpGt, OpGte, OpLt, OpLte:
		return true
	}
	return false
}

// IsPattern reports whether op is a string pattern match.
func (op Op) IsPattern() bool {
	switch op {
	case OpContains, OpIContains, OpStartsWith, OpIStartsWith, OpEndsWith, OpIEndsWith:
		return true
	}
	return false
}

// CaseInsensitive reports whether a pattern operator matches without regard
// to case. Only pattern operators carry the flag; "in" and "isnull" also
// start with an "i" and are not case-insensitive.
func (op Op) CaseInsensitive() bool {
	return op.IsPattern() && strings.HasPrefix(string(op), "i")
}

// ParseOp converts an operator name into an Op.
func ParseOp(name string) (Op, bool) {
	op := Op(strings.ToLower(strings.TrimSpace(name)))
	return op, op.Known()
}

// BoolOp names the boolean combinator of a Composite.
type BoolOp string

const (
	BoolAnd BoolOp = "AND"
	BoolOr  BoolOp = "OR"
)

// Known reports whether b is AND or OR.
func (b BoolOp) Known() bool { return b == BoolAnd || b == BoolOr }
