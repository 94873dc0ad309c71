package model

import "strings"

// Kind is the scalar kind of a declared field. It selects the capability
// set of the field's proxy.
type Kind int

const (
	// KindOther covers every scalar the builder has no special support for.
	// Such fields remain filterable by identity, membership and nullness.
	KindOther Kind = iota
	KindString
	KindInt
	KindBool
)

// String returns the lowercase kind name used in schemas.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "other"
	}
}

// ParseKind maps a schema type name to a Kind.
// Unrecognized names map to KindOther rather than failing.
func ParseKind(name string) Kind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "string", "str", "text":
		return KindString
	case "int", "integer", "int64":
		return KindInt
	case "bool", "boolean":
		return KindBool
	default:
		return KindOther
	}
}
