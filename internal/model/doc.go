// Package model declares record types and builds predicates over them.
//
// A Registry holds record type declarations: scalar fields with a Kind and
// relations to other record types. Accessing an attribute of a record type
// yields a proxy:
//
//	league := reg.MustDeclare("League", model.Field("name", model.KindString))
//	team := reg.MustDeclare("Team",
//		model.Field("id", model.KindInt),
//		model.Field("name", model.KindString),
//		model.Relation("league", league))
//
//	name := model.MustAttr[model.StringRef](team, "league", "name")
//	qs := team.Objects().Where(name.IContains("eagles"))
//	sql, params, err := qs.Compile()
//	// SELECT * FROM Team WHERE (league__name ILIKE ?)  ["%eagles%"]
//
// CAPABILITIES:
//
// The Go type of a field proxy fixes which predicates it can build:
//
//	Kind        Proxy      Equality Ordering Membership NullCheck Pattern
//	KindString  StringRef  yes      yes      yes        yes       yes
//	KindInt     IntRef     yes      yes      yes        yes       -
//	KindBool    BoolRef    yes      -        yes        yes       -
//	KindOther   ValueRef   yes      -        yes        yes       -
//
// Calling a missing predicate on a concrete proxy type does not compile.
// Apply performs the same check at runtime for callers that only hold an
// operator name.
//
// RE-ROOTING:
//
// Traversing a relation never changes the root type of a proxy. The child
// proxy is rebuilt with the original root, the concatenated path and the
// child's declared kind, however many relations are crossed.
//
// LIFECYCLE:
//
// Declare every record type before building queries. Declarations are
// immutable afterwards; proxies, expressions and query builders are values
// that may be shared freely between goroutines.
package model
