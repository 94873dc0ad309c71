// Package queryir provides the expression tree that relq proxies build and
// backends compile.
//
// ARCHITECTURE:
//
//	[record types] → [field/relation proxies] → [queryir.Expression] → [querysql]
//
// Proxies in internal/model are the only intended producers of expressions;
// they have already resolved every path against declared fields and
// relations, so nothing here re-validates paths against a schema.
//
// SEALED INTERFACES:
//
// Expression is a sealed interface using the marker method pattern. Only
// Leaf and Composite implement it, which lets compilers switch exhaustively:
//
//	switch e := expr.(type) {
//	case Leaf:
//	    // field predicate
//	case Composite:
//	    // AND / OR of two expressions
//	}
//
// IMMUTABILITY:
//
// Expressions are plain values. Nothing mutates a node after construction,
// so one expression may be shared between any number of query builders and
// compiled any number of times with identical results.
//
// PORTABLE FRAGMENT:
//
// A predicate is portable when a backend can evaluate it against a single
// table without join planning. Paths with more than one segment cross a
// relation; they render as a flat column token and need alias resolution on
// a real backend. Validate reports these and other suspicious shapes as
// warnings without rejecting the expression.
package queryir
