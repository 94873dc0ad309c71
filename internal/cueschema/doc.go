// Package cueschema declares record types from CUE schema files.
//
// A schema lists record types under the top-level "record" struct:
//
//	record: League: {
//		fields: {id: int, name: string}
//	}
//	record: Team: {
//		fields: {id: int, name: string}
//		relations: {league: "League"}
//	}
//
// Field kinds come from the CUE type: string, int and bool map to the
// matching model.Kind and every other type maps to model.KindOther. A
// concrete string value is read as a type name, so `name: "string"` and
// `name: string` declare the same field. Relation values name the target
// record type, which may be declared anywhere in the schema, including
// later or by the type itself.
package cueschema
