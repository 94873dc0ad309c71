package model

// Decl is a field or relation declaration passed to Registry.Declare.
//
// This is a sealed interface - only FieldDecl and RelationDecl implement it.
type Decl interface {
	DeclName() string
	declNode()
}

// FieldDecl declares a scalar field.
type FieldDecl struct {
	Name string
	Kind Kind
}

func (d FieldDecl) DeclName() string { return d.Name }
func (FieldDecl) declNode()          {}

// RelationDecl declares a typed edge to another record type.
// Target is the target type's name. Type is set when the relation was
// bound to a concrete record type; otherwise the name is resolved through
// the owning registry when the relation is traversed, which allows forward
// references and cycles.
type RelationDecl struct {
	Name   string
	Target string
	Type   *RecordType
}

func (d RelationDecl) DeclName() string { return d.Name }
func (RelationDecl) declNode()          {}

// Field declares a scalar field of the given kind.
func Field(name string, kind Kind) FieldDecl {
	return FieldDecl{Name: name, Kind: kind}
}

// Relation declares a relation to an already declared record type. The
// target may belong to another registry.
func Relation(name string, target *RecordType) RelationDecl {
	if target == nil {
		return RelationDecl{Name: name}
	}
	return RelationDecl{Name: name, Target: target.name, Type: target}
}

// RelationTo declares a relation by target type name. The target may be
// declared later, or be the declaring type itself.
func RelationTo(name, targetType string) RelationDecl {
	return RelationDecl{Name: name, Target: targetType}
}

// resolve returns the target record type, looking the name up in reg
// unless the relation is bound.
func (d RelationDecl) resolve(reg *Registry) (*RecordType, bool) {
	if d.Type != nil {
		return d.Type, true
	}
	return reg.Lookup(d.Target)
}
