package model

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Registry holds record type declarations.
//
// Types are declared once during setup and read-only afterwards. The mutex
// only guards the type table itself; RecordType values never change after
// Declare returns.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*RecordType
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]*RecordType),
	}
}

// Default is the process-wide registry used by the package-level Declare,
// MustDeclare and Lookup functions.
var Default = NewRegistry()

// Declare registers a record type with the given field and relation
// declarations, in order.
//
// Every declaration is registered exactly once under its name. Two
// declarations sharing a name fail with *DuplicateFieldError and nothing is
// registered; last-write-wins would silently shadow attributes during path
// resolution. A Manager is attached to the new type automatically.
func (r *Registry) Declare(typeName string, decls ...Decl) (*RecordType, error) {
	if typeName == "" {
		return nil, fmt.Errorf("declare record type: %w", ErrEmptyName)
	}
	if strings.Contains(typeName, "?") {
		return nil, &InvalidNameError{Type: typeName, Name: typeName}
	}

	rt := &RecordType{
		name:      typeName,
		fields:    make(map[string]FieldDecl),
		relations: make(map[string]RelationDecl),
		registry:  r,
	}

	for _, d := range decls {
		name := d.DeclName()
		if name == "" {
			return nil, fmt.Errorf("declare record type %s: attribute: %w", typeName, ErrEmptyName)
		}
		if strings.Contains(name, "?") {
			return nil, &InvalidNameError{Type: typeName, Name: name}
		}
		if rt.has(name) {
			return nil, &DuplicateFieldError{Type: typeName, Name: name}
		}

		switch decl := d.(type) {
		case FieldDecl:
			rt.fields[name] = decl
		case RelationDecl:
			if decl.Target == "" {
				return nil, fmt.Errorf("declare record type %s: relation %q: target: %w", typeName, name, ErrEmptyName)
			}
			rt.relations[name] = decl
		}
		rt.order = append(rt.order, name)
	}
	rt.objects = &Manager{model: rt}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[typeName]; exists {
		return nil, &DuplicateTypeError{Type: typeName}
	}
	r.types[typeName] = rt
	r.order = append(r.order, typeName)

	slog.Debug("record type declared",
		"type", typeName,
		"fields", len(rt.fields),
		"relations", len(rt.relations))

	return rt, nil
}

// MustDeclare is like Declare but panics on error.
// Intended for package-level declarations whose failure is a programming error.
func (r *Registry) MustDeclare(typeName string, decls ...Decl) *RecordType {
	rt, err := r.Declare(typeName, decls...)
	if err != nil {
		panic(err)
	}
	return rt
}

// Lookup returns the record type declared under name.
func (r *Registry) Lookup(name string) (*RecordType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.types[name]
	return rt, ok
}

// Types returns all declared record types in declaration order.
func (r *Registry) Types() []*RecordType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]*RecordType, 0, len(r.order))
	for _, name := range r.order {
		types = append(types, r.types[name])
	}
	return types
}

// Check verifies that every relation targets a declared type.
// Returns the first *UnknownTypeError in declaration order.
func (r *Registry) Check() error {
	for _, rt := range r.Types() {
		for _, rel := range rt.Relations() {
			if _, ok := rel.resolve(r); !ok {
				return &UnknownTypeError{Type: rt.name, Relation: rel.Name, Target: rel.Target}
			}
		}
	}
	return nil
}

// Declare registers a record type in the Default registry.
func Declare(typeName string, decls ...Decl) (*RecordType, error) {
	return Default.Declare(typeName, decls...)
}

// MustDeclare registers a record type in the Default registry and panics on error.
func MustDeclare(typeName string, decls ...Decl) *RecordType {
	return Default.MustDeclare(typeName, decls...)
}

// Lookup returns a record type from the Default registry.
func Lookup(name string) (*RecordType, bool) {
	return Default.Lookup(name)
}

// RecordType is a declared schema: named scalar fields and relations.
type RecordType struct {
	name      string
	fields    map[string]FieldDecl
	relations map[string]RelationDecl
	order     []string
	registry  *Registry
	objects   *Manager
}

// Name returns the declared type name.
func (t *RecordType) Name() string { return t.name }

// Registry returns the registry the type was declared in.
func (t *RecordType) Registry() *Registry { return t.registry }

// Objects returns the query entry point of the type.
func (t *RecordType) Objects() *Manager { return t.objects }

// Attributes returns field and relation names in declaration order.
func (t *RecordType) Attributes() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// Fields returns field declarations in declaration order.
func (t *RecordType) Fields() []FieldDecl {
	var fields []FieldDecl
	for _, name := range t.order {
		if f, ok := t.fields[name]; ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// Relations returns relation declarations in declaration order.
func (t *RecordType) Relations() []RelationDecl {
	var rels []RelationDecl
	for _, name := range t.order {
		if rel, ok := t.relations[name]; ok {
			rels = append(rels, rel)
		}
	}
	return rels
}

// FieldDecl returns the field declared under name.
func (t *RecordType) FieldDecl(name string) (FieldDecl, bool) {
	f, ok := t.fields[name]
	return f, ok
}

// RelationDecl returns the relation declared under name.
func (t *RecordType) RelationDecl(name string) (RelationDecl, bool) {
	rel, ok := t.relations[name]
	return rel, ok
}

func (t *RecordType) has(name string) bool {
	_, isField := t.fields[name]
	_, isRelation := t.relations[name]
	return isField || isRelation
}

// String returns the type name.
func (t *RecordType) String() string { return t.name }
