package model

import (
	"reflect"
	"strings"

	"github.com/roach88/relq/internal/queryir"
)

// RelationRef is the proxy of a relation. Accessing a name on it yields
// the target's attribute re-rooted at the original root, with this
// relation's path prepended.
type RelationRef struct {
	root   *RecordType
	path   queryir.Path
	target *RecordType
}

func (r RelationRef) Root() *RecordType  { return r.root }
func (r RelationRef) Path() queryir.Path { return r.path }
func (RelationRef) attribute()           {}

// Target returns the record type the relation points to.
func (r RelationRef) Target() *RecordType { return r.target }

// Get resolves name on the relation's target type.
//
// The declaration is read from the target's tables and the child proxy is
// built as the target would build it, rooted at the target with a
// one-segment path. The result is a new proxy with the original root and
// the concatenated path; the child keeps its own root and path.
func (r RelationRef) Get(name string) (Attribute, error) {
	child, err := r.target.Get(name)
	if err != nil {
		return nil, err
	}
	path := r.path.Join(child.Path())

	switch c := child.(type) {
	case FieldRef:
		return reroot(c, r.root, path), nil
	case RelationRef:
		return RelationRef{root: r.root, path: path, target: c.target}, nil
	default:
		return nil, &AttributeTypeError{Path: path, Got: describe(child), Want: "field or relation"}
	}
}

// MustGet is like Get but panics on error.
func (r RelationRef) MustGet(name string) Attribute {
	a, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return a
}

// String renders the relation as root.path -> target.
func (r RelationRef) String() string {
	return r.root.name + "." + r.path.String() + " -> " + r.target.name
}

// Get returns the proxy for a field or relation declared on t, rooted at t
// with a one-segment path.
func (t *RecordType) Get(name string) (Attribute, error) {
	if f, ok := t.fields[name]; ok {
		return NewFieldRef(t, queryir.NewPath(f.Name), f.Kind), nil
	}
	if rel, ok := t.relations[name]; ok {
		target, found := rel.resolve(t.registry)
		if !found {
			return nil, &UnknownTypeError{Type: t.name, Relation: rel.Name, Target: rel.Target}
		}
		return RelationRef{root: t, path: queryir.NewPath(rel.Name), target: target}, nil
	}
	return nil, &UnknownAttributeError{Type: t.name, Attribute: name}
}

// MustGet is like Get but panics on error.
func (t *RecordType) MustGet(name string) Attribute {
	a, err := t.Get(name)
	if err != nil {
		panic(err)
	}
	return a
}

// Resolve walks names from root, one attribute per name. Every name but
// the last must denote a relation.
func Resolve(root *RecordType, names ...string) (Attribute, error) {
	if len(names) == 0 {
		return nil, &UnknownAttributeError{Type: root.name, Attribute: ""}
	}

	attr, err := root.Get(names[0])
	if err != nil {
		return nil, err
	}
	for _, name := range names[1:] {
		rel, ok := attr.(RelationRef)
		if !ok {
			return nil, &AttributeTypeError{Path: attr.Path(), Got: describe(attr), Want: "a relation"}
		}
		if attr, err = rel.Get(name); err != nil {
			return nil, err
		}
	}
	return attr, nil
}

// ResolveDotted is Resolve for a dotted path such as "team.league.name".
func ResolveDotted(root *RecordType, dotted string) (Attribute, error) {
	return Resolve(root, strings.Split(dotted, ".")...)
}

// Attr resolves names from root and asserts the result is a T, e.g. a
// StringRef or a capability interface such as Pattern.
func Attr[T any](root *RecordType, names ...string) (T, error) {
	var zero T
	attr, err := Resolve(root, names...)
	if err != nil {
		return zero, err
	}
	typed, ok := attr.(T)
	if !ok {
		return zero, &AttributeTypeError{
			Path: attr.Path(),
			Got:  describe(attr),
			Want: reflect.TypeFor[T]().String(),
		}
	}
	return typed, nil
}

// MustAttr is like Attr but panics on error.
func MustAttr[T any](root *RecordType, names ...string) T {
	typed, err := Attr[T](root, names...)
	if err != nil {
		panic(err)
	}
	return typed
}

func describe(a Attribute) string {
	switch v := a.(type) {
	case FieldRef:
		return "a field of kind " + v.Kind().String()
	case RelationRef:
		return "a relation to " + v.target.name
	default:
		return reflect.TypeOf(a).String()
	}
}
