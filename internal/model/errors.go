package model

import (
	"errors"
	"fmt"

	"github.com/roach88/relq/internal/queryir"
)

// ErrEmptyName is returned when a type or attribute is declared without a name.
var ErrEmptyName = errors.New("empty name")

// ErrInvalidValue is returned by Apply when a value does not fit the
// operator, e.g. a non-list for "in" or a non-bool for "isnull".
var ErrInvalidValue = errors.New("invalid value")

// DuplicateFieldError reports two declarations sharing one name on a
// record type. The whole declaration is rejected.
type DuplicateFieldError struct {
	Type string
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("record type %s: duplicate attribute %q", e.Type, e.Name)
}

// DuplicateTypeError reports a second declaration of a record type name.
type DuplicateTypeError struct {
	Type string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("record type %s already declared", e.Type)
}

// UnknownTypeError reports a relation whose target type is not declared.
type UnknownTypeError struct {
	Type     string // type holding the relation
	Relation string
	Target   string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("record type %s: relation %q targets undeclared type %q", e.Type, e.Relation, e.Target)
}

// InvalidNameError reports a type or attribute name that cannot be used
// as a SQL identifier, such as one containing the "?" placeholder marker.
type InvalidNameError struct {
	Type string
	Name string
}

func (e *InvalidNameError) Error() string {
	if e.Name == e.Type {
		return fmt.Sprintf("record type %q: name contains %q", e.Type, "?")
	}
	return fmt.Sprintf("record type %s: attribute %q contains %q", e.Type, e.Name, "?")
}

// UnknownAttributeError reports access to a name that is neither a field
// nor a relation of the type.
type UnknownAttributeError struct {
	Type      string
	Attribute string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("%s has no attribute %q", e.Type, e.Attribute)
}

// UnsupportedOperatorError reports a predicate that the field's capability
// set does not include, e.g. a pattern match on an int field.
type UnsupportedOperatorError struct {
	Path queryir.Path
	Kind Kind
	Op   queryir.Op
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("%s (%s) does not support %q", e.Path, e.Kind, e.Op)
}

// AttributeTypeError reports an attribute whose proxy is not of the
// requested type, e.g. asking for a StringRef where a relation is declared.
type AttributeTypeError struct {
	Path queryir.Path
	Got  string
	Want string
}

func (e *AttributeTypeError) Error() string {
	return fmt.Sprintf("%s is %s, not %s", e.Path, e.Got, e.Want)
}

// IsUnsupportedOperator returns true if err is an UnsupportedOperatorError.
func IsUnsupportedOperator(err error) bool {
	var uo *UnsupportedOperatorError
	return errors.As(err, &uo)
}

// IsUnknownAttribute returns true if err is an UnknownAttributeError.
// Uses errors.As to handle wrapped errors.
func IsUnknownAttribute(err error) bool {
	var ua *UnknownAttributeError
	return errors.As(err, &ua)
}

// IsDuplicateField returns true if err is a DuplicateFieldError.
// Uses errors.As to handle wrapped errors.
func IsDuplicateField(err error) bool {
	var df *DuplicateFieldError
	return errors.As(err, &df)
}
