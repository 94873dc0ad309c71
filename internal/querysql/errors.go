package querysql

import (
	"errors"
	"fmt"
)

// ErrNilExpression is returned when a nil expression reaches the compiler.
var ErrNilExpression = errors.New("nil expression")

// UnknownOperatorError reports a leaf operator or boolean operator outside
// the closed set.
type UnknownOperatorError struct {
	Op     string
	Column string // empty for boolean operators
}

func (e *UnknownOperatorError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("unknown boolean operator %q", e.Op)
	}
	return fmt.Sprintf("unknown operator %q on %s", e.Op, e.Column)
}

// InvalidIdentifierError reports a table or column name that cannot be
// emitted as-is. A "?" in an identifier would be taken for a placeholder.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q: contains a placeholder marker", e.Name)
}

// IsUnknownOperator returns true if err is an UnknownOperatorError.
// Uses errors.As to handle wrapped errors.
func IsUnknownOperator(err error) bool {
	var uo *UnknownOperatorError
	return errors.As(err, &uo)
}
