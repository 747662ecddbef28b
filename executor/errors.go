package executor

import (
	"errors"
	"fmt"
)

// ErrNoExpression is returned when evaluating a line without expression.
var ErrNoExpression = errors.New("no expression")

// ParseNumberError reports a number literal that is not a valid float64,
// including literals out of the float64 range.
type ParseNumberError struct {
	Text string
	Err  error
}

func (e *ParseNumberError) Error() string {
	return fmt.Sprintf("cannot parse %q as a number: %s", e.Text, e.Err)
}

func (e *ParseNumberError) Unwrap() error { return e.Err }

// UndefinedVariableError reports a read of a variable never assigned.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}
