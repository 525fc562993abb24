package logger

import (
	"errors"
	"fmt"
)

// ErrInvalidSeverity is matched by every *InvalidSeverityError via errors.Is.
var ErrInvalidSeverity = errors.New("invalid severity")

// InvalidSeverityError carries the rejected severity value.
type InvalidSeverityError struct {
	Value string
}

func (e *InvalidSeverityError) Error() string {
	return fmt.Sprintf("severity %q is not valid, use NORMAL, WARNING or ERROR", e.Value)
}

func (e *InvalidSeverityError) Is(target error) bool {
	return target == ErrInvalidSeverity
}
