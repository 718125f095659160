package limit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLimitFormat is returned when a limit is neither <N> nor <N>p.
	ErrInvalidLimitFormat = errors.New("invalid limit format")
	// ErrInvalidLimitValue is returned when a parsed integer is not strictly positive.
	ErrInvalidLimitValue = errors.New("invalid limit value")
)

// Error reports a rejected user input together with the raw value that caused it.
type Error struct {
	Kind   error
	Raw    string
	Reason string
}

func newError(kind error, raw, reason string) *Error {
	return &Error{Kind: kind, Raw: raw, Reason: reason}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v %q: %s", e.Kind, e.Raw, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Kind
}
