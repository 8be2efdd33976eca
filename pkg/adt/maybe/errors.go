package maybe

import "errors"

// ErrUnwrappedAbsentValue is the panic value of Unwrap on a None.
var ErrUnwrappedAbsentValue = errors.New("called Unwrap on a None value")

// ExpectationFailedError is the panic value of Expect on a None.
type ExpectationFailedError struct {
	Message string
}

func (e *ExpectationFailedError) Error() string {
	return "Expected: " + e.Message
}
