package oerror

import "fmt"

// StanceError is the error type raised by the stance controller for states it cannot
// continue from. The controller resolves these by falling back to the idle posture.
type StanceError struct {
	Err string
}

// New returns a new StanceError with the message passed.
func New(err string) *StanceError {
	return &StanceError{Err: err}
}

// Newf returns a new StanceError with the message formatted from the arguments passed.
func Newf(format string, args ...interface{}) *StanceError {
	return &StanceError{Err: fmt.Sprintf(format, args...)}
}

func (e *StanceError) Error() string {
	return e.Err
}
