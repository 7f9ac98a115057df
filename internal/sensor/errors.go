package sensor

import (
	"errors"
	"fmt"
)

// TransientError marks a sensor communication fault that is worth one
// retry. Anything else that comes out of a read is treated as a defect and
// propagates uncaught.
type TransientError struct {
	Source string
	Err    error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient read failure on %s: %v", e.Source, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Transient wraps err as recoverable for the named source.
func Transient(source string, err error) error {
	return &TransientError{Source: source, Err: err}
}

func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
