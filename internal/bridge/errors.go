package bridge

import (
	"errors"
	"fmt"
)

var (
	// ErrSealed is returned when bindings are changed after the bridge was installed on a window.
	ErrSealed = errors.New("bridge is sealed: bindings are fixed once installed")
	// ErrNotInstalled is returned when native-to-script delivery is attempted before Install.
	ErrNotInstalled = errors.New("bridge is not installed on a window")
)

// DuplicateBindingError reports a second registration under an existing name.
type DuplicateBindingError struct {
	Name string
}

func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("binding %q is already registered", e.Name)
}

// UnknownBindingError reports a call to a name with no registered handler.
type UnknownBindingError struct {
	Name string
}

func (e *UnknownBindingError) Error() string {
	return fmt.Sprintf("no binding registered for %q", e.Name)
}

// SerializationError reports a value that cannot cross the native/script boundary.
type SerializationError struct {
	// Path locates the offending value, e.g. "$.args[1].samples[3]".
	Path   string
	Reason string
	Err    error
}

func (e *SerializationError) Error() string {
	msg := "cannot marshal value"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// IsCallError returns true if err is scoped to a single invocation rather than
// to the bridge as a whole.
func IsCallError(err error) bool {
	if err == nil {
		return false
	}
	var unknown *UnknownBindingError
	var serialization *SerializationError
	return errors.As(err, &unknown) || errors.As(err, &serialization)
}
