package harness

import (
	"errors"
	"fmt"
)

// ErrAlreadyRun is returned when Run is called on a Runner that has left Idle.
var ErrAlreadyRun = errors.New("runner has already been started")

// NavigationError reports a document address the window cannot be pointed at.
type NavigationError struct {
	Address string
	Err     error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("cannot navigate to %s: %v", truncate(e.Address, 60), e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

// truncate shortens long data: addresses for messages.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
