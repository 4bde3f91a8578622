package devserver

import "fmt"

// LaunchError reports a dev server process that could not be spawned.
type LaunchError struct {
	Command []string
	Dir     string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch dev server %q in %s: %v", e.Command, e.Dir, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
