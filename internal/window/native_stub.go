//go:build !cgo

package window

import "github.com/webshell-dev/webshell/internal/harness"

// New always fails in builds without cgo.
func New(harness.WindowOptions) (harness.Window, error) {
	return nil, ErrUnavailable
}
