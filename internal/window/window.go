// Package window opens native webview windows for the harness.
package window

import "errors"

// ErrUnavailable is returned when the binary was built without the native
// webview toolkit.
var ErrUnavailable = errors.New("native windows are not available in this build (rebuild with CGO_ENABLED=1)")
