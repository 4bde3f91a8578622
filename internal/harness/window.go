package harness

import "github.com/webshell-dev/webshell/internal/bridge"

// Window is the native surface a Runner drives. Every method except Dispatch
// and Terminate must be called on the thread that created the window.
type Window interface {
	bridge.Host

	SetTitle(title string)
	SetSize(width, height int)
	Navigate(address string)
	// Run blocks on the native event loop until the window is closed.
	Run()
	// Terminate asks the event loop to stop. It is safe from any goroutine.
	Terminate()
	Destroy()
}

// RunErrer is implemented by windows whose Run can fail, such as one that
// hands the document to an external browser. The Runner checks it after Run.
type RunErrer interface {
	Err() error
}

// WindowOptions configures a new Window.
type WindowOptions struct {
	Title  string
	Width  int
	Height int
	// Debug enables the web inspector.
	Debug bool
}

// WindowFactory creates the native window.
type WindowFactory func(opts WindowOptions) (Window, error)
