//go:build cgo

package window

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/webshell-dev/webshell/internal/bridge"
	"github.com/webshell-dev/webshell/internal/harness"
	webview "github.com/webview/webview_go"
)

// Native is a webview window.
type Native struct {
	view webview.WebView
}

// New creates a native window. It must be called on the main thread.
func New(opts harness.WindowOptions) (harness.Window, error) {
	view := webview.New(opts.Debug)
	if view == nil {
		return nil, errors.New("failed to create webview")
	}
	pterm.Debug.Printf("Created window %dx%d (devtools %t)\n", opts.Width, opts.Height, opts.Debug)
	return &Native{view: view}, nil
}

func (n *Native) Bind(name string, fn bridge.Callable) error {
	return n.view.Bind(name, fn)
}

func (n *Native) Init(js string)     { n.view.Init(js) }
func (n *Native) Eval(js string)     { n.view.Eval(js) }
func (n *Native) Dispatch(fn func()) { n.view.Dispatch(fn) }

func (n *Native) SetTitle(title string) { n.view.SetTitle(title) }

func (n *Native) SetSize(width, height int) {
	n.view.SetSize(width, height, webview.HintNone)
}

func (n *Native) Navigate(address string) { n.view.Navigate(address) }
func (n *Native) Run()                    { n.view.Run() }
func (n *Native) Terminate()              { n.view.Terminate() }
func (n *Native) Destroy()                { n.view.Destroy() }
