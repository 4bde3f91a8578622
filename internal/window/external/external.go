// Package external shows the Development document in the system browser
// instead of a native window.
package external

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/browser"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/webshell-dev/webshell/internal/bridge"
	"github.com/webshell-dev/webshell/internal/harness"
)

// Browser satisfies harness.Window by handing the address to the system
// browser. Native bindings cannot reach a browser tab, so they are only
// recorded and reported.
type Browser struct {
	// OpenFunc opens address. It defaults to browser.OpenURL.
	OpenFunc func(address string) error

	mu       sync.Mutex
	address  string
	bound    []string
	done     chan struct{}
	doneOnce sync.Once
	openErr  error
}

var _ harness.RunErrer = (*Browser)(nil)

// New is a harness.WindowFactory for Browser windows.
func New(harness.WindowOptions) (harness.Window, error) {
	return &Browser{OpenFunc: browser.OpenURL, done: make(chan struct{})}, nil
}

func (b *Browser) Bind(name string, _ bridge.Callable) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bound = append(b.bound, name)
	return nil
}

func (b *Browser) Init(string)      {}
func (b *Browser) Eval(string)      {}
func (b *Browser) Dispatch(func())  {}
func (b *Browser) SetTitle(string)  {}
func (b *Browser) SetSize(int, int) {}
func (b *Browser) Destroy()         {}

func (b *Browser) Navigate(address string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.address = address
}

// Run opens the browser and blocks until Terminate. The browser owns its tab,
// so only Terminate ends the session.
func (b *Browser) Run() {
	b.mu.Lock()
	address := b.address
	names := lo.Filter(b.bound, func(name string, _ int) bool {
		return !strings.HasPrefix(name, bridge.ReservedPrefix)
	})
	b.mu.Unlock()

	if len(names) > 0 {
		pterm.Warning.Printf("Bindings are not reachable from the system browser: %v\n", names)
	}
	if err := b.OpenFunc(address); err != nil {
		b.mu.Lock()
		b.openErr = fmt.Errorf("failed to open browser: %w", err)
		b.mu.Unlock()
		return
	}
	pterm.Info.Printf("Opened %s in the system browser. Press Ctrl+C to stop.\n", address)
	<-b.done
}

func (b *Browser) Terminate() {
	b.doneOnce.Do(func() { close(b.done) })
}

// Err returns the error from opening the browser, if any. The Runner reports
// it as the session's failure.
func (b *Browser) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.openErr
}
