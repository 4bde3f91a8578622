// Package harness resolves what a window shows, wires the bridge into it and
// runs the native event loop.
package harness

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"sync"

	"github.com/pterm/pterm"
	"github.com/webshell-dev/webshell/internal/assets"
	"github.com/webshell-dev/webshell/internal/bridge"
	"github.com/webshell-dev/webshell/internal/devserver"
	"github.com/webshell-dev/webshell/pkg/util"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// DevServer is a running dev server owned by a Runner.
type DevServer interface {
	Address() string
	Stop() error
}

// LaunchFunc starts a dev server for projectDir.
type LaunchFunc func(projectDir string) (DevServer, error)

// Options configures a Runner.
type Options struct {
	// Assets holds the Production payload. Script and Markup name the files
	// inside it and default to index.js and index.html.
	Assets fs.FS
	Script string
	Markup string

	// ProjectDir is where the Development server is started.
	ProjectDir string
	// Launcher starts the Development server. Launch, when set, takes precedence.
	Launcher *devserver.Launcher
	Launch   LaunchFunc
	// WaitReady polls the Development address before navigating.
	WaitReady bool

	Width  int
	Height int
	Debug  bool

	NewWindow WindowFactory
	// Setup registers events and the scheme handler on the window's bridge
	// before it is installed.
	Setup func(b *bridge.Bridge) error
}

// Runner shows one document in one window. It is single-use.
type Runner struct {
	opts Options

	mu    sync.Mutex
	state State
}

// NewRunner creates a Runner in the Idle state.
func NewRunner(opts Options) *Runner {
	if opts.Script == "" {
		opts.Script = assets.DefaultScript
	}
	if opts.Markup == "" {
		opts.Markup = assets.DefaultMarkup
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	return &Runner{opts: opts}
}

// State returns the Runner's current state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Runner) setState(s State) {
	r.mu.Lock()
	prev := r.state
	r.state = s
	r.mu.Unlock()
	pterm.Debug.Printf("Harness %s -> %s\n", prev, s)
}

// Run resolves the document for mode, creates the window, installs bindings,
// navigates and blocks until the window is closed or ctx is cancelled.
// A dev server started for Development mode is stopped before Run returns.
func (r *Runner) Run(ctx context.Context, mode Mode, title string, bindings []bridge.Binding) error {
	r.mu.Lock()
	if r.state != Idle {
		r.mu.Unlock()
		return ErrAlreadyRun
	}
	r.state = Resolving
	r.mu.Unlock()
	pterm.Debug.Printf("Harness %s -> %s\n", Idle, Resolving)

	defer func() {
		if r.State() != Closed {
			r.setState(Closed)
		}
	}()

	if r.opts.NewWindow == nil {
		return fmt.Errorf("no window factory configured")
	}

	doc, server, err := r.resolve(ctx, mode)
	if err != nil {
		return err
	}
	if server != nil {
		defer func() {
			if err := server.Stop(); err != nil {
				pterm.Warning.Printf("Could not stop dev server: %v\n", err)
				return
			}
			pterm.Debug.Println("Dev server stopped")
		}()
	}
	if err := checkAddress(doc.Address); err != nil {
		return err
	}

	b := bridge.New()
	if err := b.RegisterAll(bindings...); err != nil {
		return fmt.Errorf("failed to register bindings: %w", err)
	}
	if r.opts.Setup != nil {
		if err := r.opts.Setup(b); err != nil {
			return fmt.Errorf("failed to set up bridge: %w", err)
		}
	}
	r.setState(Bound)

	if err := ctx.Err(); err != nil {
		return err
	}

	w, err := r.opts.NewWindow(WindowOptions{
		Title:  title,
		Width:  r.opts.Width,
		Height: r.opts.Height,
		Debug:  r.opts.Debug,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer w.Destroy()

	w.SetTitle(title)
	w.SetSize(r.opts.Width, r.opts.Height)
	if err := b.Install(w); err != nil {
		return fmt.Errorf("failed to install bridge: %w", err)
	}

	// Closing the window is the normal way out; a cancelled context closes it too.
	stop := context.AfterFunc(ctx, w.Terminate)
	defer stop()

	w.Navigate(doc.Address)
	r.setState(Running)
	w.Run()
	r.setState(Closed)
	if re, ok := w.(RunErrer); ok {
		if err := re.Err(); err != nil {
			return fmt.Errorf("window failed: %w", err)
		}
	}
	return nil
}

func (r *Runner) resolve(ctx context.Context, mode Mode) (assets.Document, DevServer, error) {
	switch mode {
	case Production:
		if r.opts.Assets == nil {
			return assets.Document{}, nil, fmt.Errorf("no assets configured for %s mode", mode)
		}
		doc, err := assets.NewResolver(r.opts.Assets).Resolve(r.opts.Script, r.opts.Markup)
		if err != nil {
			return assets.Document{}, nil, err
		}
		pterm.Debug.Printf("Document is %s inline\n", util.FormatBytes(int64(len(doc.Payload))))
		return doc, nil, nil

	case Development:
		r.preflight(ctx)
		server, err := r.launch()(r.opts.ProjectDir)
		if err != nil {
			return assets.Document{}, nil, err
		}
		address := server.Address()
		pterm.Info.Printf("Dev server starting at %s\n", address)

		if r.opts.WaitReady {
			if err := devserver.WaitReady(ctx, address); err != nil {
				// The window still opens and shows a failed load.
				pterm.Warning.Printf("Dev server not ready: %v\n", err)
			}
		}
		return assets.Remote(address), server, nil
	}

	return assets.Document{}, nil, fmt.Errorf("unknown mode %s", mode)
}

func (r *Runner) launch() LaunchFunc {
	if r.opts.Launch != nil {
		return r.opts.Launch
	}
	l := r.opts.Launcher
	return func(projectDir string) (DevServer, error) {
		srv, err := l.Start(projectDir)
		if err != nil {
			return nil, err
		}
		return srv, nil
	}
}

// preflight warns when the Node.js toolchain the dev command relies on looks
// unusable. It never blocks startup: the spawn itself is the real check.
func (r *Runner) preflight(ctx context.Context) {
	if r.opts.Launch != nil || !devserver.UsesNode(r.opts.Launcher.Argv()) {
		return
	}
	v, err := devserver.CheckNode(ctx)
	if err != nil {
		pterm.Warning.Printf("Node.js check failed: %v\n", err)
		return
	}
	pterm.Debug.Printf("Using node %s\n", v)
}

func checkAddress(address string) error {
	if address == "" {
		return &NavigationError{Address: address, Err: errors.New("empty address")}
	}
	u, err := url.Parse(address)
	if err != nil {
		return &NavigationError{Address: address, Err: err}
	}
	switch u.Scheme {
	case "data", "http", "https":
		return nil
	}
	return &NavigationError{Address: address, Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
}
