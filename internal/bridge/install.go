package bridge

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

const (
	postBinding   = ReservedPrefix + "post"
	schemeBinding = ReservedPrefix + "scheme"
)

//go:embed shim.js
var shimSource string

// Callable is the shape bound on the native window: the script's arguments
// arrive JSON-encoded and the result is JSON-encoded on the way back.
type Callable func(args ...json.RawMessage) (any, error)

// Host is the native surface a Bridge installs itself on.
type Host interface {
	// Bind exposes fn to the script as a global function named name.
	Bind(name string, fn Callable) error
	// Init registers script that runs before every page load.
	Init(js string)
	// Eval runs script in the current page. It must be called on the UI thread.
	Eval(js string)
	// Dispatch schedules fn on the UI thread.
	Dispatch(fn func())
}

// Install binds every registered handler on host and seals the bridge. It can
// only be called once.
func (b *Bridge) Install(host Host) error {
	b.mu.Lock()
	if b.sealed {
		b.mu.Unlock()
		return ErrSealed
	}
	b.sealed = true
	b.host = host
	b.mu.Unlock()

	for _, name := range b.Names() {
		if err := host.Bind(name, b.callable(name)); err != nil {
			return fmt.Errorf("failed to bind %s: %w", name, err)
		}
		pterm.Debug.Printf("Bound %s\n", name)
	}

	if err := host.Bind(postBinding, b.postCallable); err != nil {
		return fmt.Errorf("failed to bind message channel: %w", err)
	}
	if err := host.Bind(schemeBinding, b.schemeCallable); err != nil {
		return fmt.Errorf("failed to bind %s scheme: %w", Scheme, err)
	}
	host.Init(Shim())
	return nil
}

// Shim returns the init script that wires window.ipc.postMessage and
// Scheme fetches to the bridge.
func Shim() string {
	return strings.ReplaceAll(shimSource, "__SCHEME__", Scheme)
}

func (b *Bridge) callable(name string) Callable {
	return func(raw ...json.RawMessage) (any, error) {
		args := make([]any, len(raw))
		for i, r := range raw {
			v, err := Decode(r)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}

		result, err := b.Invoke(name, args)
		if err != nil {
			pterm.Debug.Printf("Call %s failed: %v\n", name, err)
			return nil, err
		}
		return result, nil
	}
}

func (b *Bridge) postCallable(raw ...json.RawMessage) (any, error) {
	if len(raw) != 1 {
		return nil, &SerializationError{Path: "$.args", Reason: fmt.Sprintf("postMessage expects 1 argument, got %d", len(raw))}
	}
	var message string
	if err := json.Unmarshal(raw[0], &message); err != nil {
		return nil, &SerializationError{Path: "$.args[0]", Reason: "postMessage expects a string", Err: err}
	}
	b.Post(message)
	return nil, nil
}

func (b *Bridge) schemeCallable(raw ...json.RawMessage) (any, error) {
	var req SchemeRequest
	fields := []*string{&req.URL, &req.Method, &req.Body}
	if len(raw) != len(fields) {
		return nil, &SerializationError{Path: "$.args", Reason: fmt.Sprintf("scheme request expects %d arguments, got %d", len(fields), len(raw))}
	}
	for i, field := range fields {
		if err := json.Unmarshal(raw[i], field); err != nil {
			return nil, &SerializationError{Path: fmt.Sprintf("$.args[%d]", i), Reason: "expected a string", Err: err}
		}
	}
	pterm.Debug.Printf("%s %s (%d bytes)\n", req.Method, req.URL, len(req.Body))
	return b.ServeScheme(req), nil
}

// Notify raises event on the script side's window with payload as the
// MessageEvent data. It is safe to call from any goroutine, including from
// inside a handler.
func (b *Bridge) Notify(event string, payload any) error {
	b.mu.RLock()
	host := b.host
	b.mu.RUnlock()
	if host == nil {
		return ErrNotInstalled
	}

	if err := Validate(payload); err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return &SerializationError{Path: "$", Err: err}
	}
	name, err := json.Marshal(event)
	if err != nil {
		return &SerializationError{Path: "$.event", Err: err}
	}

	js := fmt.Sprintf("window.dispatchEvent(new MessageEvent(%s, { data: %s }));", name, data)
	host.Dispatch(func() { host.Eval(js) })
	return nil
}
