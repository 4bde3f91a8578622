// Package bridge exposes native Go handlers to the script running inside a
// window and routes script-initiated calls, messages and scheme requests back
// to them.
package bridge

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
)

// ReservedPrefix marks names used by the bridge's own plumbing.
const ReservedPrefix = "__webshell_"

// Handler answers a script call. Arguments arrive in call order.
type Handler func(args []any) (any, error)

// Binding is a single named entry point exposed to the script.
type Binding struct {
	Name    string
	Handler Handler
}

// Bridge is the registry and dispatcher for calls crossing the native/script
// boundary. Each window owns exactly one Bridge.
type Bridge struct {
	mu       sync.RWMutex
	bindings map[string]Handler
	events   map[string][]EventHandler
	scheme   SchemeHandler
	host     Host
	sealed   bool
}

// New creates an empty Bridge.
func New() *Bridge {
	return &Bridge{
		bindings: make(map[string]Handler),
		events:   make(map[string][]EventHandler),
	}
}

// Register adds a callable under name. A second registration under the same
// name fails and leaves the first one active.
func (b *Bridge) Register(name string, handler Handler) error {
	if name == "" {
		return fmt.Errorf("binding name cannot be empty")
	}
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("binding name %q has surrounding whitespace", name)
	}
	if strings.HasPrefix(name, ReservedPrefix) {
		return fmt.Errorf("binding name %q uses the reserved prefix %q", name, ReservedPrefix)
	}
	if handler == nil {
		return fmt.Errorf("binding %q has no handler", name)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sealed {
		return ErrSealed
	}
	if _, ok := b.bindings[name]; ok {
		return &DuplicateBindingError{Name: name}
	}
	b.bindings[name] = handler
	return nil
}

// RegisterAll registers each binding in order and stops at the first failure.
func (b *Bridge) RegisterAll(bindings ...Binding) error {
	for _, binding := range bindings {
		if err := b.Register(binding.Name, binding.Handler); err != nil {
			return err
		}
	}
	return nil
}

// Invoke dispatches a script-initiated call to the handler registered under
// name. The handler's result is returned unchanged once it has been checked
// to be representable on the script side.
func (b *Bridge) Invoke(name string, args []any) (result any, err error) {
	b.mu.RLock()
	handler, ok := b.bindings[name]
	b.mu.RUnlock()
	if !ok {
		return nil, &UnknownBindingError{Name: name}
	}

	for i, arg := range args {
		if err := validate(reflect.ValueOf(arg), fmt.Sprintf("$.args[%d]", i)); err != nil {
			return nil, err
		}
	}

	// A failing handler must only fail its own call, never the window.
	defer func() {
		if r := recover(); r != nil {
			pterm.Debug.Printf("Binding %s panicked: %v\n", name, r)
			result, err = nil, fmt.Errorf("binding %q failed: %v", name, r)
		}
	}()

	result, err = handler(args)
	if err != nil {
		return nil, err
	}
	if err := validate(reflect.ValueOf(result), "$.result"); err != nil {
		return nil, err
	}
	return result, nil
}

// Has reports whether a binding is registered under name.
func (b *Bridge) Has(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.bindings[name]
	return ok
}

// Names returns the registered binding names in sorted order.
func (b *Bridge) Names() []string {
	b.mu.RLock()
	names := lo.Keys(b.bindings)
	b.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Sealed reports whether the binding set has been frozen by Install.
func (b *Bridge) Sealed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sealed
}
