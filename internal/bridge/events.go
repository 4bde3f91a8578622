package bridge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
)

// MessageEvent is the event raised for fire-and-forget posts from the script.
const MessageEvent = "message"

// EventHandler receives the payload of an event. It has no way to reply.
type EventHandler func(payload any)

// On appends handler to the ordered list of handlers for event.
func (b *Bridge) On(event string, handler EventHandler) error {
	event = strings.TrimSpace(event)
	if event == "" {
		return fmt.Errorf("event name cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("event %q has no handler", event)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.events[event] = append(b.events[event], handler)
	return nil
}

// Dispatch runs every handler registered for event, in registration order, on
// the calling goroutine. It returns the number of handlers that ran.
func (b *Bridge) Dispatch(event string, payload any) int {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.events[event]...)
	b.mu.RUnlock()

	for i, handler := range handlers {
		b.runEventHandler(event, i, handler, payload)
	}
	return len(handlers)
}

func (b *Bridge) runEventHandler(event string, index int, handler EventHandler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			pterm.Debug.Printf("Handler %d for event %s panicked: %v\n", index, event, r)
		}
	}()
	handler(payload)
}

// Post delivers a fire-and-forget message from the script. Messages without a
// listener are logged and dropped.
func (b *Bridge) Post(message string) {
	if n := b.Dispatch(MessageEvent, message); n == 0 {
		pterm.Debug.Printf("Dropped message with no listener: %q\n", message)
	}
}

// Events returns the names of events that have at least one handler.
func (b *Bridge) Events() []string {
	b.mu.RLock()
	events := lo.Keys(b.events)
	b.mu.RUnlock()
	sort.Strings(events)
	return events
}
