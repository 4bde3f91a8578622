// Package echo exercises the untyped channels of the bridge: a custom-scheme
// POST that echoes its body and fire-and-forget messages that are
// acknowledged with an event.
package echo

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pterm/pterm"
	"github.com/webshell-dev/webshell/internal/bridge"
)

const (
	Name  = "echo"
	Title = "Echo"
	Short = "Echo text through a custom scheme and posted messages"

	// AckEvent is raised on the page for every message it posts.
	AckEvent = "ack"
)

//go:embed web
var web embed.FS

// Assets returns the Production payload.
func Assets() fs.FS {
	sub, err := fs.Sub(web, "web")
	if err != nil {
		panic(err)
	}
	return sub
}

// Session counts the messages it has received.
type Session struct {
	mu       sync.Mutex
	received int
}

func NewSession() *Session {
	return &Session{}
}

// Bindings is empty: the page only uses fetch and window.ipc.postMessage.
func (s *Session) Bindings() []bridge.Binding {
	return nil
}

func (s *Session) Setup(b *bridge.Bridge) error {
	if err := b.HandleScheme(Serve); err != nil {
		return err
	}
	return b.On(bridge.MessageEvent, func(payload any) {
		s.mu.Lock()
		s.received++
		n := s.received
		s.mu.Unlock()

		pterm.Info.Printf("Message %d: %v\n", n, payload)
		if err := b.Notify(AckEvent, map[string]any{"count": n, "message": payload}); err != nil {
			pterm.Debug.Printf("Could not acknowledge message: %v\n", err)
		}
	})
}

// Serve answers a scheme request with its own body.
func Serve(req bridge.SchemeRequest) (bridge.SchemeResponse, error) {
	if req.Method != "POST" {
		return bridge.SchemeResponse{Status: 405, Body: fmt.Sprintf("method %s not allowed", req.Method)}, nil
	}
	return bridge.SchemeResponse{Body: req.Body}, nil
}
