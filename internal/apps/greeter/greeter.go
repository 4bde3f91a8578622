// Package greeter is the smallest webshell app: one binding that builds a
// greeting for the name typed into the page.
package greeter

import (
	"embed"
	"io/fs"

	"github.com/webshell-dev/webshell/internal/bridge"
)

const (
	Name  = "greeter"
	Title = "Greeter"
	Short = "Greet someone by name"
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

// Greet returns the greeting for name. The name is used exactly as given.
func Greet(name string) (string, error) {
	return "Hello " + name + "!", nil
}

// Session holds no state; every call is independent.
type Session struct{}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Bindings() []bridge.Binding {
	return []bridge.Binding{
		{Name: "getGreeting", Handler: bridge.Func1(Greet)},
	}
}

func (s *Session) Setup(*bridge.Bridge) error {
	return nil
}
