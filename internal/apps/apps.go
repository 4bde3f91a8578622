// Package apps lists the applications webshell can host.
package apps

import (
	"io/fs"

	"github.com/samber/lo"
	"github.com/webshell-dev/webshell/internal/apps/augraph"
	"github.com/webshell-dev/webshell/internal/apps/echo"
	"github.com/webshell-dev/webshell/internal/apps/greeter"
	"github.com/webshell-dev/webshell/internal/bridge"
)

// Session is the native state behind one window.
type Session interface {
	// Bindings are the named calls the page can await.
	Bindings() []bridge.Binding
	// Setup registers events and scheme handlers before the bridge is installed.
	Setup(b *bridge.Bridge) error
}

// App describes a hostable application.
type App struct {
	Name   string
	Title  string
	Short  string
	Assets func() fs.FS
	// NewSession creates the state for a fresh window.
	NewSession func() Session
}

// All returns every app in display order.
func All() []App {
	return []App{
		{
			Name:       greeter.Name,
			Title:      greeter.Title,
			Short:      greeter.Short,
			Assets:     greeter.Assets,
			NewSession: func() Session { return greeter.NewSession() },
		},
		{
			Name:       augraph.Name,
			Title:      augraph.Title,
			Short:      augraph.Short,
			Assets:     augraph.Assets,
			NewSession: func() Session { return augraph.NewSession() },
		},
		{
			Name:       echo.Name,
			Title:      echo.Title,
			Short:      echo.Short,
			Assets:     echo.Assets,
			NewSession: func() Session { return echo.NewSession() },
		},
	}
}

// Lookup finds an app by name.
func Lookup(name string) (App, bool) {
	return lo.Find(All(), func(a App) bool { return a.Name == name })
}

// BindingNames lists the calls a fresh session of app exposes.
func (a App) BindingNames() []string {
	return lo.Map(a.NewSession().Bindings(), func(b bridge.Binding, _ int) string { return b.Name })
}
