package apps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webshell-dev/webshell/internal/assets"
	"github.com/webshell-dev/webshell/internal/bridge"
)

func TestLookup(t *testing.T) {
	app, ok := Lookup("greeter")
	require.True(t, ok)
	assert.Equal(t, "Greeter", app.Title)
	assert.Equal(t, []string{"getGreeting"}, app.BindingNames())

	_, ok = Lookup("missing")
	assert.False(t, ok)
}

func TestEveryAppResolvesAndInstalls(t *testing.T) {
	for _, app := range All() {
		t.Run(app.Name, func(t *testing.T) {
			doc, err := assets.NewResolver(app.Assets()).Resolve(assets.DefaultScript, assets.DefaultMarkup)
			require.NoError(t, err)
			assert.Contains(t, doc.Address, "data:text/html,")

			s := app.NewSession()
			b := bridge.New()
			require.NoError(t, b.RegisterAll(s.Bindings()...))
			require.NoError(t, s.Setup(b))
		})
	}
}

func TestBindingSurface(t *testing.T) {
	augraph, ok := Lookup("augraph")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"read", "load", "openFile"}, augraph.BindingNames())

	echo, ok := Lookup("echo")
	require.True(t, ok)
	assert.Empty(t, echo.BindingNames())
}
