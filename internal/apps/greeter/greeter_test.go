package greeter

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webshell-dev/webshell/internal/assets"
	"github.com/webshell-dev/webshell/internal/bridge"
)

func TestGetGreeting(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "World", "Hello World!"},
		{"whitespace kept", "  Ada ", "Hello   Ada !"},
		{"empty", "", "Hello !"},
	}
	b := bridge.New()
	require.NoError(t, b.RegisterAll(NewSession().Bindings()...))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := b.Invoke("getGreeting", []any{tt.in})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestAssetsResolve(t *testing.T) {
	_, err := fs.Stat(Assets(), assets.DefaultScript)
	require.NoError(t, err)

	doc, err := assets.NewResolver(Assets()).Resolve(assets.DefaultScript, assets.DefaultMarkup)
	require.NoError(t, err)
	assert.Contains(t, string(doc.Payload), "getGreeting(name.value)")
}
