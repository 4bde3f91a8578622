package echo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webshell-dev/webshell/internal/bridge"
)

func TestServe(t *testing.T) {
	tests := []struct {
		name   string
		req    bridge.SchemeRequest
		status int
		body   string
	}{
		{"post echoes", bridge.SchemeRequest{Method: "POST", Body: "hello"}, 0, "hello"},
		{"empty body", bridge.SchemeRequest{Method: "POST"}, 0, ""},
		{"get rejected", bridge.SchemeRequest{Method: "GET"}, 405, "method GET not allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Serve(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.body, res.Body)
		})
	}
}

type fakeHost struct {
	bound map[string]bridge.Callable
	evals []string
}

func (f *fakeHost) Bind(name string, fn bridge.Callable) error {
	f.bound[name] = fn
	return nil
}

func (f *fakeHost) Init(string)        {}
func (f *fakeHost) Eval(js string)     { f.evals = append(f.evals, js) }
func (f *fakeHost) Dispatch(fn func()) { fn() }

func TestSessionRoundTrip(t *testing.T) {
	s := NewSession()
	b := bridge.New()
	require.NoError(t, b.RegisterAll(s.Bindings()...))
	require.NoError(t, s.Setup(b))
	host := &fakeHost{bound: map[string]bridge.Callable{}}
	require.NoError(t, b.Install(host))

	res := b.ServeScheme(bridge.SchemeRequest{URL: "webshell://localhost", Method: "POST", Body: "ping"})
	assert.Equal(t, 200, res.Status)
	assert.Equal(t, "ping", res.Body)

	post := host.bound[bridge.ReservedPrefix+"post"]
	require.NotNil(t, post)
	_, err := post(json.RawMessage(`"first"`))
	require.NoError(t, err)
	_, err = post(json.RawMessage(`"second"`))
	require.NoError(t, err)

	require.Len(t, host.evals, 2)
	assert.Equal(t, `window.dispatchEvent(new MessageEvent("ack", { data: {"count":2,"message":"second"} }));`, host.evals[1])
}
