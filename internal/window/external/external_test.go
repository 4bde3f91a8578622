package external

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webshell-dev/webshell/internal/bridge"
	"github.com/webshell-dev/webshell/internal/harness"
)

func newBrowser(t *testing.T, open func(string) error) *Browser {
	t.Helper()
	w, err := New(harness.WindowOptions{Title: "Greeter"})
	require.NoError(t, err)
	b := w.(*Browser)
	b.OpenFunc = open
	return b
}

func TestBrowserOpensNavigatedAddress(t *testing.T) {
	opened := make(chan string, 1)
	b := newBrowser(t, func(address string) error {
		opened <- address
		return nil
	})
	require.NoError(t, b.Bind("getGreeting", nil))
	require.NoError(t, b.Bind(bridge.ReservedPrefix+"post", nil))
	b.Navigate("http://localhost:5173/")

	done := make(chan struct{})
	go func() {
		b.Run()
		close(done)
	}()

	select {
	case address := <-opened:
		assert.Equal(t, "http://localhost:5173/", address)
	case <-time.After(time.Second):
		t.Fatal("browser was not opened")
	}

	b.Terminate()
	b.Terminate()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Terminate")
	}
	assert.NoError(t, b.Err())
}

func TestBrowserOpenFailureEndsRun(t *testing.T) {
	b := newBrowser(t, func(string) error { return errors.New("no browser") })
	b.Navigate("http://localhost:5173/")

	b.Run()

	require.Error(t, b.Err())
	assert.Contains(t, b.Err().Error(), "no browser")
}

type stoppedServer struct{ stopped bool }

func (s *stoppedServer) Address() string { return "http://localhost:5173/" }
func (s *stoppedServer) Stop() error {
	s.stopped = true
	return nil
}

func TestRunnerFailsWhenBrowserCannotOpen(t *testing.T) {
	srv := &stoppedServer{}
	r := harness.NewRunner(harness.Options{
		Launch: func(string) (harness.DevServer, error) { return srv, nil },
		NewWindow: func(opts harness.WindowOptions) (harness.Window, error) {
			w, err := New(opts)
			if err != nil {
				return nil, err
			}
			w.(*Browser).OpenFunc = func(string) error { return errors.New("no browser") }
			return w, nil
		},
	})

	err := r.Run(context.Background(), harness.Development, "Greeter", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no browser")
	assert.True(t, srv.stopped)
	assert.Equal(t, harness.Closed, r.State())
}
