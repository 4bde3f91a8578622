// Package augraph plots the waveform of a WAV file. The native side decodes
// audio into [time, amplitude] pairs; the page draws them.
package augraph

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pterm/pterm"
	"github.com/webshell-dev/webshell/internal/bridge"
)

const (
	Name  = "augraph"
	Title = "Augraph"
	Short = "Plot the waveform of an audio file"

	// PlotEvent asks the page to fetch the session's samples and redraw.
	PlotEvent = "plot"
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

// Session keeps the most recently opened signal.
type Session struct {
	home string

	mu      sync.Mutex
	samples []Sample
	bridge  *bridge.Bridge
}

// NewSession resolves relative paths against the user's home directory.
func NewSession() *Session {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return &Session{home: home}
}

func (s *Session) Bindings() []bridge.Binding {
	return []bridge.Binding{
		{Name: "read", Handler: bridge.Func1(s.Read)},
		{Name: "load", Handler: bridge.Func0(s.Load)},
		{Name: "openFile", Handler: bridge.Func1(s.Open)},
	}
}

func (s *Session) Setup(b *bridge.Bridge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bridge = b
	return nil
}

// Read decodes the file at path as a mono signal without keeping it.
func (s *Session) Read(path string) ([]Sample, error) {
	return ReadFile(s.resolve(path))
}

// Load returns the samples of the last opened file, or an empty list.
func (s *Session) Load() ([]Sample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.samples == nil {
		return []Sample{}, nil
	}
	return s.samples, nil
}

// Open reads path into the session and asks the page to plot it. It returns
// the number of samples read.
func (s *Session) Open(path string) (int, error) {
	samples, err := s.Read(path)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.samples = samples
	b := s.bridge
	s.mu.Unlock()

	pterm.Debug.Printf("Opened %s (%d samples)\n", path, len(samples))
	if b != nil {
		if err := b.Notify(PlotEvent, len(samples)); err != nil {
			return 0, err
		}
	}
	return len(samples), nil
}

func (s *Session) resolve(path string) string {
	if filepath.IsAbs(path) || s.home == "" {
		return path
	}
	return filepath.Join(s.home, path)
}
