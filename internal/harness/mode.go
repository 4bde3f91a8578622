package harness

import "fmt"

// Mode selects where the page comes from. It is fixed for the life of a process.
type Mode int

const (
	// Production shows the bundled payload inlined into a data: document.
	Production Mode = iota
	// Development shows the page served by a live-reload dev server.
	Development
)

// ModeFromFlag maps the CLI's --dev flag onto a Mode.
func ModeFromFlag(dev bool) Mode {
	if dev {
		return Development
	}
	return Production
}

func (m Mode) String() string {
	switch m {
	case Production:
		return "production"
	case Development:
		return "development"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
