package harness

import "fmt"

// State is a step of a Runner's life: Idle → Resolving → Bound → Running → Closed.
type State int

const (
	Idle State = iota
	Resolving
	Bound
	Running
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Resolving:
		return "resolving"
	case Bound:
		return "bound"
	case Running:
		return "running"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
