package startup

import "fmt"

// State represents a state in the startup state machine. The state machine
// provided by this package is the following:
//
//     +--------------+
//     | Idle         |
//     +-+------------+
//       |
//     +-v------------+
//     | Starting     |
//     +-+------------+
//       |
//     +-v------------+
//     | Started      |
//     +--------------+
//
// Idle is the initial state, during which services can be registered. The
// coordinator is in Starting state while the Initialize barrier and the Start
// fan-out run. Started is terminal: a coordinator performs exactly one
// startup sequence and is never reset.
type State uint8

const (
	// Idle is the initial state of a coordinator.
	Idle State = iota
	// Starting represents a startup sequence in progress.
	Starting
	// Started represents a completed startup sequence.
	Started
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Starting:
		return "Starting"
	case Started:
		return "Started"
	default:
		return fmt.Sprintf("%d", int(s))
	}
}
