package ev3

import "errors"

// State is the brick lifecycle state.
type State uint8

const (
	StateUninitialized State = iota
	StateInitialized
	StateRunning
	StatePaused
	StateDisconnected
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "UNINITIALIZED"
	case StateInitialized:
		return "INITIALIZED"
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	case StateDisconnected:
		return "DISCONNECTED"
	default:
		return "UNKNOWN"
	}
}

// Lifecycle errors.
var (
	// ErrNotInitialized indicates an operation that needs Initialise first.
	ErrNotInitialized = errors.New("brick not initialized")

	// ErrDisconnected indicates an operation on a disconnected brick.
	ErrDisconnected = errors.New("brick disconnected")
)
