package sensor

import (
	"sync/atomic"

	"github.com/ev3-protocol/ev3-go/pkg/wire"
)

// Sensor is a bound sensor at one port.
type Sensor interface {
	// Port returns the port the sensor is bound to.
	Port() Port

	// LastValue returns the most recently polled value.
	LastValue() int32
}

// Sender issues commands on the brick connection.
// Implemented by *connection.Connection.
type Sender interface {
	Send(cmd *wire.Command) (uint16, error)
}

// Service creates sensors and polls them. It is provided by the host
// application.
type Service interface {
	// CreateSensor returns the sensor currently configured at p, or nil.
	CreateSensor(p Port) Sensor

	// PauseUpdates suspends polling.
	PauseUpdates()

	// ResumeUpdates resumes polling.
	ResumeUpdates()

	// DeactivateAll sends the commands that switch every sensor off.
	DeactivateAll(s Sender) error

	// Changes delivers a value whenever the port configuration changes.
	// A nil channel means the service never reports changes.
	Changes() <-chan struct{}
}

// Set is one complete binding of all four ports.
type Set [NumPorts]Sensor

// Slots holds the current Set. Readers never see a partial replacement.
// The zero value has nothing bound.
type Slots struct {
	current atomic.Pointer[Set]
}

// Replace installs a new set.
func (s *Slots) Replace(set Set) {
	s.current.Store(&set)
}

// Snapshot returns the current set.
func (s *Slots) Snapshot() Set {
	if p := s.current.Load(); p != nil {
		return *p
	}
	return Set{}
}

// Get returns the sensor at p, or nil. p must be valid.
func (s *Slots) Get(p Port) Sensor {
	return s.Snapshot()[p.Index()]
}

// Value returns the last value at p: NoValue when nothing is bound and
// UnknownSelector when p is not a sensor port.
func (s *Slots) Value(p Port) int32 {
	if !p.Valid() {
		return UnknownSelector
	}
	sn := s.Get(p)
	if sn == nil {
		return NoValue
	}
	return sn.LastValue()
}
