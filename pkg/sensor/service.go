package sensor

import (
	"sync/atomic"

	"github.com/ev3-protocol/ev3-go/pkg/command"
)

// Static is a sensor whose value is set by its owner.
type Static struct {
	port  Port
	value atomic.Int32
}

// NewStatic creates a Static sensor at port p holding v.
func NewStatic(p Port, v int32) *Static {
	s := &Static{port: p}
	s.value.Store(v)
	return s
}

func (s *Static) Port() Port { return s.port }

func (s *Static) LastValue() int32 { return s.value.Load() }

// Update stores a newly polled value.
func (s *Static) Update(v int32) { s.value.Store(v) }

// NullService is a Service with no sensors attached. Deactivation still
// clears the brick's input configuration.
type NullService struct{}

func (NullService) CreateSensor(Port) Sensor { return nil }

func (NullService) PauseUpdates() {}

func (NullService) ResumeUpdates() {}

func (NullService) DeactivateAll(s Sender) error {
	_, err := s.Send(command.ClearAllSensors(0))
	return err
}

func (NullService) Changes() <-chan struct{} { return nil }

var (
	_ Sensor  = (*Static)(nil)
	_ Service = NullService{}
)
