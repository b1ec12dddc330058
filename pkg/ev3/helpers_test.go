package ev3

import (
	"errors"
	"sync"

	"github.com/ev3-protocol/ev3-go/pkg/sensor"
	"github.com/ev3-protocol/ev3-go/pkg/transport"
	"github.com/ev3-protocol/ev3-go/pkg/wire"
)

// fakeTransport records every frame it is asked to send.
type fakeTransport struct {
	mu         sync.Mutex
	connected  bool
	initCalls  int
	initErr    error
	sendErr    error
	closeCalls int
	frames     [][]byte
}

func (f *fakeTransport) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.initCalls++
	if f.initErr != nil {
		return f.initErr
	}
	f.connected = true
	return nil
}

func (f *fakeTransport) Send(frame []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.connected {
		return transport.ErrNotConnected
	}
	if f.sendErr != nil {
		return f.sendErr
	}
	f.frames = append(f.frames, append([]byte(nil), frame...))
	return nil
}

func (f *fakeTransport) Disconnect() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeCalls++
	f.connected = false
	return nil
}

func (f *fakeTransport) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func (f *fakeTransport) setSendErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sendErr = err
}

// commands decodes the recorded frames.
func (f *fakeTransport) commands() []*wire.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*wire.Command, 0, len(f.frames))
	for _, fr := range f.frames {
		cmd, err := wire.Decode(fr)
		if err != nil {
			panic(err)
		}
		out = append(out, cmd)
	}
	return out
}

func (f *fakeTransport) opcodes() []wire.OpCode {
	var ops []wire.OpCode
	for _, c := range f.commands() {
		ops = append(ops, c.OpCode)
	}
	return ops
}

var errLinkDown = errors.New("link down")

// fakeSensors is a sensor service with configurable bindings.
type fakeSensors struct {
	mu          sync.Mutex
	bound       map[sensor.Port]int32
	created     int
	paused      int
	resumed     int
	deactivated int
	deactErr    error
	changes     chan struct{}
}

func newFakeSensors() *fakeSensors {
	return &fakeSensors{
		bound:   make(map[sensor.Port]int32),
		changes: make(chan struct{}),
	}
}

func (s *fakeSensors) bind(p sensor.Port, v int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bound[p] = v
}

func (s *fakeSensors) unbind(p sensor.Port) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bound, p)
}

func (s *fakeSensors) CreateSensor(p sensor.Port) sensor.Sensor {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created++
	v, ok := s.bound[p]
	if !ok {
		return nil
	}
	return sensor.NewStatic(p, v)
}

func (s *fakeSensors) PauseUpdates() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused++
}

func (s *fakeSensors) ResumeUpdates() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumed++
}

func (s *fakeSensors) DeactivateAll(snd sensor.Sender) error {
	s.mu.Lock()
	s.deactivated++
	err := s.deactErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return sensor.NullService{}.DeactivateAll(snd)
}

func (s *fakeSensors) Changes() <-chan struct{} {
	return s.changes
}

func (s *fakeSensors) counts() (created, paused, resumed, deactivated int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.created, s.paused, s.resumed, s.deactivated
}
