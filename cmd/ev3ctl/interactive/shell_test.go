package interactive

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ev3-protocol/ev3-go/pkg/command"
	"github.com/ev3-protocol/ev3-go/pkg/ev3"
	"github.com/ev3-protocol/ev3-go/pkg/sensor"
)

type fakeBrick struct {
	calls    []string
	state    ev3.State
	pauseErr error
}

func (f *fakeBrick) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeBrick) Name() string     { return ev3.Name }
func (f *fakeBrick) State() ev3.State { return f.state }

func (f *fakeBrick) Start(context.Context) error {
	f.record("start")
	f.state = ev3.StateRunning
	return nil
}

func (f *fakeBrick) Pause() error {
	f.record("pause")
	return f.pauseErr
}

func (f *fakeBrick) Destroy() error        { f.record("destroy"); return nil }
func (f *fakeBrick) IsAlive() bool         { f.record("alive"); return true }
func (f *fakeBrick) AssignSensorsToPorts() { f.record("rebind") }

func (f *fakeBrick) SensorValue(p sensor.Port) int32 {
	if !p.Valid() {
		return sensor.UnknownSelector
	}
	return int32(p) * 10
}

func (f *fakeBrick) MoveSteps(ports command.PortMask, speed, up, constant, down int, brake bool) {
	f.record("steps %02x %d %d %d %d %t", ports, speed, up, constant, down, brake)
}

func (f *fakeBrick) MoveTime(ports command.PortMask, power, up, constant, down int, brake bool) {
	f.record("time %02x %d %d %d %d %t", ports, power, up, constant, down, brake)
}

func (f *fakeBrick) Stop(ports command.PortMask, brake bool) { f.record("stop %02x %t", ports, brake) }
func (f *fakeBrick) SetPower(ports command.PortMask, n int)  { f.record("power %02x %d", ports, n) }
func (f *fakeBrick) SetSpeed(ports command.PortMask, n int)  { f.record("speed %02x %d", ports, n) }
func (f *fakeBrick) StartMotors(ports command.PortMask)      { f.record("run %02x", ports) }

func (f *fakeBrick) PlayTone(hz, ms, vol int) { f.record("tone %d %d %d", hz, ms, vol) }

func (f *fakeBrick) SetLED(s command.LEDStatus) { f.record("led %s", s) }

func TestExecute(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"move A 50 360", "steps 01 50 0 360 0 true"},
		{"m bc -30 720 20 coast", "steps 06 -30 20 720 20 false"},
		{"time D 80 1500", "time 08 80 0 1500 0 true"},
		{"stop", "stop 0f true"},
		{"stop AB coast", "stop 03 false"},
		{"power AD 40", "power 09 40"},
		{"speed C -10", "speed 04 -10"},
		{"run ABCD", "run 0f"},
		{"tone 440 200", "tone 440 200 50"},
		{"tone 880 100 90", "tone 880 100 90"},
		{"led orange-pulse", "led ORANGE_PULSE"},
		{"LED Green", "led GREEN"},
		{"start", "start"},
		{"destroy", "destroy"},
		{"rebind", "rebind"},
		{"alive", "alive"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			b := &fakeBrick{}
			var out bytes.Buffer
			s := New(b, &out)

			quit := s.Execute(context.Background(), tt.line)
			assert.False(t, quit)
			require.Len(t, b.calls, 1, out.String())
			assert.Equal(t, tt.want, b.calls[0])
			assert.NotContains(t, out.String(), "Error")
		})
	}
}

func TestExecuteErrors(t *testing.T) {
	for _, line := range []string{
		"move E 50 360",
		"move A fast 360",
		"move A 50",
		"time A 50 x",
		"power A",
		"speed A x",
		"run",
		"stop Z",
		"tone 440",
		"tone hi 200",
		"led purple",
		"sensor x",
	} {
		t.Run(line, func(t *testing.T) {
			b := &fakeBrick{}
			var out bytes.Buffer
			New(b, &out).Execute(context.Background(), line)

			assert.Empty(t, b.calls)
			assert.Contains(t, out.String(), "Error:")
		})
	}
}

func TestExecuteLifecycleError(t *testing.T) {
	b := &fakeBrick{pauseErr: ev3.ErrNotInitialized}
	var out bytes.Buffer
	New(b, &out).Execute(context.Background(), "pause")
	assert.Contains(t, out.String(), "Error: brick not initialized")
}

func TestExecuteMisc(t *testing.T) {
	b := &fakeBrick{state: ev3.StatePaused}
	var out bytes.Buffer
	s := New(b, &out)
	ctx := context.Background()

	assert.False(t, s.Execute(ctx, ""))
	assert.False(t, s.Execute(ctx, "   "))

	s.Execute(ctx, "status")
	assert.Contains(t, out.String(), "Lego EV3: PAUSED")
	assert.Contains(t, out.String(), "PORT_3: 30")

	out.Reset()
	s.Execute(ctx, "sensor 9")
	assert.Contains(t, out.String(), "-1")

	out.Reset()
	s.Execute(ctx, "frobnicate")
	assert.Contains(t, out.String(), "Unknown command: frobnicate")

	assert.True(t, s.Execute(ctx, "quit"))
	assert.True(t, s.Execute(ctx, "q"))
}

func TestParsePorts(t *testing.T) {
	m, err := ParsePorts("acb")
	require.NoError(t, err)
	assert.Equal(t, command.Mask(command.MotorA, command.MotorB, command.MotorC), m)

	_, err = ParsePorts("")
	assert.Error(t, err)
	_, err = ParsePorts("A1")
	assert.Error(t, err)
}

func TestParseLED(t *testing.T) {
	for st := command.LEDOff; st <= command.LEDOrangePulse; st++ {
		got, err := ParseLED(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}
	_, err := ParseLED("blue")
	assert.Error(t, err)
}
