package command

import "github.com/ev3-protocol/ev3-go/pkg/wire"

// MotorPort identifies one output port.
type MotorPort uint8

const (
	MotorA MotorPort = iota
	MotorB
	MotorC
	MotorD
)

// Mask returns the single-port mask for p.
func (p MotorPort) Mask() PortMask {
	return PortMask(1 << (p & 0x03))
}

// String returns the port letter.
func (p MotorPort) String() string {
	switch p {
	case MotorA:
		return "A"
	case MotorB:
		return "B"
	case MotorC:
		return "C"
	case MotorD:
		return "D"
	default:
		return "?"
	}
}

// PortMask selects several output ports, one bit per motor.
type PortMask uint8

// AllMotors addresses ports A to D.
const AllMotors PortMask = 0x0F

// Mask combines ports into a PortMask.
func Mask(ports ...MotorPort) PortMask {
	var m PortMask
	for _, p := range ports {
		m |= p.Mask()
	}
	return m
}

// StepSpeed builds OUTPUT_STEP_SPEED: ramp up over step1 tacho counts, run
// step2 at speed, ramp down over step3.
func StepSpeed(ports PortMask, layer, speed, step1, step2, step3 int, brake bool) *wire.Command {
	return wire.NewCommand(wire.DirectNoReply, wire.OpOutputStepSpeed).
		Bare(byte(layer)).
		Bare(byte(ports)).
		Long1(speed).
		Long2(step1).
		Long2(step2).
		Long2(step3).
		Flag(brake)
}

// TimePower builds OUTPUT_TIME_POWER: the same profile as StepSpeed with
// durations in milliseconds and power instead of speed.
func TimePower(ports PortMask, layer, power, time1, time2, time3 int, brake bool) *wire.Command {
	return wire.NewCommand(wire.DirectNoReply, wire.OpOutputTimePower).
		Bare(byte(layer)).
		Bare(byte(ports)).
		Long1(power).
		Long2(time1).
		Long2(time2).
		Long2(time3).
		Flag(brake)
}

// Stop builds OUTPUT_STOP. brake holds the motor in position; otherwise it coasts.
func Stop(ports PortMask, layer int, brake bool) *wire.Command {
	return wire.NewCommand(wire.DirectNoReply, wire.OpOutputStop).
		Bare(byte(layer)).
		Bare(byte(ports)).
		Flag(brake)
}

// Power builds OUTPUT_POWER. It takes effect on the next Start.
func Power(ports PortMask, layer, power int) *wire.Command {
	return wire.NewCommand(wire.DirectNoReply, wire.OpOutputPower).
		Bare(byte(layer)).
		Bare(byte(ports)).
		Long1(power)
}

// Speed builds OUTPUT_SPEED. It takes effect on the next Start.
func Speed(ports PortMask, layer, speed int) *wire.Command {
	return wire.NewCommand(wire.DirectNoReply, wire.OpOutputSpeed).
		Bare(byte(layer)).
		Bare(byte(ports)).
		Long1(speed)
}

// Start builds OUTPUT_START.
func Start(ports PortMask, layer int) *wire.Command {
	return wire.NewCommand(wire.DirectNoReply, wire.OpOutputStart).
		Bare(byte(layer)).
		Bare(byte(ports))
}
