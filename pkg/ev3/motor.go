package ev3

import "github.com/ev3-protocol/ev3-go/pkg/command"

// Motor addresses one output port. Handles are created by Initialise.
type Motor struct {
	brick *Brick
	port  command.MotorPort
}

// Port returns the motor's output port.
func (m *Motor) Port() command.MotorPort {
	return m.port
}

// MoveSteps runs the motor through a speed profile measured in tacho counts.
func (m *Motor) MoveSteps(speed, rampUp, constant, rampDown int, brake bool) {
	m.brick.MoveSteps(m.port.Mask(), speed, rampUp, constant, rampDown, brake)
}

// MoveTime runs the motor through a power profile measured in milliseconds.
func (m *Motor) MoveTime(power, rampUpMs, constantMs, rampDownMs int, brake bool) {
	m.brick.MoveTime(m.port.Mask(), power, rampUpMs, constantMs, rampDownMs, brake)
}

// Stop stops the motor.
func (m *Motor) Stop(brake bool) {
	m.brick.Stop(m.port.Mask(), brake)
}

// SetPower sets the power used by the next Start.
func (m *Motor) SetPower(power int) {
	m.brick.SetPower(m.port.Mask(), power)
}

// SetSpeed sets the speed used by the next Start.
func (m *Motor) SetSpeed(speed int) {
	m.brick.SetSpeed(m.port.Mask(), speed)
}

// Start starts the motor.
func (m *Motor) Start() {
	m.brick.StartMotors(m.port.Mask())
}

// Motor returns the handle for port p, or nil before Initialise.
func (b *Brick) Motor(p command.MotorPort) *Motor {
	b.mu.Lock()
	defer b.mu.Unlock()
	if int(p) >= len(b.motors) {
		return nil
	}
	return b.motors[p]
}

// MoveSteps sends OUTPUT_STEP_SPEED to the motors in ports.
func (b *Brick) MoveSteps(ports command.PortMask, speed, rampUp, constant, rampDown int, brake bool) {
	b.dispatch(command.StepSpeed(ports, b.layer, speed, rampUp, constant, rampDown, brake))
}

// MoveTime sends OUTPUT_TIME_POWER to the motors in ports.
func (b *Brick) MoveTime(ports command.PortMask, power, rampUpMs, constantMs, rampDownMs int, brake bool) {
	b.dispatch(command.TimePower(ports, b.layer, power, rampUpMs, constantMs, rampDownMs, brake))
}

// Stop sends OUTPUT_STOP to the motors in ports.
func (b *Brick) Stop(ports command.PortMask, brake bool) {
	b.dispatch(command.Stop(ports, b.layer, brake))
}

// StopAll stops every motor.
func (b *Brick) StopAll(brake bool) {
	b.Stop(command.AllMotors, brake)
}

// SetPower sends OUTPUT_POWER to the motors in ports.
func (b *Brick) SetPower(ports command.PortMask, power int) {
	b.dispatch(command.Power(ports, b.layer, power))
}

// SetSpeed sends OUTPUT_SPEED to the motors in ports.
func (b *Brick) SetSpeed(ports command.PortMask, speed int) {
	b.dispatch(command.Speed(ports, b.layer, speed))
}

// StartMotors sends OUTPUT_START to the motors in ports.
func (b *Brick) StartMotors(ports command.PortMask) {
	b.dispatch(command.Start(ports, b.layer))
}

// PlayTone plays a tone. A non-positive duration sends nothing.
func (b *Brick) PlayTone(frequencyHz, durationMs, volumePercent int) {
	cmd, ok := command.PlayTone(frequencyHz, durationMs, volumePercent)
	if !ok {
		b.logger.Debug("tone skipped", "duration_ms", durationMs)
		return
	}
	b.dispatch(cmd)
}

// SetLED sets the status light pattern.
func (b *Brick) SetLED(status command.LEDStatus) {
	b.dispatch(command.SetLED(status))
}
