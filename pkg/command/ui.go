package command

import "github.com/ev3-protocol/ev3-go/pkg/wire"

// LEDStatus is a brick status light pattern.
type LEDStatus uint8

const (
	LEDOff LEDStatus = iota
	LEDGreen
	LEDRed
	LEDOrange
	LEDGreenFlash
	LEDRedFlash
	LEDOrangeFlash
	LEDGreenPulse
	LEDRedPulse
	LEDOrangePulse
)

// String returns the pattern name.
func (s LEDStatus) String() string {
	switch s {
	case LEDOff:
		return "OFF"
	case LEDGreen:
		return "GREEN"
	case LEDRed:
		return "RED"
	case LEDOrange:
		return "ORANGE"
	case LEDGreenFlash:
		return "GREEN_FLASH"
	case LEDRedFlash:
		return "RED_FLASH"
	case LEDOrangeFlash:
		return "ORANGE_FLASH"
	case LEDGreenPulse:
		return "GREEN_PULSE"
	case LEDRedPulse:
		return "RED_PULSE"
	case LEDOrangePulse:
		return "ORANGE_PULSE"
	default:
		return "UNKNOWN"
	}
}

// SetLED builds UI_WRITE/LED. Values outside the named patterns are sent as-is.
func SetLED(status LEDStatus) *wire.Command {
	return wire.NewCommand(wire.DirectNoReply, wire.OpUIWrite).
		Bare(wire.UIWriteLED).
		Long1(int(status))
}

// KeepAlive builds a UI_READ/GET_VBATT request. It reserves no globals,
// so the reply carries no value; it only proves the link is up.
func KeepAlive() *wire.Command {
	return wire.NewCommand(wire.DirectReply, wire.OpUIRead).
		Bare(wire.UIReadVBatt)
}

// inputClearAll is the INPUT_DEVICE sub-command that resets every sensor.
const inputClearAll byte = 0x0A

// ClearAllSensors builds INPUT_DEVICE/CLR_ALL for a chain layer.
func ClearAllSensors(layer int) *wire.Command {
	return wire.NewCommand(wire.DirectNoReply, wire.OpInputDevice).
		Bare(inputClearAll).
		Bare(byte(layer))
}
