package log

import (
	"time"

	"github.com/ev3-protocol/ev3-go/pkg/wire"
)

// Event is one captured protocol or lifecycle event.
// Exactly one of Frame, StateChange or Error is set.
type Event struct {
	Timestamp    time.Time `cbor:"1,keyasint"`
	ConnectionID string    `cbor:"2,keyasint"`
	Direction    Direction `cbor:"3,keyasint"`
	Layer        Layer     `cbor:"4,keyasint"`
	Category     Category  `cbor:"5,keyasint"`

	// Device is the transport address, e.g. /dev/rfcomm0.
	Device string `cbor:"6,keyasint,omitempty"`

	Frame       *FrameEvent       `cbor:"10,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"11,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"12,keyasint,omitempty"`
}

// Direction indicates message flow relative to the host.
type Direction uint8

const (
	DirectionIn  Direction = 0
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates where an event was captured.
type Layer uint8

const (
	// LayerTransport is the serial link.
	LayerTransport Layer = 0
	// LayerWire is command encoding and sequencing.
	LayerWire Layer = 1
	// LayerLifecycle is the brick state machine.
	LayerLifecycle Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerWire:
		return "WIRE"
	case LayerLifecycle:
		return "LIFECYCLE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies an event.
type Category uint8

const (
	CategoryFrame Category = 0
	CategoryState Category = 1
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryFrame:
		return "FRAME"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// FrameEvent holds one command or reply body as it crossed the link.
type FrameEvent struct {
	// Size is the body size plus the length prefix.
	Size int `cbor:"1,keyasint"`

	// Data is the body without the length prefix.
	Data []byte `cbor:"2,keyasint,omitempty"`

	Sequence uint16      `cbor:"3,keyasint"`
	OpCode   wire.OpCode `cbor:"4,keyasint,omitempty"`
}

// NewFrameEvent builds a FrameEvent from a command or reply body.
// Replies carry no opcode, so OpCode is only filled for outbound frames.
func NewFrameEvent(body []byte, direction Direction) *FrameEvent {
	fe := &FrameEvent{
		Size: wire.LengthPrefixSize + len(body),
		Data: body,
	}
	if seq, op, ok := wire.PeekHeader(body); ok {
		fe.Sequence = seq
		if direction == DirectionOut {
			fe.OpCode = op
		}
	} else if len(body) >= 2 {
		fe.Sequence = uint16(body[0]) | uint16(body[1])<<8
	}
	return fe
}

// StateChangeEvent records a brick or connection transition.
type StateChangeEvent struct {
	Entity   StateEntity `cbor:"1,keyasint"`
	OldState string      `cbor:"2,keyasint,omitempty"`
	NewState string      `cbor:"3,keyasint"`
	Reason   string      `cbor:"4,keyasint,omitempty"`
}

// StateEntity names what changed state.
type StateEntity uint8

const (
	StateEntityConnection StateEntity = 0
	StateEntityBrick      StateEntity = 1
	StateEntitySensors    StateEntity = 2
)

// String returns the entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityConnection:
		return "CONNECTION"
	case StateEntityBrick:
		return "BRICK"
	case StateEntitySensors:
		return "SENSORS"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData records a failure at any layer.
type ErrorEventData struct {
	Layer   Layer  `cbor:"1,keyasint"`
	Message string `cbor:"2,keyasint"`

	// Context names the operation that failed.
	Context string `cbor:"3,keyasint,omitempty"`
}
