package wire

import "fmt"

// HeaderSize is the size of the command header that follows the length prefix.
const HeaderSize = 6

// Reservation limits imposed by the header packing.
const (
	MaxGlobals = 0x3FF
	MaxLocals  = 0x3F
)

// Param is one opcode parameter. Value is masked to Kind's width on encode.
type Param struct {
	Kind  ParamKind
	Value uint32
}

// Command is a single EV3 direct command.
type Command struct {
	// Sequence correlates a command with its reply. Assigned by the sender.
	Sequence uint16

	// Type selects whether the brick replies.
	Type CommandType

	// Globals is the number of bytes reserved for global variables in the reply.
	Globals uint16

	// Locals is the number of bytes reserved for local variables.
	Locals uint8

	// OpCode is the operation performed.
	OpCode OpCode

	// Params are emitted in order.
	Params []Param
}

// NewCommand creates a command with no reservations.
func NewCommand(typ CommandType, op OpCode) *Command {
	return &Command{Type: typ, OpCode: op}
}

// Bare appends a byte with no control byte.
func (c *Command) Bare(b byte) *Command {
	c.Params = append(c.Params, Param{Kind: ParamBare, Value: uint32(b)})
	return c
}

// Flag appends a bare 0x01 or 0x00.
func (c *Command) Flag(v bool) *Command {
	if v {
		return c.Bare(0x01)
	}
	return c.Bare(0x00)
}

// Long1 appends a one-byte long-format value.
func (c *Command) Long1(v int) *Command {
	c.Params = append(c.Params, Param{Kind: ParamOneByte, Value: uint32(v) & 0xFF})
	return c
}

// Long2 appends a two-byte long-format value.
func (c *Command) Long2(v int) *Command {
	c.Params = append(c.Params, Param{Kind: ParamTwoByte, Value: uint32(v) & 0xFFFF})
	return c
}

// Long4 appends a four-byte long-format value.
func (c *Command) Long4(v int32) *Command {
	c.Params = append(c.Params, Param{Kind: ParamFourByte, Value: uint32(v)})
	return c
}

// Size returns the body size in bytes, excluding the length prefix.
func (c *Command) Size() int {
	n := HeaderSize
	for _, p := range c.Params {
		if _, ok := p.Kind.controlByte(); ok {
			n++
		}
		n += p.Kind.Size()
	}
	return n
}

// String returns a short description for logs.
func (c *Command) String() string {
	return fmt.Sprintf("%s seq=%d type=%s params=%d", c.OpCode, c.Sequence, c.Type, len(c.Params))
}
