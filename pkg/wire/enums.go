package wire

// CommandType tells the brick whether to answer a command.
type CommandType uint8

const (
	// DirectReply asks the brick to send a reply frame.
	DirectReply CommandType = 0x00

	// DirectNoReply suppresses the reply frame.
	DirectNoReply CommandType = 0x80
)

// String returns the command type name.
func (t CommandType) String() string {
	switch t {
	case DirectReply:
		return "DIRECT_REPLY"
	case DirectNoReply:
		return "DIRECT_NO_REPLY"
	default:
		return "UNKNOWN"
	}
}

// OpCode selects the firmware operation a command performs.
type OpCode uint8

const (
	OpUIRead          OpCode = 0x81
	OpUIWrite         OpCode = 0x82
	OpSound           OpCode = 0x94
	OpInputDevice     OpCode = 0x99
	OpOutputStop      OpCode = 0xA3
	OpOutputPower     OpCode = 0xA4
	OpOutputSpeed     OpCode = 0xA5
	OpOutputStart     OpCode = 0xA6
	OpOutputTimePower OpCode = 0xAD
	OpOutputStepSpeed OpCode = 0xAE
)

// String returns the opcode name as used in the LEGO firmware documentation.
func (o OpCode) String() string {
	switch o {
	case OpUIRead:
		return "UI_READ"
	case OpUIWrite:
		return "UI_WRITE"
	case OpSound:
		return "SOUND"
	case OpInputDevice:
		return "INPUT_DEVICE"
	case OpOutputStop:
		return "OUTPUT_STOP"
	case OpOutputPower:
		return "OUTPUT_POWER"
	case OpOutputSpeed:
		return "OUTPUT_SPEED"
	case OpOutputStart:
		return "OUTPUT_START"
	case OpOutputTimePower:
		return "OUTPUT_TIME_POWER"
	case OpOutputStepSpeed:
		return "OUTPUT_STEP_SPEED"
	default:
		return "UNKNOWN"
	}
}

// Sub-command codes that follow OpSound, OpUIWrite and OpUIRead.
const (
	SoundPlayTone byte = 0x01
	UIWriteLED    byte = 0x1B
	UIReadVBatt   byte = 0x01
)

// Parameter control byte components.
const (
	// PrimParShort marks a short-format constant carried in the byte itself.
	PrimParShort byte = 0x00

	// PrimParLong marks a long-format value whose bytes follow.
	PrimParLong byte = 0x80

	// PrimParFollowOne, PrimParFollowTwo and PrimParFollowFour give the
	// number of bytes following a long-format control byte.
	PrimParFollowOne  byte = 0x01
	PrimParFollowTwo  byte = 0x02
	PrimParFollowFour byte = 0x03

	// followMask extracts the follow size from a control byte.
	followMask byte = 0x03
)

// ParamKind describes how a parameter is laid out on the wire.
type ParamKind uint8

const (
	// ParamBare is a single byte with no control byte.
	ParamBare ParamKind = iota

	// ParamOneByte is PrimParLong|PrimParFollowOne followed by one byte.
	ParamOneByte

	// ParamTwoByte is PrimParLong|PrimParFollowTwo followed by two bytes.
	ParamTwoByte

	// ParamFourByte is PrimParLong|PrimParFollowFour followed by four bytes.
	ParamFourByte
)

// String returns the parameter kind name.
func (k ParamKind) String() string {
	switch k {
	case ParamBare:
		return "BARE"
	case ParamOneByte:
		return "LC1"
	case ParamTwoByte:
		return "LC2"
	case ParamFourByte:
		return "LC4"
	default:
		return "UNKNOWN"
	}
}

// Size returns the number of value bytes the kind carries.
func (k ParamKind) Size() int {
	switch k {
	case ParamBare, ParamOneByte:
		return 1
	case ParamTwoByte:
		return 2
	case ParamFourByte:
		return 4
	default:
		return 0
	}
}

// controlByte returns the control byte preceding a long-format value.
// Bare parameters have none.
func (k ParamKind) controlByte() (byte, bool) {
	switch k {
	case ParamOneByte:
		return PrimParLong | PrimParFollowOne, true
	case ParamTwoByte:
		return PrimParLong | PrimParFollowTwo, true
	case ParamFourByte:
		return PrimParLong | PrimParFollowFour, true
	default:
		return 0, false
	}
}
