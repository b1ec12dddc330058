package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// LengthPrefixSize is the size of the frame length prefix.
const LengthPrefixSize = 2

// Decoding errors.
var (
	// ErrShortHeader indicates fewer than HeaderSize bytes.
	ErrShortHeader = errors.New("command shorter than header")

	// ErrTruncatedParam indicates a parameter whose bytes run past the end.
	ErrTruncatedParam = errors.New("parameter truncated")

	// ErrBadFollowSize indicates a long-format control byte with no supported size.
	ErrBadFollowSize = errors.New("unsupported parameter follow size")

	// ErrLengthMismatch indicates a length prefix not matching the body.
	ErrLengthMismatch = errors.New("length prefix does not match body")
)

// Marshal encodes the command body: header followed by parameters.
func Marshal(c *Command) []byte {
	return AppendCommand(make([]byte, 0, c.Size()), c)
}

// AppendCommand appends the command body to buf.
func AppendCommand(buf []byte, c *Command) []byte {
	buf = binary.LittleEndian.AppendUint16(buf, c.Sequence)
	buf = append(buf,
		byte(c.Type),
		byte(c.Globals&0xFF),
		(c.Locals&MaxLocals)<<2|byte((c.Globals>>8)&0x03),
		byte(c.OpCode),
	)

	for _, p := range c.Params {
		if cb, ok := p.Kind.controlByte(); ok {
			buf = append(buf, cb)
		}
		switch p.Kind {
		case ParamTwoByte:
			buf = append(buf, byte(p.Value&0xFF), byte((p.Value>>8)&0xFF))
		case ParamFourByte:
			buf = binary.LittleEndian.AppendUint32(buf, p.Value)
		default:
			buf = append(buf, byte(p.Value&0xFF))
		}
	}
	return buf
}

// Encode returns the length-prefixed frame for the command.
func Encode(c *Command) []byte {
	size := c.Size()
	buf := make([]byte, 0, LengthPrefixSize+size)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(size))
	return AppendCommand(buf, c)
}

// Unmarshal decodes a command body produced by Marshal.
//
// Bytes with bit 7 clear are returned as bare parameters. A bare byte of
// 0x80 or above cannot be told apart from a control byte; no builder in
// this module emits one.
func Unmarshal(data []byte) (*Command, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(data))
	}

	c := &Command{
		Sequence: binary.LittleEndian.Uint16(data[0:2]),
		Type:     CommandType(data[2]),
		Globals:  uint16(data[3]) | uint16(data[4]&0x03)<<8,
		Locals:   data[4] >> 2,
		OpCode:   OpCode(data[5]),
	}

	rest := data[HeaderSize:]
	for len(rest) > 0 {
		b := rest[0]
		rest = rest[1:]

		if b&PrimParLong == 0 {
			c.Params = append(c.Params, Param{Kind: ParamBare, Value: uint32(b)})
			continue
		}

		var kind ParamKind
		switch b & followMask {
		case PrimParFollowOne:
			kind = ParamOneByte
		case PrimParFollowTwo:
			kind = ParamTwoByte
		case PrimParFollowFour:
			kind = ParamFourByte
		default:
			return nil, fmt.Errorf("%w: control byte 0x%02X", ErrBadFollowSize, b)
		}

		n := kind.Size()
		if len(rest) < n {
			return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedParam, n, len(rest))
		}

		var v uint32
		switch n {
		case 1:
			v = uint32(rest[0])
		case 2:
			v = uint32(binary.LittleEndian.Uint16(rest))
		case 4:
			v = binary.LittleEndian.Uint32(rest)
		}
		c.Params = append(c.Params, Param{Kind: kind, Value: v})
		rest = rest[n:]
	}

	return c, nil
}

// Decode decodes a length-prefixed frame produced by Encode.
func Decode(frame []byte) (*Command, error) {
	if len(frame) < LengthPrefixSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(frame))
	}
	length := int(binary.LittleEndian.Uint16(frame))
	if length != len(frame)-LengthPrefixSize {
		return nil, fmt.Errorf("%w: prefix %d, body %d", ErrLengthMismatch, length, len(frame)-LengthPrefixSize)
	}
	return Unmarshal(frame[LengthPrefixSize:])
}

// PeekHeader returns the sequence number and opcode of a command body
// without decoding the parameters.
func PeekHeader(data []byte) (seq uint16, op OpCode, ok bool) {
	if len(data) < HeaderSize {
		return 0, 0, false
	}
	return binary.LittleEndian.Uint16(data), OpCode(data[5]), true
}
