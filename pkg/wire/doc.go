// Package wire defines the byte-level format of EV3 direct commands.
//
// Every command sent to the brick is a little-endian, length-prefixed frame:
//
//	┌──────────┬──────────┬──────┬─────────┬───────────────┬────────┬────────────┐
//	│ length 2 │ seq 2    │ type │ globals │ locals|globHi │ opcode │ params ... │
//	└──────────┴──────────┴──────┴─────────┴───────────────┴────────┴────────────┘
//
// The length prefix counts the bytes after itself. Marshal produces the body
// (everything after the length), Encode produces the whole frame.
//
// # Parameters
//
// Each parameter is either a long-format value, preceded by a control byte
// (PrimParLong | follow size) and followed by its bytes low byte first, or a
// bare byte written as-is. The firmware reads a bare byte below 0x80 as a
// short-format constant, which is how chain layers, port masks, brake flags
// and sub-command codes travel without a control byte.
//
// # Counters
//
// The sequence number is assigned by the connection that sends the command.
// Builders leave it zero.
package wire
