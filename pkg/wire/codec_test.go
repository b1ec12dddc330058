package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestMarshalHeader(t *testing.T) {
	c := NewCommand(DirectNoReply, OpOutputStop)
	c.Sequence = 0x1234

	got := Marshal(c)
	want := []byte{0x34, 0x12, 0x80, 0x00, 0x00, 0xA3}
	if !bytes.Equal(got, want) {
		t.Errorf("Marshal() = % X, want % X", got, want)
	}
}

func TestMarshalReservations(t *testing.T) {
	c := &Command{Type: DirectReply, Globals: 0x2FF, Locals: 5, OpCode: OpUIRead}

	got := Marshal(c)
	if got[3] != 0xFF {
		t.Errorf("globals low = 0x%02X, want 0xFF", got[3])
	}
	if got[4] != 5<<2|0x02 {
		t.Errorf("locals/globals high = 0x%02X, want 0x%02X", got[4], 5<<2|0x02)
	}

	back, err := Unmarshal(got)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Globals != 0x2FF || back.Locals != 5 {
		t.Errorf("reservations = %d/%d, want %d/%d", back.Globals, back.Locals, 0x2FF, 5)
	}
}

func TestMarshalParams(t *testing.T) {
	c := NewCommand(DirectNoReply, OpSound).
		Bare(SoundPlayTone).
		Long1(50).
		Long2(5000).
		Long4(-2)

	got := Marshal(c)[HeaderSize:]
	want := []byte{
		0x01,
		0x81, 0x32,
		0x82, 0x88, 0x13,
		0x83, 0xFE, 0xFF, 0xFF, 0xFF,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("params = % X, want % X", got, want)
	}
	if c.Size() != HeaderSize+len(want) {
		t.Errorf("Size() = %d, want %d", c.Size(), HeaderSize+len(want))
	}
}

func TestLongMasksToWidth(t *testing.T) {
	c := NewCommand(DirectNoReply, OpOutputStepSpeed).Long1(-100).Long2(-1).Long2(0x12345)

	got := Marshal(c)[HeaderSize:]
	want := []byte{0x81, 0x9C, 0x82, 0xFF, 0xFF, 0x82, 0x45, 0x23}
	if !bytes.Equal(got, want) {
		t.Errorf("params = % X, want % X", got, want)
	}
}

func TestEncodeLengthPrefix(t *testing.T) {
	c := NewCommand(DirectNoReply, OpOutputStop).Bare(0).Bare(0x0F).Flag(true)

	frame := Encode(c)
	if len(frame) != LengthPrefixSize+HeaderSize+3 {
		t.Fatalf("len(frame) = %d, want %d", len(frame), LengthPrefixSize+HeaderSize+3)
	}
	if frame[0] != HeaderSize+3 || frame[1] != 0 {
		t.Errorf("prefix = % X, want %02X 00", frame[:2], HeaderSize+3)
	}
	if !bytes.Equal(frame[2:], Marshal(c)) {
		t.Error("frame body differs from Marshal output")
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	c := NewCommand(DirectNoReply, OpOutputTimePower).
		Bare(0).
		Bare(0x06).
		Long1(-75).
		Long2(1000).
		Long2(-300).
		Long2(32767).
		Flag(false)
	c.Sequence = 65535

	back, err := Decode(Encode(c))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if back.Sequence != c.Sequence || back.OpCode != c.OpCode || back.Type != c.Type {
		t.Errorf("header = %v, want %v", back, c)
	}
	if len(back.Params) != len(c.Params) {
		t.Fatalf("len(Params) = %d, want %d", len(back.Params), len(c.Params))
	}
	for i := range c.Params {
		if back.Params[i] != c.Params[i] {
			t.Errorf("Params[%d] = %+v, want %+v", i, back.Params[i], c.Params[i])
		}
	}
	if int8(back.Params[2].Value) != -75 {
		t.Errorf("power = %d, want -75", int8(back.Params[2].Value))
	}
	if int16(back.Params[4].Value) != -300 {
		t.Errorf("time2 = %d, want -300", int16(back.Params[4].Value))
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short header", []byte{0x00, 0x00, 0x80}, ErrShortHeader},
		{"truncated two byte", []byte{0, 0, 0x80, 0, 0, 0x94, 0x82, 0x01}, ErrTruncatedParam},
		{"truncated one byte", []byte{0, 0, 0x80, 0, 0, 0x94, 0x81}, ErrTruncatedParam},
		{"zero follow size", []byte{0, 0, 0x80, 0, 0, 0x94, 0x80, 0x01}, ErrBadFollowSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeLengthMismatch(t *testing.T) {
	frame := Encode(NewCommand(DirectNoReply, OpOutputStop).Bare(0))
	frame = append(frame, 0x00)

	if _, err := Decode(frame); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Decode() error = %v, want ErrLengthMismatch", err)
	}
}

func TestPeekHeader(t *testing.T) {
	c := NewCommand(DirectReply, OpUIRead).Bare(UIReadVBatt)
	c.Sequence = 7

	seq, op, ok := PeekHeader(Marshal(c))
	if !ok || seq != 7 || op != OpUIRead {
		t.Errorf("PeekHeader() = %d, %s, %v", seq, op, ok)
	}

	if _, _, ok := PeekHeader([]byte{1, 2}); ok {
		t.Error("PeekHeader() ok on short input")
	}
}

func TestEnumStrings(t *testing.T) {
	if OpOutputStepSpeed.String() != "OUTPUT_STEP_SPEED" {
		t.Errorf("OpOutputStepSpeed.String() = %q", OpOutputStepSpeed.String())
	}
	if OpCode(0x01).String() != "UNKNOWN" {
		t.Errorf("OpCode(1).String() = %q", OpCode(0x01).String())
	}
	if DirectNoReply.String() != "DIRECT_NO_REPLY" {
		t.Errorf("DirectNoReply.String() = %q", DirectNoReply.String())
	}
	if ParamTwoByte.String() != "LC2" || ParamTwoByte.Size() != 2 {
		t.Errorf("ParamTwoByte = %q/%d", ParamTwoByte.String(), ParamTwoByte.Size())
	}
}
