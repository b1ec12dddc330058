package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// DefaultMaxFrameSize bounds a single reply frame. The brick never sends
// more than the 1024 bytes a direct command can reserve for globals.
const DefaultMaxFrameSize = 1024 + HeaderSize

// Framing errors.
var (
	// ErrFrameEmpty indicates a zero length prefix.
	ErrFrameEmpty = errors.New("frame is empty")

	// ErrFrameTooLarge indicates a length prefix above the configured maximum.
	ErrFrameTooLarge = errors.New("frame too large")

	// ErrFrameTruncated indicates the stream ended inside a frame.
	ErrFrameTruncated = errors.New("frame truncated")
)

// FrameReader reads length-prefixed frames from a byte stream.
type FrameReader struct {
	r         io.Reader
	maxSize   int
	lengthBuf [LengthPrefixSize]byte
}

// NewFrameReader creates a frame reader with DefaultMaxFrameSize.
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: r, maxSize: DefaultMaxFrameSize}
}

// ReadFrame reads one frame and returns its body without the length prefix.
// io.EOF is returned unchanged when the stream ends between frames.
func (fr *FrameReader) ReadFrame() ([]byte, error) {
	if _, err := io.ReadFull(fr.r, fr.lengthBuf[:]); err != nil {
		if err == io.EOF {
			return nil, err
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrFrameTruncated
		}
		return nil, fmt.Errorf("failed to read length prefix: %w", err)
	}

	length := int(binary.LittleEndian.Uint16(fr.lengthBuf[:]))
	if length == 0 {
		return nil, ErrFrameEmpty
	}
	if length > fr.maxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, length, fr.maxSize)
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(fr.r, body); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || err == io.EOF {
			return nil, ErrFrameTruncated
		}
		return nil, fmt.Errorf("failed to read frame body: %w", err)
	}
	return body, nil
}

// SetMaxFrameSize updates the maximum accepted frame size.
func (fr *FrameReader) SetMaxFrameSize(size int) {
	fr.maxSize = size
}
