package transport

import (
	"errors"
	"fmt"
)

// ErrNotConnected indicates a send or close on a link that is not open.
var ErrNotConnected = errors.New("transport not connected")

// Error is a link-level failure.
type Error struct {
	// Op is the failed operation: "init", "send" or "disconnect".
	Op string

	// Device is the link address, if known.
	Device string

	Err error
}

func (e *Error) Error() string {
	if e.Device != "" {
		return fmt.Sprintf("transport %s %s: %v", e.Op, e.Device, e.Err)
	}
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err is or wraps an *Error.
func IsTransportError(err error) bool {
	var te *Error
	return errors.As(err, &te)
}
