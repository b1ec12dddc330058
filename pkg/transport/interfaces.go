package transport

//go:generate go run github.com/vektra/mockery/v2 --config ../../.mockery.yaml

// Transport is the link used by a connection.
// Implemented by SerialTransport.
type Transport interface {
	// Init opens the link. Calling Init on an open link is a no-op.
	Init() error

	// Send writes one length-prefixed frame. Any failure is returned as *Error.
	Send(frame []byte) error

	// Disconnect closes the link.
	Disconnect() error

	// IsConnected reports whether the link is open.
	IsConnected() bool
}

var _ Transport = (*SerialTransport)(nil)
