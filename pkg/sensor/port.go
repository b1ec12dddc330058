package sensor

import "fmt"

// Port selects one of the four sensor inputs.
type Port uint8

const (
	Port1 Port = iota + 1
	Port2
	Port3
	Port4
)

// Ports lists every valid port in order.
var Ports = [NumPorts]Port{Port1, Port2, Port3, Port4}

// NumPorts is the number of sensor inputs on a brick.
const NumPorts = 4

// Sentinel sensor values.
const (
	// NoValue is returned for a valid port with no sensor bound.
	NoValue int32 = 0

	// UnknownSelector is returned for a port outside Port1..Port4.
	UnknownSelector int32 = -1
)

// Valid reports whether p is Port1..Port4.
func (p Port) Valid() bool {
	switch p {
	case Port1, Port2, Port3, Port4:
		return true
	default:
		return false
	}
}

// Index returns the zero-based slot index. It panics for an invalid port.
func (p Port) Index() int {
	if !p.Valid() {
		panic(fmt.Sprintf("sensor: invalid port %d", p))
	}
	return int(p) - 1
}

// Wire returns the zero-based port number used by INPUT_* opcodes.
func (p Port) Wire() byte {
	return byte(p.Index())
}

// String returns the port name.
func (p Port) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PORT_UNKNOWN(%d)", uint8(p))
	}
	return fmt.Sprintf("PORT_%d", uint8(p))
}

// ParsePort converts 1..4 to a Port.
func ParsePort(n int) (Port, error) {
	if n < 1 || n > NumPorts {
		return 0, fmt.Errorf("sensor port %d out of range 1-%d", n, NumPorts)
	}
	return Port(n), nil
}
