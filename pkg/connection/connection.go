package connection

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ev3-protocol/ev3-go/pkg/log"
	"github.com/ev3-protocol/ev3-go/pkg/transport"
	"github.com/ev3-protocol/ev3-go/pkg/wire"
)

// ErrClosed indicates Init on a connection that was disconnected.
var ErrClosed = errors.New("connection closed")

// State is the connection state.
type State uint8

const (
	StateDisconnected State = iota
	StateConnected
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateConnected:
		return "CONNECTED"
	case StateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// Config configures a Connection. The zero value is usable.
type Config struct {
	// ID identifies the connection in captures. Defaults to a random UUID.
	ID string

	// Device is recorded in capture events.
	Device string

	// FirstSequence is the sequence number of the first command.
	FirstSequence uint16

	// Capture receives outbound frames and state changes.
	Capture log.Logger

	// Logger is the operational logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// Connection is the link to one brick.
type Connection struct {
	transport transport.Transport
	counter   *Counter

	id      string
	device  string
	capture log.Logger
	logger  *slog.Logger

	mu    sync.Mutex
	state State
}

// New creates a connection over t. The transport is not opened.
func New(t transport.Transport, cfg Config) *Connection {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Connection{
		transport: t,
		counter:   NewCounter(cfg.FirstSequence),
		id:        cfg.ID,
		device:    cfg.Device,
		capture:   log.OrNoop(cfg.Capture),
		logger:    cfg.Logger.With("conn_id", cfg.ID),
		state:     StateDisconnected,
	}
}

// ID returns the connection identifier.
func (c *Connection) ID() string {
	return c.id
}

// Counter returns the connection's message counter.
func (c *Connection) Counter() *Counter {
	return c.counter
}

// State returns the current state.
func (c *Connection) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Init opens the transport.
func (c *Connection) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateConnected:
		return nil
	case StateClosed:
		return &transport.Error{Op: "init", Device: c.device, Err: ErrClosed}
	}

	if err := c.transport.Init(); err != nil {
		c.recordError(err, "init")
		return c.asTransportError("init", err)
	}

	c.setState(StateConnected, "init")
	return nil
}

// IsConnected reports whether the connection is open and the transport
// reports a live link.
func (c *Connection) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state != StateClosed && c.transport.IsConnected()
}

// Send assigns the next sequence number to cmd, encodes it and writes the
// frame. The returned sequence is valid even when the write fails.
func (c *Connection) Send(cmd *wire.Command) (uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateClosed {
		return 0, &transport.Error{Op: "send", Device: c.device, Err: transport.ErrNotConnected}
	}

	cmd.Sequence = c.counter.Next()
	frame := wire.Encode(cmd)

	if err := c.transport.Send(frame); err != nil {
		c.recordError(err, fmt.Sprintf("send %s seq=%d", cmd.OpCode, cmd.Sequence))
		return cmd.Sequence, c.asTransportError("send", err)
	}

	c.capture.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.id,
		Direction:    log.DirectionOut,
		Layer:        log.LayerWire,
		Category:     log.CategoryFrame,
		Device:       c.device,
		Frame:        log.NewFrameEvent(frame[wire.LengthPrefixSize:], log.DirectionOut),
	})
	return cmd.Sequence, nil
}

// Disconnect closes the transport. The connection cannot be reopened.
func (c *Connection) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateClosed {
		return nil
	}
	c.setState(StateClosed, "disconnect")

	if err := c.transport.Disconnect(); err != nil {
		c.recordError(err, "disconnect")
		return c.asTransportError("disconnect", err)
	}
	return nil
}

// setState must be called with mu held.
func (c *Connection) setState(s State, reason string) {
	old := c.state
	c.state = s
	c.logger.Debug("connection state", "old", old.String(), "new", s.String())
	c.capture.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.id,
		Layer:        log.LayerWire,
		Category:     log.CategoryState,
		Device:       c.device,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityConnection,
			OldState: old.String(),
			NewState: s.String(),
			Reason:   reason,
		},
	})
}

func (c *Connection) recordError(err error, context string) {
	c.capture.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.id,
		Direction:    log.DirectionOut,
		Layer:        log.LayerWire,
		Category:     log.CategoryError,
		Device:       c.device,
		Error: &log.ErrorEventData{
			Layer:   log.LayerTransport,
			Message: err.Error(),
			Context: context,
		},
	})
}

func (c *Connection) asTransportError(op string, err error) error {
	if transport.IsTransportError(err) {
		return err
	}
	return &transport.Error{Op: op, Device: c.device, Err: err}
}
