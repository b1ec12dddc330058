package ev3

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ev3-protocol/ev3-go/pkg/command"
	"github.com/ev3-protocol/ev3-go/pkg/connection"
	"github.com/ev3-protocol/ev3-go/pkg/log"
	"github.com/ev3-protocol/ev3-go/pkg/sensor"
	"github.com/ev3-protocol/ev3-go/pkg/transport"
	"github.com/ev3-protocol/ev3-go/pkg/wire"
)

// Name is the device name the brick advertises.
const Name = "Lego EV3"

// Config configures a Brick.
type Config struct {
	// Transport carries frames to the brick. Required.
	Transport transport.Transport

	// Sensors binds and polls sensors. Defaults to sensor.NullService.
	Sensors sensor.Service

	// Connection configures the underlying connection. Capture and Logger
	// default to the brick's.
	Connection connection.Config

	// Layer is the daisy-chain layer addressed by every command.
	Layer int

	// Capture receives lifecycle and frame events.
	Capture log.Logger

	// Logger is the operational logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// Brick is one EV3 brick.
type Brick struct {
	conn    *connection.Connection
	sensors sensor.Service
	layer   int
	capture log.Logger
	logger  *slog.Logger

	slots    sensor.Slots
	rebindMu sync.Mutex

	mu         sync.Mutex
	state      State
	motors     [4]*Motor
	stopRebind chan struct{}
	rebindDone chan struct{}
}

// New creates a brick. No I/O happens until Initialise.
func New(cfg Config) *Brick {
	if cfg.Sensors == nil {
		cfg.Sensors = sensor.NullService{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Connection.Capture == nil {
		cfg.Connection.Capture = cfg.Capture
	}
	if cfg.Connection.Logger == nil {
		cfg.Connection.Logger = cfg.Logger
	}

	conn := connection.New(cfg.Transport, cfg.Connection)
	return &Brick{
		conn:    conn,
		sensors: cfg.Sensors,
		layer:   cfg.Layer,
		capture: log.OrNoop(cfg.Capture),
		logger:  cfg.Logger.With("brick", conn.ID()),
		state:   StateUninitialized,
	}
}

// Name returns the device name.
func (b *Brick) Name() string {
	return Name
}

// ServiceUUID returns the Bluetooth service the brick is reached through.
func (b *Brick) ServiceUUID() uuid.UUID {
	return transport.SerialPortProfileUUID
}

// Connection returns the brick's connection.
func (b *Brick) Connection() *connection.Connection {
	return b.conn
}

// State returns the lifecycle state.
func (b *Brick) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Initialise opens the transport, creates the motor handles and binds the
// sensors. It returns immediately when the brick is already initialized.
// On failure the brick stays uninitialized and Initialise may be retried.
func (b *Brick) Initialise(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initialiseLocked(ctx)
}

func (b *Brick) initialiseLocked(ctx context.Context) error {
	switch b.state {
	case StateUninitialized:
	case StateDisconnected:
		return ErrDisconnected
	default:
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := b.conn.Init(); err != nil {
		b.logger.Error("initialise failed", "error", err)
		return fmt.Errorf("initialise: %w", err)
	}

	for _, p := range []command.MotorPort{command.MotorA, command.MotorB, command.MotorC, command.MotorD} {
		b.motors[p] = &Motor{brick: b, port: p}
	}

	b.AssignSensorsToPorts()
	b.startRebindLoop()

	b.setState(StateInitialized, "initialise")
	return nil
}

// Start initializes the brick if needed, rebinds the sensors and resumes
// polling.
func (b *Brick) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.initialiseLocked(ctx); err != nil {
		return err
	}

	b.AssignSensorsToPorts()
	b.sensors.ResumeUpdates()

	b.setState(StateRunning, "start")
	return nil
}

// Pause stops all motors with the brake engaged and suspends polling.
func (b *Brick) Pause() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkActive(); err != nil {
		return err
	}

	b.StopAll(true)
	b.sensors.PauseUpdates()

	b.setState(StatePaused, "pause")
	return nil
}

// Destroy switches all sensors off. The connection stays open.
func (b *Brick) Destroy() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkActive(); err != nil {
		return err
	}

	if err := b.sensors.DeactivateAll(b.conn); err != nil {
		b.logger.Error("deactivate sensors failed", "error", err)
		return fmt.Errorf("destroy: %w", err)
	}
	return nil
}

// Disconnect stops all motors, if the link is up, and closes the
// connection. Every later command fails.
func (b *Brick) Disconnect() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateDisconnected {
		return nil
	}

	b.stopRebindLoop()

	if b.conn.IsConnected() {
		b.StopAll(true)
	}
	err := b.conn.Disconnect()

	b.setState(StateDisconnected, "disconnect")
	if err != nil {
		b.logger.Error("disconnect failed", "error", err)
		return fmt.Errorf("disconnect: %w", err)
	}
	return nil
}

// IsAlive sends a keep-alive read and reports whether the send succeeded.
func (b *Brick) IsAlive() bool {
	seq, err := b.conn.Send(command.KeepAlive())
	if err != nil {
		b.logger.Debug("keep-alive failed", "seq", seq, "error", err)
		return false
	}
	return true
}

// checkActive must be called with mu held.
func (b *Brick) checkActive() error {
	switch b.state {
	case StateUninitialized:
		return ErrNotInitialized
	case StateDisconnected:
		return ErrDisconnected
	}
	return nil
}

// dispatch sends a fire-and-forget command.
func (b *Brick) dispatch(cmd *wire.Command) {
	seq, err := b.conn.Send(cmd)
	if err != nil {
		b.logger.Warn("command dropped", "op", cmd.OpCode.String(), "seq", seq, "error", err)
		return
	}
	b.logger.Debug("command sent", "op", cmd.OpCode.String(), "seq", seq)
}

// setState must be called with mu held.
func (b *Brick) setState(s State, reason string) {
	old := b.state
	b.state = s
	if old == s {
		return
	}

	b.logger.Info("brick state", "old", old.String(), "new", s.String(), "reason", reason)
	b.capture.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: b.conn.ID(),
		Layer:        log.LayerLifecycle,
		Category:     log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityBrick,
			OldState: old.String(),
			NewState: s.String(),
			Reason:   reason,
		},
	})
}
