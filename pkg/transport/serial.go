package transport

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/ev3-protocol/ev3-go/pkg/log"
	"github.com/ev3-protocol/ev3-go/pkg/wire"
)

// DefaultBaudRate is used when SerialConfig.BaudRate is zero. RFCOMM
// ignores it, but a USB-serial adapter does not.
const DefaultBaudRate = 115200

// SerialConfig configures a SerialTransport.
type SerialConfig struct {
	// Device is the serial device node, e.g. "/dev/rfcomm0" or "COM5".
	Device string

	// BaudRate defaults to DefaultBaudRate.
	BaudRate int
}

// OpenFunc opens a serial device. Replaced in tests.
type OpenFunc func(device string, mode *serial.Mode) (io.ReadWriteCloser, error)

func openSerial(device string, mode *serial.Mode) (io.ReadWriteCloser, error) {
	return serial.Open(device, mode)
}

// SerialTransport is a Transport over a serial device.
type SerialTransport struct {
	config SerialConfig
	open   OpenFunc

	mu        sync.Mutex
	port      io.ReadWriteCloser
	connected bool
	readDone  chan struct{}

	logger  *slog.Logger
	capture log.Logger
	connID  string
}

// NewSerialTransport creates an unopened transport.
func NewSerialTransport(config SerialConfig) *SerialTransport {
	if config.BaudRate == 0 {
		config.BaudRate = DefaultBaudRate
	}
	return &SerialTransport{
		config:  config,
		open:    openSerial,
		logger:  slog.Default(),
		capture: log.NoopLogger{},
	}
}

// SetOpenFunc replaces the function used to open the device.
func (t *SerialTransport) SetOpenFunc(fn OpenFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.open = fn
}

// SetLogger sets the operational logger.
func (t *SerialTransport) SetLogger(logger *slog.Logger) {
	if logger != nil {
		t.logger = logger
	}
}

// SetCapture records reply frames to capture under connID.
// Pass nil to disable.
func (t *SerialTransport) SetCapture(capture log.Logger, connID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.capture = log.OrNoop(capture)
	t.connID = connID
}

func (t *SerialTransport) captureTarget() (log.Logger, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.capture, t.connID
}

// Device returns the configured device node.
func (t *SerialTransport) Device() string {
	return t.config.Device
}

// Init opens the serial device and starts draining replies.
func (t *SerialTransport) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.connected {
		return nil
	}

	mode := &serial.Mode{
		BaudRate: t.config.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := t.open(t.config.Device, mode)
	if err != nil {
		return &Error{Op: "init", Device: t.config.Device, Err: err}
	}

	t.port = port
	t.connected = true
	t.readDone = make(chan struct{})
	go t.readLoop(port, t.readDone)

	t.logger.Info("serial link open", "device", t.config.Device, "baud", t.config.BaudRate)
	return nil
}

// Send writes frame to the device.
func (t *SerialTransport) Send(frame []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.connected {
		return &Error{Op: "send", Device: t.config.Device, Err: ErrNotConnected}
	}
	if _, err := t.port.Write(frame); err != nil {
		return &Error{Op: "send", Device: t.config.Device, Err: err}
	}
	return nil
}

// Disconnect closes the device and waits for the reply reader to exit.
func (t *SerialTransport) Disconnect() error {
	t.mu.Lock()
	if !t.connected {
		t.mu.Unlock()
		return nil
	}
	t.connected = false
	port, done := t.port, t.readDone
	t.port = nil
	t.mu.Unlock()

	err := port.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.logger.Warn("reply reader did not stop", "device", t.config.Device)
	}

	if err != nil {
		return &Error{Op: "disconnect", Device: t.config.Device, Err: err}
	}
	t.logger.Info("serial link closed", "device", t.config.Device)
	return nil
}

// IsConnected reports whether the device is open.
func (t *SerialTransport) IsConnected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connected
}

func (t *SerialTransport) readLoop(port io.Reader, done chan struct{}) {
	defer close(done)

	fr := wire.NewFrameReader(port)
	for {
		body, err := fr.ReadFrame()
		if err != nil {
			if errors.Is(err, wire.ErrFrameEmpty) {
				t.logger.Debug("discarding reply", "device", t.config.Device, "error", err)
				t.recordError(err)
				continue
			}
			if t.IsConnected() && err != io.EOF {
				t.logger.Warn("reply reader stopped", "device", t.config.Device, "error", err)
				t.recordError(err)
			}
			return
		}

		capture, connID := t.captureTarget()
		capture.Log(log.Event{
			Timestamp:    time.Now(),
			ConnectionID: connID,
			Direction:    log.DirectionIn,
			Layer:        log.LayerTransport,
			Category:     log.CategoryFrame,
			Device:       t.config.Device,
			Frame:        log.NewFrameEvent(body, log.DirectionIn),
		})
	}
}

func (t *SerialTransport) recordError(err error) {
	capture, connID := t.captureTarget()
	capture.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: connID,
		Direction:    log.DirectionIn,
		Layer:        log.LayerTransport,
		Category:     log.CategoryError,
		Device:       t.config.Device,
		Error: &log.ErrorEventData{
			Layer:   log.LayerTransport,
			Message: err.Error(),
			Context: fmt.Sprintf("read %s", t.config.Device),
		},
	})
}
