package ev3

import (
	"context"
	"sync"
	"time"
)

// Monitor defaults.
const (
	// DefaultProbeInterval is the default interval between keep-alive probes.
	DefaultProbeInterval = 5 * time.Second

	// DefaultMaxFailures is the default number of consecutive failed probes
	// before the link is declared lost.
	DefaultMaxFailures = 3
)

// MonitorConfig configures a Monitor.
type MonitorConfig struct {
	// Interval is the time between probes.
	Interval time.Duration

	// MaxFailures is the number of consecutive failures that trigger the
	// timeout callback.
	MaxFailures int
}

// DetectionDelay is the longest time between link loss and the callback.
func (c MonitorConfig) DetectionDelay() time.Duration {
	return c.Interval * time.Duration(c.MaxFailures)
}

// Prober reports whether the link is alive. Implemented by *Brick.
type Prober interface {
	IsAlive() bool
}

// MonitorStats is a snapshot of probe results.
type MonitorStats struct {
	Probes      int
	Failures    int
	LastProbe   time.Time
	LastSuccess time.Time
}

// Monitor probes a brick periodically and calls onTimeout once after
// MaxFailures consecutive failed probes. It stops itself after the callback.
type Monitor struct {
	config    MonitorConfig
	probe     Prober
	onTimeout func()

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	stats   MonitorStats
}

// NewMonitor creates a monitor. Zero config fields take the defaults.
func NewMonitor(config MonitorConfig, probe Prober, onTimeout func()) *Monitor {
	if config.Interval <= 0 {
		config.Interval = DefaultProbeInterval
	}
	if config.MaxFailures <= 0 {
		config.MaxFailures = DefaultMaxFailures
	}
	return &Monitor{
		config:    config,
		probe:     probe,
		onTimeout: onTimeout,
	}
}

// Start begins probing. It is a no-op when already running.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.running = true
	m.stopCh = make(chan struct{})
	stop := m.stopCh
	m.mu.Unlock()

	go m.loop(ctx, stop)
}

// Stop stops probing.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}
	m.running = false
	close(m.stopCh)
}

// IsRunning reports whether the monitor is probing.
func (m *Monitor) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Stats returns the current probe statistics.
func (m *Monitor) Stats() MonitorStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

func (m *Monitor) loop(ctx context.Context, stop chan struct{}) {
	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.Stop()
			return
		case <-stop:
			return
		case <-ticker.C:
			if m.handleTick(stop) {
				return
			}
		}
	}
}

// handleTick runs one probe and reports whether the monitor timed out.
func (m *Monitor) handleTick(stop chan struct{}) bool {
	ok := m.probe.IsAlive()
	now := time.Now()

	m.mu.Lock()
	m.stats.Probes++
	m.stats.LastProbe = now
	if ok {
		m.stats.Failures = 0
		m.stats.LastSuccess = now
		m.mu.Unlock()
		return false
	}

	m.stats.Failures++
	if m.stats.Failures < m.config.MaxFailures {
		m.mu.Unlock()
		return false
	}

	if m.running && m.stopCh == stop {
		m.running = false
		close(m.stopCh)
	}
	m.mu.Unlock()

	if m.onTimeout != nil {
		m.onTimeout()
	}
	return true
}
