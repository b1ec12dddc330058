package ev3

import (
	"strconv"
	"time"

	"github.com/ev3-protocol/ev3-go/pkg/log"
	"github.com/ev3-protocol/ev3-go/pkg/sensor"
)

// AssignSensorsToPorts asks the sensor service for all four bindings and
// replaces the slots in one step. Concurrent calls are serialized.
func (b *Brick) AssignSensorsToPorts() {
	b.rebindMu.Lock()
	defer b.rebindMu.Unlock()

	old := b.slots.Snapshot()

	var set sensor.Set
	for i, p := range sensor.Ports {
		set[i] = b.sensors.CreateSensor(p)
	}
	b.slots.Replace(set)

	b.capture.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: b.conn.ID(),
		Layer:        log.LayerLifecycle,
		Category:     log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntitySensors,
			OldState: boundPorts(old),
			NewState: boundPorts(set),
			Reason:   "rebind",
		},
	})
}

// SensorValue returns the last value at p. It returns sensor.NoValue when
// nothing is bound there and sensor.UnknownSelector for an invalid port.
func (b *Brick) SensorValue(p sensor.Port) int32 {
	return b.slots.Value(p)
}

// Sensor returns the sensor bound at p, or nil.
func (b *Brick) Sensor(p sensor.Port) sensor.Sensor {
	if !p.Valid() {
		return nil
	}
	return b.slots.Get(p)
}

// startRebindLoop must be called with mu held.
func (b *Brick) startRebindLoop() {
	changes := b.sensors.Changes()
	if changes == nil {
		return
	}

	b.stopRebind = make(chan struct{})
	b.rebindDone = make(chan struct{})
	go b.rebindLoop(changes, b.stopRebind, b.rebindDone)
}

// stopRebindLoop must be called with mu held.
func (b *Brick) stopRebindLoop() {
	if b.stopRebind == nil {
		return
	}
	close(b.stopRebind)
	<-b.rebindDone
	b.stopRebind = nil
	b.rebindDone = nil
}

func (b *Brick) rebindLoop(changes <-chan struct{}, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			b.logger.Debug("sensor ports changed")
			b.AssignSensorsToPorts()
		}
	}
}

// boundPorts renders which ports hold a sensor, e.g. "1,3".
func boundPorts(set sensor.Set) string {
	s := ""
	for i, sn := range set {
		if sn == nil {
			continue
		}
		if s != "" {
			s += ","
		}
		s += strconv.Itoa(int(sensor.Ports[i]))
	}
	if s == "" {
		return "none"
	}
	return s
}
