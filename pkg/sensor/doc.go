// Package sensor models the four EV3 sensor input ports.
//
// Sensor values are produced by an external polling Service that talks to
// the brick on its own schedule. This package only holds the bindings: a
// Slots value always contains a complete set of four sensors (nil meaning
// nothing bound) and is replaced as a whole.
package sensor
