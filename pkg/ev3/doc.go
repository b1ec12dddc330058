// Package ev3 drives a Lego Mindstorms EV3 brick.
//
// A Brick owns the connection, the four motor handles and the four sensor
// slots. Its lifecycle is
//
//	Uninitialized -> Initialized -> Running <-> Paused -> Disconnected
//
// Initialise is idempotent and serialized. Disconnected is terminal and can
// be entered from any state.
//
// Motor, sound and LED commands are fire-and-forget: send failures are
// logged and dropped. IsAlive reports send failures as false. Destroy and
// Disconnect return them.
//
// Sensor slots are rebound wholesale, either explicitly through
// AssignSensorsToPorts or when the sensor service signals a port change.
// Rebinds are processed one at a time and readers always see a complete
// binding.
package ev3
