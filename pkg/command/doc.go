// Package command builds EV3 direct commands for motors, sound and the
// brick status light.
//
// Builders are pure: they return a *wire.Command with Sequence zero and
// never touch a connection. Values are masked to their wire width but not
// clamped, except where the firmware documents a range (PlayTone).
package command
