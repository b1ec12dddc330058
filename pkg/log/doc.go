// Package log records EV3 protocol traffic and lifecycle events.
//
// Protocol capture is separate from operational logging (slog). A capture is
// a complete, machine-readable trace of every frame sent to or received from
// a brick, plus lifecycle transitions and send failures, which the ev3-log
// tool can view and summarize later.
//
// # Basic Usage
//
//	// Console during development
//	capture := log.NewSlogAdapter(slog.Default())
//
//	// Binary file for later inspection
//	capture, _ := log.NewFileLogger("/tmp/brick.ev3log")
//
//	// Both
//	capture := log.NewMultiLogger(console, file)
//
// # File Format
//
// Capture files are a stream of CBOR-encoded Event values with integer keys.
package log
