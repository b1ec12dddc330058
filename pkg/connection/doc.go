// Package connection owns the link to one EV3 brick.
//
// A Connection wraps a transport.Transport with the message counter shared
// by every command producer on that link. Send assigns the next sequence
// number and writes the frame while holding one lock, so frames reach the
// wire in sequence order no matter which goroutine issued them.
//
// # States
//
//	DISCONNECTED ──Init──▶ CONNECTED ──Disconnect──▶ CLOSED
//	      │                                            ▲
//	      └───────────────Disconnect───────────────────┘
//
// CLOSED is terminal. Sends after Disconnect fail with
// transport.ErrNotConnected and do not consume a sequence number.
//
// There is no reconnection. A failed send is reported once and dropped.
package connection
