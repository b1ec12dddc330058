// Package transport carries encoded EV3 frames to and from a brick.
//
// The protocol layer only needs four operations from a link: Init, Send,
// Disconnect and IsConnected. SerialTransport implements them on top of a
// Bluetooth RFCOMM serial device node (for example /dev/rfcomm0 on Linux
// after `rfcomm bind`, or the outgoing COM port on Windows).
//
// # Protocol Stack
//
//	┌────────────────────────────────┐
//	│   EV3 direct command / reply   │
//	├────────────────────────────────┤
//	│  Length prefix (2B, LE)        │
//	├────────────────────────────────┤
//	│  Serial Port Profile (RFCOMM)  │
//	├────────────────────────────────┤
//	│        Bluetooth BR/EDR        │
//	└────────────────────────────────┘
//
// Pairing and binding the RFCOMM channel happen outside this package.
//
// # Replies
//
// Reply frames are read in the background and recorded to the protocol
// logger. Their payloads are not interpreted.
package transport
