package transport

import "github.com/google/uuid"

// SerialPortProfileUUID is the Bluetooth service class of the EV3 serial
// channel. It is the standard SPP identifier, not specific to a brick.
var SerialPortProfileUUID = uuid.MustParse("00001101-0000-1000-8000-00805F9B34FB")
