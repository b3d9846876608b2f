// Package protocol implements the DShot ESC frame format and the
// host-to-bridge serial link framing.
package protocol

// Version represents the godshot firmware version
const Version = "0.0.1-alpha"

// DShot frame layout: [throttle:11][telemetry:1][crc:4], transmitted
// most-significant-bit first after a byte swap to wire order.
const (
	ThrottleBits = 11
	ThrottleMax  = (1 << ThrottleBits) - 1 // 2047

	throttleShift = 5
	telemetryBit  = 1 << 4
	crcMask       = 0x0F

	// FrameBytes is the payload size handed to the symbol stream encoder
	FrameBytes = 2
)
