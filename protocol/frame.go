package protocol

// ThrottleCommand is the per-frame input from the application: an
// 11-bit throttle (or special command, see commands.go) and the
// telemetry request flag.
type ThrottleCommand struct {
	Throttle         uint16 // low 11 bits are significant
	TelemetryRequest bool
}

// Frame is a complete 16-bit DShot frame in wire byte order: the byte
// transmitted first is the low byte of this value. Construct with
// MakeFrame; a Frame is never mutated after construction.
type Frame uint16

// MakeFrame packs throttle and telemetry into a DShot frame, computes
// the 4-bit CRC and swaps to wire byte order.
//
// CRC example for throttle = 1046, telemetry = false:
//
//	value  = 100000101100 0000
//	value ^ (value>>4) ^ (value>>8) = xxxx xxxx 0110 xxxx
//	crc    = 0110 (top nibble of the low byte)
//	bidirectional inverts the seed first, giving crc = 1001
func MakeFrame(throttle uint16, telemetry, bidirectional bool) Frame {
	v := (throttle & ThrottleMax) << throttleShift
	if telemetry {
		v |= telemetryBit
	}

	crc := v ^ (v >> 4) ^ (v >> 8)
	if bidirectional {
		crc = ^crc
	}
	v |= (crc & 0xF0) >> 4

	// host order to wire order: high byte is transmitted first
	return Frame(v<<8 | v>>8)
}

// value undoes the wire byte swap, recovering the host-order frame.
func (f Frame) value() uint16 {
	v := uint16(f)
	return v<<8 | v>>8
}

// Bytes returns the frame payload in transmission order, ready for an
// MSB-first symbol stream encoder.
func (f Frame) Bytes() [FrameBytes]byte {
	return [FrameBytes]byte{byte(f), byte(f >> 8)}
}

// Throttle extracts the 11-bit throttle field.
func (f Frame) Throttle() uint16 {
	return f.value() >> throttleShift
}

// TelemetryRequest extracts the telemetry request bit.
func (f Frame) TelemetryRequest() bool {
	return f.value()&telemetryBit != 0
}

// CRC extracts the 4-bit checksum field.
func (f Frame) CRC() uint8 {
	return uint8(f.value() & crcMask)
}

// ChecksumOK recomputes the CRC over the throttle and telemetry fields
// and compares it with the embedded checksum.
func (f Frame) ChecksumOK(bidirectional bool) bool {
	want := MakeFrame(f.Throttle(), f.TelemetryRequest(), bidirectional)
	return want == f
}
