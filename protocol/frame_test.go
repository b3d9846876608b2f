package protocol

import "testing"

// referenceCRC recomputes the checksum exactly as the protocol
// documentation states it: seed = payload ^ payload>>4 ^ payload>>8,
// inverted in bidirectional mode, top nibble of the low byte.
func referenceCRC(throttle uint16, telemetry, bidirectional bool) uint8 {
	payload := (throttle & ThrottleMax) << throttleShift
	if telemetry {
		payload |= telemetryBit
	}
	seed := payload ^ (payload >> 4) ^ (payload >> 8)
	if bidirectional {
		seed = ^seed
	}
	return uint8(seed>>4) & 0x0F
}

func TestMakeFrameVectors(t *testing.T) {
	testCases := []struct {
		throttle      uint16
		telemetry     bool
		bidirectional bool
		wantCRC       uint8
	}{
		{0, false, false, 0},
		{1046, false, false, 6},
		{1046, false, true, 9},
		{1046, true, false, 7},
		{ThrottleMax, false, false, referenceCRC(ThrottleMax, false, false)},
	}

	for _, tc := range testCases {
		f := MakeFrame(tc.throttle, tc.telemetry, tc.bidirectional)
		if got := f.CRC(); got != tc.wantCRC {
			t.Errorf("MakeFrame(%d, %v, %v): CRC = %d, want %d",
				tc.throttle, tc.telemetry, tc.bidirectional, got, tc.wantCRC)
		}
	}
}

func TestMakeFrameZeroThrottle(t *testing.T) {
	f := MakeFrame(0, false, false)
	if f != 0 {
		t.Errorf("zero throttle frame = %04X, want 0000", uint16(f))
	}
	b := f.Bytes()
	if b[0] != 0 || b[1] != 0 {
		t.Errorf("zero throttle bytes = %v, want [0 0]", b)
	}
}

func TestMakeFrameByteOrder(t *testing.T) {
	// throttle 1046, no telemetry: host order 1000001011000110,
	// so the high byte 0x82 must be transmitted first.
	f := MakeFrame(1046, false, false)
	b := f.Bytes()
	if b[0] != 0x82 || b[1] != 0xC6 {
		t.Errorf("wire bytes = %02X %02X, want 82 C6", b[0], b[1])
	}
}

func TestFrameCRCAllThrottles(t *testing.T) {
	for _, bidirectional := range []bool{false, true} {
		for _, telemetry := range []bool{false, true} {
			for throttle := uint16(0); throttle <= ThrottleMax; throttle++ {
				f := MakeFrame(throttle, telemetry, bidirectional)
				want := referenceCRC(throttle, telemetry, bidirectional)
				if got := f.CRC(); got != want {
					t.Fatalf("throttle=%d telemetry=%v bidi=%v: CRC = %d, want %d",
						throttle, telemetry, bidirectional, got, want)
				}
			}
		}
	}
}

func TestFrameRoundTrip(t *testing.T) {
	for _, bidirectional := range []bool{false, true} {
		for _, telemetry := range []bool{false, true} {
			for throttle := uint16(0); throttle <= ThrottleMax; throttle += 13 {
				f := MakeFrame(throttle, telemetry, bidirectional)
				if f.Throttle() != throttle {
					t.Fatalf("throttle round trip: got %d, want %d", f.Throttle(), throttle)
				}
				if f.TelemetryRequest() != telemetry {
					t.Fatalf("telemetry round trip: got %v, want %v", f.TelemetryRequest(), telemetry)
				}
				if !f.ChecksumOK(bidirectional) {
					t.Fatalf("checksum mismatch for throttle=%d telemetry=%v bidi=%v",
						throttle, telemetry, bidirectional)
				}
			}
		}
	}
}

func TestMakeFrameOutOfRangeThrottle(t *testing.T) {
	// Only the low 11 bits are meaningful; values above range wrap.
	high := MakeFrame(0x0800|100, false, false)
	low := MakeFrame(100, false, false)
	if high != low {
		t.Errorf("throttle above 11 bits not masked: %04X != %04X", uint16(high), uint16(low))
	}
}
