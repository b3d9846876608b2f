package protocol

// Serial link block layout: [len][seq][throttle lo][throttle hi][crc16 hi][crc16 lo][sync].
// len counts the whole block. The CRC covers everything before the trailer.
const (
	BlockHeaderSize  = 2
	BlockTrailerSize = 3
	BlockPayloadSize = 2
	BlockSize        = BlockHeaderSize + BlockPayloadSize + BlockTrailerSize
	BlockSync        = 0x7E

	// telemetry request rides in the top bit of the payload word
	payloadTelemetryBit = 0x8000
)

// EncodeCommandBlock frames one throttle command for the serial bridge
// link. seq lets the receiver spot dropped blocks.
func EncodeCommandBlock(seq uint8, cmd ThrottleCommand) []byte {
	payload := cmd.Throttle & ThrottleMax
	if cmd.TelemetryRequest {
		payload |= payloadTelemetryBit
	}

	blk := make([]byte, 0, BlockSize)
	blk = append(blk, BlockSize, seq, byte(payload), byte(payload>>8))
	crc := CRC16(blk)
	return append(blk, byte(crc>>8), byte(crc), BlockSync)
}

// DecodeCommandBlock parses the next command block out of data,
// skipping garbage up to a sync boundary the way the transport layer
// resynchronizes after line noise. consumed is always how many bytes
// the caller should drop from the front of its buffer; ok reports
// whether a valid block was decoded. ok=false with consumed=0 means
// more data is needed.
func DecodeCommandBlock(data []byte) (cmd ThrottleCommand, seq uint8, consumed int, ok bool) {
	// skip leading sync bytes (idle line filler)
	for consumed < len(data) && data[consumed] == BlockSync {
		consumed++
	}
	rest := data[consumed:]
	if len(rest) < BlockSize {
		return cmd, 0, consumed, false
	}

	if rest[0] != BlockSize || rest[BlockSize-1] != BlockSync {
		// desynchronized: drop up to the next sync byte
		for i := 1; i < len(rest); i++ {
			if rest[i] == BlockSync {
				return cmd, 0, consumed + i + 1, false
			}
		}
		return cmd, 0, consumed + len(rest), false
	}

	wantCRC := uint16(rest[BlockSize-BlockTrailerSize])<<8 |
		uint16(rest[BlockSize-BlockTrailerSize+1])
	if CRC16(rest[:BlockSize-BlockTrailerSize]) != wantCRC {
		return cmd, 0, consumed + BlockSize, false
	}

	payload := uint16(rest[2]) | uint16(rest[3])<<8
	cmd = ThrottleCommand{
		Throttle:         payload & ThrottleMax,
		TelemetryRequest: payload&payloadTelemetryBit != 0,
	}
	return cmd, rest[1], consumed + BlockSize, true
}
