package encoder

// BytesEncoderConfig selects the per-bit symbols and the bit order for
// a BytesEncoder. Captured at construction and immutable afterwards.
type BytesEncoderConfig struct {
	Bit0     Symbol // symbol emitted for a 0 bit
	Bit1     Symbol // symbol emitted for a 1 bit
	MSBFirst bool   // emit the most significant bit of each byte first
}

// BytesEncoder converts a payload buffer into timed symbols, one per
// bit. It is resumable: if the channel fills mid-payload the byte and
// bit position survive to the next Encode call, and on completion the
// position re-arms for the next payload.
type BytesEncoder struct {
	cfg     BytesEncoderConfig
	byteIdx int
	bitIdx  uint8
}

// NewBytesEncoder validates the bit-timing table and returns a ready
// encoder.
func NewBytesEncoder(cfg BytesEncoderConfig) (*BytesEncoder, error) {
	for _, sym := range []Symbol{cfg.Bit0, cfg.Bit1} {
		if sym.Duration0 > MaxDuration || sym.Duration1 > MaxDuration {
			return nil, ErrDurationOverflow
		}
	}
	return &BytesEncoder{cfg: cfg}, nil
}

// Encode emits one symbol per payload bit until the payload is done or
// the channel rejects an append.
func (e *BytesEncoder) Encode(ch Channel, data []byte) (int, EncodeState) {
	written := 0
	for e.byteIdx < len(data) {
		b := data[e.byteIdx]
		for e.bitIdx < 8 {
			var bit bool
			if e.cfg.MSBFirst {
				bit = b&(0x80>>e.bitIdx) != 0
			} else {
				bit = b&(1<<e.bitIdx) != 0
			}
			sym := e.cfg.Bit0
			if bit {
				sym = e.cfg.Bit1
			}
			if !ch.Append(sym) {
				return written, EncodingBufferFull
			}
			e.bitIdx++
			written++
		}
		e.bitIdx = 0
		e.byteIdx++
	}

	// re-arm for the next payload
	e.byteIdx = 0
	e.bitIdx = 0
	return written, EncodingComplete
}

// Reset returns the encoder to the start of the payload.
func (e *BytesEncoder) Reset() {
	e.byteIdx = 0
	e.bitIdx = 0
}

// Destroy releases the encoder; it holds no external resources beyond
// its configuration.
func (e *BytesEncoder) Destroy() {
	e.cfg = BytesEncoderConfig{}
}
