// Package encoder turns DShot frames into precisely timed electrical
// symbols. It provides the resumable symbol-producing primitives
// (BytesEncoder, CopyEncoder), the two-phase DshotEncoder that
// sequences them, and the channel/buffer types the symbols flow into.
package encoder

// MaxDuration is the largest tick count a symbol half can hold
// (15-bit duration field).
const MaxDuration = 0x7FFF

// Symbol is one timed output element: the line is held at Level0 for
// Duration0 ticks, then at Level1 for Duration1 ticks. One symbol
// carries one payload bit or one inter-frame gap.
type Symbol struct {
	Level0    bool
	Duration0 uint16
	Level1    bool
	Duration1 uint16
}

// Words packs the symbol into two half-symbol words for a hardware
// FIFO: bit 0 is the line level, bits 1-31 the hold duration in ticks.
func (s Symbol) Words() [2]uint32 {
	w0 := uint32(s.Duration0) << 1
	if s.Level0 {
		w0 |= 1
	}
	w1 := uint32(s.Duration1) << 1
	if s.Level1 {
		w1 |= 1
	}
	return [2]uint32{w0, w1}
}

// Ticks returns the total duration of the symbol.
func (s Symbol) Ticks() uint32 {
	return uint32(s.Duration0) + uint32(s.Duration1)
}
