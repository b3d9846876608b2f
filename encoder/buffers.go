package encoder

// Channel receives encoded symbols. It is owned and drained by the
// transmission pipeline; encoders only append to it. Append reports
// false when the channel has no space, which encoders surface as
// EncodingBufferFull and resume from on the next call.
type Channel interface {
	Append(sym Symbol) bool
}

// SliceChannel implements Channel with an unbounded backing slice.
// Used by tests and host-side inspection tools.
type SliceChannel struct {
	Syms []Symbol
}

func (c *SliceChannel) Append(sym Symbol) bool {
	c.Syms = append(c.Syms, sym)
	return true
}

// Reset discards accumulated symbols.
func (c *SliceChannel) Reset() {
	c.Syms = c.Syms[:0]
}

// SymbolFIFO is a fixed-capacity circular buffer of symbols, used as
// the staging queue between the encoder and a hardware FIFO. One slot
// is kept unused to distinguish full from empty.
type SymbolFIFO struct {
	buf   []Symbol
	read  int
	write int
	size  int
}

// NewSymbolFIFO creates a SymbolFIFO holding up to capacity symbols.
func NewSymbolFIFO(capacity int) *SymbolFIFO {
	return &SymbolFIFO{
		buf:  make([]Symbol, capacity+1),
		size: capacity + 1,
	}
}

// Append adds a symbol to the tail; false when the buffer is full.
func (f *SymbolFIFO) Append(sym Symbol) bool {
	nextWrite := (f.write + 1) % f.size
	if nextWrite == f.read {
		return false
	}
	f.buf[f.write] = sym
	f.write = nextWrite
	return true
}

// Pop removes and returns the symbol at the head.
func (f *SymbolFIFO) Pop() (Symbol, bool) {
	if f.read == f.write {
		return Symbol{}, false
	}
	sym := f.buf[f.read]
	f.read = (f.read + 1) % f.size
	return sym, true
}

// Len returns the number of buffered symbols.
func (f *SymbolFIFO) Len() int {
	if f.write >= f.read {
		return f.write - f.read
	}
	return f.size - f.read + f.write
}

// Free returns the number of symbols that can still be appended.
func (f *SymbolFIFO) Free() int {
	return f.size - f.Len() - 1
}

// IsEmpty returns true if no symbols are buffered.
func (f *SymbolFIFO) IsEmpty() bool {
	return f.read == f.write
}

// Reset clears the buffer.
func (f *SymbolFIFO) Reset() {
	f.read = 0
	f.write = 0
}
