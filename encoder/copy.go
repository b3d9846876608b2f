package encoder

// CopyEncoder emits a fixed sequence of pre-built symbols verbatim,
// configured at construction. DShot uses it with a single symbol, the
// inter-frame gap. The data argument of Encode is ignored. Resumable:
// the symbol index survives a buffer-full return and re-arms on
// completion.
type CopyEncoder struct {
	syms []Symbol
	idx  int
}

// NewCopyEncoder returns an encoder that copies syms on every pass.
func NewCopyEncoder(syms ...Symbol) (*CopyEncoder, error) {
	if len(syms) == 0 {
		return nil, ErrInvalidConfig
	}
	for _, sym := range syms {
		if sym.Duration0 > MaxDuration || sym.Duration1 > MaxDuration {
			return nil, ErrDurationOverflow
		}
	}
	return &CopyEncoder{syms: append([]Symbol(nil), syms...)}, nil
}

// Encode appends the configured symbols to ch. data is unused; the
// symbols were fixed at construction.
func (e *CopyEncoder) Encode(ch Channel, _ []byte) (int, EncodeState) {
	written := 0
	for e.idx < len(e.syms) {
		if !ch.Append(e.syms[e.idx]) {
			return written, EncodingBufferFull
		}
		e.idx++
		written++
	}

	e.idx = 0
	return written, EncodingComplete
}

// Reset returns the encoder to the first symbol.
func (e *CopyEncoder) Reset() {
	e.idx = 0
}

// Destroy releases the copied symbol storage.
func (e *CopyEncoder) Destroy() {
	e.syms = nil
	e.idx = 0
}
