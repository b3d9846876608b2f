package encoder

import "errors"

// EncodeState is the status bitset returned by every encode call.
type EncodeState uint8

const (
	// EncodingComplete: the encoder finished its current unit of work.
	EncodingComplete EncodeState = 1 << iota
	// EncodingBufferFull: the channel ran out of space; call encode
	// again with a drained channel to continue from internal progress.
	EncodingBufferFull
)

// Encoder is the capability contract shared by the symbol-producing
// primitives. Implementations are stateful and resumable: after a
// buffer-full return, the next Encode continues where it stopped.
type Encoder interface {
	// Encode appends symbols derived from data to ch and returns the
	// number of symbols written this call plus the status flags.
	Encode(ch Channel, data []byte) (int, EncodeState)

	// Reset returns the encoder to its initial internal position.
	Reset()

	// Destroy releases owned resources; the encoder must not be used
	// afterwards.
	Destroy()
}

var (
	// ErrInvalidConfig reports missing or non-positive required
	// configuration at construction time.
	ErrInvalidConfig = errors.New("encoder: invalid configuration")

	// ErrDurationOverflow reports a derived tick count that does not
	// fit the 15-bit symbol duration field.
	ErrDurationOverflow = errors.New("encoder: tick duration exceeds symbol range")
)
