package encoder

import (
	"godshot/protocol"
)

// encodePhase tracks which half of the logical frame the orchestrator
// is emitting. It only advances forward, and only when the active
// sub-encoder reports completion.
type encodePhase uint8

const (
	phaseFrame encodePhase = iota // emitting the 16-bit payload
	phaseGap                      // emitting the inter-frame gap
)

// DshotEncoder drives one ESC signal line: it builds the DShot frame
// for the latest throttle command, streams it as timed symbols, then
// appends the inter-frame gap. It owns its two sub-encoders
// exclusively and persists only the phase across calls, so a frame
// interrupted by a full channel resumes where it stopped.
type DshotEncoder struct {
	bytes         Encoder
	gap           Encoder
	bidirectional bool
	phase         encodePhase
}

// NewDshotEncoder builds the orchestrator and both sub-encoders from
// cfg. Construction is all-or-nothing: any failure releases whatever
// was already built.
func NewDshotEncoder(cfg Config) (*DshotEncoder, error) {
	t, err := ComputeTimings(cfg)
	if err != nil {
		return nil, err
	}

	bytes, err := NewBytesEncoder(BytesEncoderConfig{
		Bit0:     t.Zero,
		Bit1:     t.One,
		MSBFirst: true,
	})
	if err != nil {
		return nil, err
	}

	gap, err := NewCopyEncoder(t.Gap)
	if err != nil {
		bytes.Destroy()
		return nil, err
	}

	return &DshotEncoder{
		bytes:         bytes,
		gap:           gap,
		bidirectional: cfg.Bidirectional,
	}, nil
}

// Encode appends the symbols for one logical frame (payload then gap)
// to ch. It returns the number of symbols written this call and the
// status: EncodingComplete when the gap finished, EncodingBufferFull
// when ch ran out of space and the caller must drain it and call again
// with the same (or a fresh) throttle command.
//
// The frame is rebuilt from cmd on every call, even when resuming in
// the gap phase; only the phase persists. The gap does not depend on
// frame content, so picking up a newer throttle value mid-resume is
// harmless.
func (e *DshotEncoder) Encode(ch Channel, cmd protocol.ThrottleCommand) (int, EncodeState) {
	frame := protocol.MakeFrame(cmd.Throttle, cmd.TelemetryRequest, e.bidirectional)
	payload := frame.Bytes()

	var state EncodeState
	written := 0

	switch e.phase {
	case phaseFrame:
		n, st := e.bytes.Encode(ch, payload[:])
		written += n
		if st&EncodingComplete != 0 {
			e.phase = phaseGap
		}
		if st&EncodingBufferFull != 0 {
			// yield; frame phase resumes on the next call
			return written, state | EncodingBufferFull
		}
		fallthrough
	case phaseGap:
		n, st := e.gap.Encode(ch, nil)
		written += n
		if st&EncodingComplete != 0 {
			state |= EncodingComplete
			e.phase = phaseFrame
		}
		if st&EncodingBufferFull != 0 {
			state |= EncodingBufferFull
		}
	}

	return written, state
}

// Reset aborts any in-flight frame: both sub-encoders return to their
// initial position and the next Encode starts a fresh frame.
func (e *DshotEncoder) Reset() {
	e.bytes.Reset()
	e.gap.Reset()
	e.phase = phaseFrame
}

// Destroy releases both owned sub-encoders. The encoder must not be
// used afterwards.
func (e *DshotEncoder) Destroy() {
	e.bytes.Destroy()
	e.gap.Destroy()
	e.bytes = nil
	e.gap = nil
}
