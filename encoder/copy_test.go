package encoder

import "testing"

func TestCopyEncoderEmitsVerbatim(t *testing.T) {
	gap := Symbol{Duration0: 1000, Duration1: 1000}
	enc, err := NewCopyEncoder(gap)
	if err != nil {
		t.Fatalf("NewCopyEncoder: %v", err)
	}

	ch := &SliceChannel{}
	n, state := enc.Encode(ch, nil)
	if n != 1 || state != EncodingComplete {
		t.Fatalf("n=%d state=%v, want 1/complete", n, state)
	}
	if ch.Syms[0] != gap {
		t.Errorf("emitted %+v, want %+v", ch.Syms[0], gap)
	}

	// re-arms: a second pass emits the symbol again
	n, state = enc.Encode(ch, nil)
	if n != 1 || state != EncodingComplete || len(ch.Syms) != 2 {
		t.Errorf("second pass: n=%d state=%v total=%d", n, state, len(ch.Syms))
	}
}

func TestCopyEncoderResumes(t *testing.T) {
	syms := []Symbol{{Duration0: 1}, {Duration0: 2}, {Duration0: 3}}
	enc, err := NewCopyEncoder(syms...)
	if err != nil {
		t.Fatalf("NewCopyEncoder: %v", err)
	}

	fifo := NewSymbolFIFO(2)
	n, state := enc.Encode(fifo, nil)
	if n != 2 || state != EncodingBufferFull {
		t.Fatalf("first call: n=%d state=%v, want 2/buffer-full", n, state)
	}

	fifo.Reset()
	n, state = enc.Encode(fifo, nil)
	if n != 1 || state != EncodingComplete {
		t.Fatalf("resume: n=%d state=%v, want 1/complete", n, state)
	}
	sym, _ := fifo.Pop()
	if sym.Duration0 != 3 {
		t.Errorf("resumed symbol = %+v, want the third", sym)
	}
}

func TestNewCopyEncoderValidation(t *testing.T) {
	if _, err := NewCopyEncoder(); err != ErrInvalidConfig {
		t.Errorf("empty symbol list: err = %v, want ErrInvalidConfig", err)
	}
	if _, err := NewCopyEncoder(Symbol{Duration0: MaxDuration + 1}); err != ErrDurationOverflow {
		t.Errorf("oversized duration: err = %v, want ErrDurationOverflow", err)
	}
}
