package encoder

import "testing"

func TestSliceChannel(t *testing.T) {
	ch := &SliceChannel{}

	sym := Symbol{Level0: true, Duration0: 10, Duration1: 20}
	for i := 0; i < 100; i++ {
		if !ch.Append(sym) {
			t.Fatalf("SliceChannel rejected append %d", i)
		}
	}
	if len(ch.Syms) != 100 {
		t.Errorf("expected 100 symbols, got %d", len(ch.Syms))
	}

	ch.Reset()
	if len(ch.Syms) != 0 {
		t.Errorf("after Reset expected 0 symbols, got %d", len(ch.Syms))
	}
}

func TestSymbolFIFOFillAndDrain(t *testing.T) {
	fifo := NewSymbolFIFO(4)

	if !fifo.IsEmpty() {
		t.Error("new FIFO not empty")
	}
	if fifo.Free() != 4 {
		t.Errorf("new FIFO free = %d, want 4", fifo.Free())
	}

	for i := 0; i < 4; i++ {
		if !fifo.Append(Symbol{Duration0: uint16(i)}) {
			t.Fatalf("append %d rejected before capacity", i)
		}
	}
	if fifo.Append(Symbol{}) {
		t.Error("append accepted beyond capacity")
	}
	if fifo.Len() != 4 || fifo.Free() != 0 {
		t.Errorf("full FIFO len=%d free=%d, want 4/0", fifo.Len(), fifo.Free())
	}

	for i := 0; i < 4; i++ {
		sym, ok := fifo.Pop()
		if !ok {
			t.Fatalf("pop %d failed", i)
		}
		if sym.Duration0 != uint16(i) {
			t.Errorf("pop %d: duration = %d, want %d (FIFO order)", i, sym.Duration0, i)
		}
	}
	if _, ok := fifo.Pop(); ok {
		t.Error("pop succeeded on empty FIFO")
	}
}

func TestSymbolFIFOWrapAround(t *testing.T) {
	fifo := NewSymbolFIFO(3)

	// push/pop repeatedly so read and write wrap past the end
	next := uint16(0)
	for round := 0; round < 10; round++ {
		for i := 0; i < 2; i++ {
			if !fifo.Append(Symbol{Duration0: next + uint16(i)}) {
				t.Fatalf("round %d: append rejected", round)
			}
		}
		for i := 0; i < 2; i++ {
			sym, ok := fifo.Pop()
			if !ok {
				t.Fatalf("round %d: pop failed", round)
			}
			if sym.Duration0 != next {
				t.Fatalf("round %d: got %d, want %d", round, sym.Duration0, next)
			}
			next++
		}
	}
}

func TestSymbolFIFOReset(t *testing.T) {
	fifo := NewSymbolFIFO(4)
	fifo.Append(Symbol{Duration0: 1})
	fifo.Append(Symbol{Duration0: 2})

	fifo.Reset()
	if !fifo.IsEmpty() || fifo.Len() != 0 {
		t.Errorf("after Reset: empty=%v len=%d", fifo.IsEmpty(), fifo.Len())
	}
}
