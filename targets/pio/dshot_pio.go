//go:build rp2040

package pio

// PIO DShot output backend using tinygo-org/pio
// The PIO state machine replays half-symbol words with hardware
// timing, so the CPU only keeps the FIFO fed.

import (
	"machine"

	"godshot/encoder"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// PIO program for symbol replay. Half-symbol word format:
//
//	Bit 0:     line level
//	Bits 1-31: hold duration in ticks (loop iterations)
//
// Program flow:
//  1. Pull a 32-bit half-symbol word from the FIFO
//  2. Drive the output pin to the level bit
//  3. Hold for the duration ticks
//
// buildDshotProgram creates the replay program using AssemblerV0
func buildDshotProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Pull(false, true).Encode(),           // 0: pull block
		asm.Out(rp2pio.OutDestPins, 1).Encode(),  // 1: out pins, 1 (level)
		asm.Out(rp2pio.OutDestX, 31).Encode(),    // 2: out x, 31 (ticks)
		asm.Jmp(3, rp2pio.JmpXNZeroDec).Encode(), // 3: jmp x--, 3 (hold)
		// .wrap
	}
}

const dshotPIOOrigin = 0 // Load at offset 0 for correct jump addresses

// DshotBackend drives one ESC signal line from encoded symbols. It
// implements encoder.Channel: symbols land in a staging FIFO and Pump
// moves them into the PIO TX FIFO without blocking.
//
// Bidirectional DShot additionally inverts the idle line polarity;
// that is a wiring/pad concern outside this backend, which always
// drives non-inverted levels.
type DshotBackend struct {
	pio        *rp2pio.PIO
	sm         rp2pio.StateMachine
	pin        machine.Pin
	staging    *encoder.SymbolFIFO
	pending    uint32
	hasPending bool
	offset     uint8
}

// NewDshotBackend creates a backend on the given PIO block and state
// machine. capacity sizes the staging FIFO in symbols; one DShot frame
// plus gap is 17.
func NewDshotBackend(pioNum, smNum uint8, capacity int) *DshotBackend {
	var pioHW *rp2pio.PIO
	if pioNum == 0 {
		pioHW = rp2pio.PIO0
	} else {
		pioHW = rp2pio.PIO1
	}

	return &DshotBackend{
		pio:     pioHW,
		sm:      pioHW.StateMachine(smNum),
		staging: encoder.NewSymbolFIFO(capacity),
	}
}

// Init claims the state machine, loads the replay program and starts
// it. resolutionHz is the encoder tick rate; the state machine clock
// is divided down so one hold-loop iteration is one tick.
func (b *DshotBackend) Init(pin machine.Pin, resolutionHz uint32) error {
	b.pin = pin

	b.sm.TryClaim()

	program := buildDshotProgram()
	offset, err := b.pio.AddProgram(program, dshotPIOOrigin)
	if err != nil {
		return err
	}
	b.offset = offset

	b.pin.Configure(machine.PinConfig{Mode: b.pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()

	// OUT pins: the single signal line
	cfg.SetOutPins(b.pin, 1)

	// Shift right, no autopull (explicit PULL), 32-bit threshold
	cfg.SetOutShift(true, false, 32)

	cfg.SetWrap(offset+uint8(len(program))-1, offset)

	// one state machine cycle per encoder tick
	div := machine.CPUFrequency() / resolutionHz
	frac := uint8((uint64(machine.CPUFrequency()%resolutionHz) << 8) / uint64(resolutionHz))
	cfg.SetClkDivIntFrac(uint16(div), frac)

	b.sm.Init(offset, cfg)

	b.sm.SetPindirsConsecutive(b.pin, 1, true)
	b.sm.SetPinsConsecutive(b.pin, 1, false) // idle low

	b.sm.SetEnabled(true)

	return nil
}

// Append queues one symbol for transmission. Returns false when the
// staging FIFO is full; the caller drains via Pump and retries.
func (b *DshotBackend) Append(sym encoder.Symbol) bool {
	if !b.staging.Append(sym) {
		return false
	}
	b.Pump()
	return true
}

// Pump moves staged half-symbol words into the PIO TX FIFO. Never
// blocks; call it from the main loop to keep the line fed.
func (b *DshotBackend) Pump() {
	for !b.sm.IsTxFIFOFull() {
		if b.hasPending {
			b.sm.TxPut(b.pending)
			b.hasPending = false
			continue
		}
		sym, ok := b.staging.Pop()
		if !ok {
			return
		}
		w := sym.Words()
		b.sm.TxPut(w[0])
		if b.sm.IsTxFIFOFull() {
			// second half waits for FIFO space
			b.pending = w[1]
			b.hasPending = true
			return
		}
		b.sm.TxPut(w[1])
	}
}

// Idle reports whether everything queued has been handed to the PIO.
func (b *DshotBackend) Idle() bool {
	return b.staging.IsEmpty() && !b.hasPending
}

// Stop halts output and discards queued symbols.
func (b *DshotBackend) Stop() {
	b.sm.SetEnabled(false)
	b.sm.ClearFIFOs()
	b.sm.Restart()
	b.staging.Reset()
	b.hasPending = false
	b.sm.SetEnabled(true)
}
