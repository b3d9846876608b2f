//go:build rp2040

// DShot bridge firmware: receives throttle command blocks over USB
// serial and replays them as DShot frames on the ESC signal pin. When
// the host goes quiet the last throttle is refreshed periodically so
// the ESC does not disarm.
package main

import (
	"machine"
	"time"

	"godshot/encoder"
	"godshot/protocol"
	"godshot/targets/pio"
)

const (
	escPin       = machine.GP2
	resolutionHz = 40_000_000

	// ESCs cut power without a frame roughly every 10ms
	refreshInterval = 2 * time.Millisecond

	// staging capacity: a few frames of 17 symbols each
	stagingSymbols = 64
)

var (
	// Link receive buffer
	linkBuf [4 * protocol.BlockSize]byte
	linkLen int

	// Debug counters
	blocksReceived uint32
	blocksDropped  uint32
)

func main() {
	backend := pio.NewDshotBackend(0, 0, stagingSymbols)
	if err := backend.Init(escPin, resolutionHz); err != nil {
		println("dshot: PIO init failed:", err.Error())
		return
	}

	enc, err := encoder.NewDshotEncoder(encoder.ConfigDshot300(resolutionHz))
	if err != nil {
		println("dshot: encoder init failed:", err.Error())
		return
	}

	cmd := protocol.ThrottleCommand{Throttle: protocol.CmdMotorStop}
	lastFrame := time.Now()

	for {
		if pollLink(&cmd) {
			blocksReceived++
			sendFrame(enc, backend, cmd)
			lastFrame = time.Now()
		}

		if time.Since(lastFrame) >= refreshInterval {
			sendFrame(enc, backend, cmd)
			lastFrame = time.Now()
		}

		backend.Pump()
	}
}

// pollLink drains pending serial bytes and reports whether a new
// command block arrived.
func pollLink(cmd *protocol.ThrottleCommand) bool {
	for machine.Serial.Buffered() > 0 && linkLen < len(linkBuf) {
		b, err := machine.Serial.ReadByte()
		if err != nil {
			break
		}
		linkBuf[linkLen] = b
		linkLen++
	}

	got := false
	for {
		decoded, _, consumed, ok := protocol.DecodeCommandBlock(linkBuf[:linkLen])
		if consumed == 0 {
			break
		}
		copy(linkBuf[:], linkBuf[consumed:linkLen])
		linkLen -= consumed
		if ok {
			*cmd = decoded
			got = true
		} else {
			blocksDropped++
		}
	}
	return got
}

// sendFrame runs one logical frame through the encoder, pumping the
// backend whenever the staging FIFO fills up.
func sendFrame(enc *encoder.DshotEncoder, backend *pio.DshotBackend, cmd protocol.ThrottleCommand) {
	for {
		_, state := enc.Encode(backend, cmd)
		if state&encoder.EncodingComplete != 0 {
			return
		}
		// staging full: hand symbols to the PIO and resume
		backend.Pump()
	}
}
