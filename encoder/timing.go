package encoder

// Config is the protocol-level timing configuration, captured once at
// construction. Changing timing requires destroying and rebuilding the
// encoder.
type Config struct {
	ResolutionHz  uint32 // tick rate of the output peripheral, > 0
	BaudRate      uint32 // DShot bit rate in symbols/sec, > 0
	PostDelayUS   uint32 // inter-frame gap in microseconds
	Bidirectional bool   // inverted-CRC DShot variant
}

// Standard DShot variants differ only in bit rate.
const (
	BaudDshot150  = 150_000
	BaudDshot300  = 300_000
	BaudDshot600  = 600_000
	BaudDshot1200 = 1_200_000
)

// ConfigDshot300 returns a Config for DShot300 at the given tick rate
// with the conventional 50us inter-frame gap. Sibling helpers cover
// the other standard rates.
func ConfigDshot300(resolutionHz uint32) Config {
	return Config{ResolutionHz: resolutionHz, BaudRate: BaudDshot300, PostDelayUS: 50}
}

func ConfigDshot150(resolutionHz uint32) Config {
	return Config{ResolutionHz: resolutionHz, BaudRate: BaudDshot150, PostDelayUS: 50}
}

func ConfigDshot600(resolutionHz uint32) Config {
	return Config{ResolutionHz: resolutionHz, BaudRate: BaudDshot600, PostDelayUS: 50}
}

func ConfigDshot1200(resolutionHz uint32) Config {
	return Config{ResolutionHz: resolutionHz, BaudRate: BaudDshot1200, PostDelayUS: 50}
}

// Timings holds the derived per-bit and gap symbols handed to the
// sub-encoders. Immutable once computed.
type Timings struct {
	One  Symbol // logical 1: 74.85% high duty over the bit period
	Zero Symbol // logical 0: 37.425% high duty over the bit period
	Gap  Symbol // inter-frame silence, line low, split in equal halves
}

const (
	dutyOne  = 0.7485
	dutyZero = 0.37425
)

// ComputeTimings translates cfg into tick counts, truncating fractional
// ticks. Fails when required fields are zero or a derived duration
// does not fit the symbol representation.
func ComputeTimings(cfg Config) (Timings, error) {
	if cfg.ResolutionHz == 0 || cfg.BaudRate == 0 {
		return Timings{}, ErrInvalidConfig
	}

	period := float64(cfg.ResolutionHz) / float64(cfg.BaudRate)
	t1h := uint32(period * dutyOne)
	t1l := uint32(period - float64(t1h))
	t0h := uint32(period * dutyZero)
	t0l := uint32(period - float64(t0h))

	gapTicks := uint32(float64(cfg.ResolutionHz) / 1e6 * float64(cfg.PostDelayUS))
	gapHalf := gapTicks / 2

	for _, ticks := range []uint32{t1h, t1l, t0h, t0l, gapHalf} {
		if ticks > MaxDuration {
			return Timings{}, ErrDurationOverflow
		}
	}

	return Timings{
		One: Symbol{
			Level0: true, Duration0: uint16(t1h),
			Level1: false, Duration1: uint16(t1l),
		},
		Zero: Symbol{
			Level0: true, Duration0: uint16(t0h),
			Level1: false, Duration1: uint16(t0l),
		},
		Gap: Symbol{
			Level0: false, Duration0: uint16(gapHalf),
			Level1: false, Duration1: uint16(gapHalf),
		},
	}, nil
}
