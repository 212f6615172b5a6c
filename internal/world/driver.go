package world

// DefaultMaxDelta is the longest step, in seconds, simulated in one frame.
const DefaultMaxDelta = 0.1

// Clock reports the time since the previous frame in seconds.
type Clock interface {
	FrameTime() float32
}

// FixedClock always reports the same step.
type FixedClock float32

func (c FixedClock) FrameTime() float32 {
	return float32(c)
}

// Driver produces the clamped delta time for each frame.
type Driver struct {
	MaxDelta float32
	Clock    Clock
	frames   uint64
}

func NewDriver(clock Clock) *Driver {
	return &Driver{MaxDelta: DefaultMaxDelta, Clock: clock}
}

func (d *Driver) Clamp(dt float32) float32 {
	if dt < 0 {
		return 0
	}
	if dt > d.MaxDelta {
		return d.MaxDelta
	}
	return dt
}

// Next reads the clock and returns the clamped step.
func (d *Driver) Next() float32 {
	d.frames++
	return d.Clamp(d.Clock.FrameTime())
}

func (d *Driver) Frames() uint64 {
	return d.frames
}
