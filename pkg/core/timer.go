package core

import "time"

// FixedStep gates simulation updates so they run at most once per tick
// interval, independent of how often the host loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller with the given tick interval.
// Non-positive intervals fall back to 50ms.
func NewFixedStep(tick time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTick(tick)
	fs.accumulator = fs.step
	return fs
}

// SetTick changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetTick(tick time.Duration) {
	if tick <= 0 {
		tick = 50 * time.Millisecond
	}
	f.step = tick
}

// Tick returns the current tick interval.
func (f *FixedStep) Tick() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Drop backlog so a stalled frame does not trigger a burst of steps.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
