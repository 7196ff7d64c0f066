package core

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock abstracts wall time so pacing can run against a fake in tests.
type Clock = clockwork.Clock

// maxBacklog bounds how many overdue ticks FixedStep will pay back after a
// stall, such as the host being suspended.
const maxBacklog = 3

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	clock       Clock
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS. The
// first call to ShouldStep always reports true.
func NewFixedStep(clock Clock, tps int) *FixedStep {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	fs := &FixedStep{clock: clock}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.clock.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if limit := maxBacklog * f.step; f.accumulator > limit {
		f.accumulator = limit
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Remaining returns how long until the next tick is due, as of the last call
// to ShouldStep.
func (f *FixedStep) Remaining() time.Duration {
	if f.accumulator >= f.step {
		return 0
	}
	return f.step - f.accumulator
}
