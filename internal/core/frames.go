package core

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"
)

// ErrFramesExhausted is returned by a FrameSource that has no frames left.
var ErrFramesExhausted = errors.New("frame source exhausted")

// FrameSource schedules frames. Next blocks until the next frame is due and
// returns nil, or returns an error once no further frames will be produced.
type FrameSource interface {
	Next(ctx context.Context) error
}

// Pacer releases frames at a fixed rate measured on a Clock.
type Pacer struct {
	clock Clock
	step  *FixedStep
}

// NewPacer returns a Pacer running at tps frames per second.
func NewPacer(clock Clock, tps int) *Pacer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Pacer{clock: clock, step: NewFixedStep(clock, tps)}
}

// Next waits for the next tick.
func (p *Pacer) Next(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if p.step.ShouldStep() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.clock.After(p.step.Remaining()):
		}
	}
}

// Immediate releases frames as fast as they are requested.
type Immediate struct{}

// Next returns immediately unless ctx is done.
func (Immediate) Next(ctx context.Context) error { return ctx.Err() }

type limited struct {
	src  FrameSource
	left int
}

func (l *limited) Next(ctx context.Context) error {
	if l.left <= 0 {
		return ErrFramesExhausted
	}
	if err := l.src.Next(ctx); err != nil {
		return err
	}
	l.left--
	return nil
}

// Limit caps src at n frames. A non-positive n leaves src unbounded.
func Limit(src FrameSource, n int) FrameSource {
	if n <= 0 {
		return src
	}
	return &limited{src: src, left: n}
}

// Steps returns a source producing exactly n unpaced frames.
func Steps(n int) FrameSource {
	return &limited{src: Immediate{}, left: n}
}
