package core

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestFixedStepOnFakeClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Unix(0, 0))
	fs := NewFixedStep(clock, 10)
	assert.Equal(t, 100*time.Millisecond, fs.Step())

	assert.True(t, fs.ShouldStep(), "first call steps immediately")
	assert.False(t, fs.ShouldStep())
	assert.Equal(t, 100*time.Millisecond, fs.Remaining())

	clock.Advance(60 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	assert.Equal(t, 40*time.Millisecond, fs.Remaining())

	clock.Advance(40 * time.Millisecond)
	assert.True(t, fs.ShouldStep())

	// A short stall is paid back one tick per call.
	clock.Advance(250 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep())
}

func TestFixedStepCapsBacklog(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Unix(0, 0))
	fs := NewFixedStep(clock, 10)
	assert.True(t, fs.ShouldStep())

	clock.Advance(10 * time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	assert.Equal(t, maxBacklog, steps)
	assert.Equal(t, 100*time.Millisecond, fs.Remaining())
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(clockwork.NewFakeClock(), 0)
	assert.Equal(t, time.Second/60, fs.Step())
}
