package core

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacerWaitsOneStep(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	start := time.Unix(0, 0)
	clock := clockwork.NewFakeClockAt(start)
	p := NewPacer(clock, 20)

	require.NoError(t, p.Next(ctx))
	assert.Equal(t, start, clock.Now(), "first frame is released without waiting")

	for i := 1; i <= 2; i++ {
		done := make(chan error, 1)
		go func() { done <- p.Next(ctx) }()

		require.NoError(t, clock.BlockUntilContext(ctx, 1))
		select {
		case <-done:
			t.Fatal("frame released before the step elapsed")
		default:
		}
		clock.Advance(50 * time.Millisecond)
		require.NoError(t, <-done)
		assert.Equal(t, start.Add(time.Duration(i)*50*time.Millisecond), clock.Now())
	}
}

func TestPacerHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPacer(clockwork.NewFakeClock(), 60)
	assert.ErrorIs(t, p.Next(ctx), context.Canceled)
}

func TestPacerStopsWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	clock := clockwork.NewFakeClock()
	p := NewPacer(clock, 60)
	require.NoError(t, p.Next(ctx))

	done := make(chan error, 1)
	go func() { done <- p.Next(ctx) }()
	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestStepsExhausts(t *testing.T) {
	ctx := context.Background()
	src := Steps(2)
	require.NoError(t, src.Next(ctx))
	require.NoError(t, src.Next(ctx))
	assert.ErrorIs(t, src.Next(ctx), ErrFramesExhausted)

	assert.ErrorIs(t, Steps(0).Next(ctx), ErrFramesExhausted)
}

func TestLimit(t *testing.T) {
	ctx := context.Background()

	unbounded := Limit(Immediate{}, 0)
	for i := 0; i < 100; i++ {
		require.NoError(t, unbounded.Next(ctx))
	}

	capped := Limit(Immediate{}, 1)
	require.NoError(t, capped.Next(ctx))
	assert.ErrorIs(t, capped.Next(ctx), ErrFramesExhausted)
}
