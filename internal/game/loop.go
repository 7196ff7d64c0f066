package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"pong/internal/core"
)

// Options configures a Loop. Zero values select defaults.
type Options struct {
	Rules  Rules
	Source core.Source
	Logger *slog.Logger

	// Autoplay steers the human paddle with the same tracker as the AI.
	Autoplay bool
}

// Loop drives a match: it owns the state, applies input and renders every
// tick onto its surface.
type Loop struct {
	state    *State
	surface  Surface
	log      *slog.Logger
	autoplay bool
	ticks    uint64
}

// NewLoop sizes the playfield from surface and serves the first ball.
func NewLoop(surface Surface, opts Options) *Loop {
	if opts.Rules == (Rules{}) {
		opts.Rules = DefaultRules()
	}
	if opts.Source == nil {
		opts.Source = core.NewRNG(time.Now().UnixNano())
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loop{
		state:    NewState(surface.Size(), opts.Rules, opts.Source),
		surface:  surface,
		log:      opts.Logger,
		autoplay: opts.Autoplay,
	}
}

// State exposes the match state.
func (l *Loop) State() *State { return l.state }

// Ticks returns the number of updates run so far.
func (l *Loop) Ticks() uint64 { return l.ticks }

// MovePointer forwards the latest pointer y coordinate to the human paddle.
func (l *Loop) MovePointer(y float64) {
	if l.autoplay {
		return
	}
	l.state.MovePointer(y)
}

// ResetMatch zeroes the score and re-serves.
func (l *Loop) ResetMatch() {
	l.state.ResetMatch()
	l.log.Info("match reset", "tick", l.ticks)
}

// Reseed swaps the random source and starts a fresh match with it.
func (l *Loop) Reseed(src core.Source) {
	l.state.rng = src
	l.state.ResetMatch()
	l.log.Info("match reseeded", "tick", l.ticks)
}

// Update advances the simulation one tick without drawing.
func (l *Loop) Update() {
	if l.autoplay {
		l.state.Track(&l.state.Human)
	}
	scored := l.state.Update()
	l.ticks++
	if scored != SideNone {
		l.log.Info("point scored",
			"scorer", scored.String(),
			"human", l.state.Score.Human,
			"ai", l.state.Score.AI,
			"tick", l.ticks,
		)
	}
}

// Render draws the current state onto the surface.
func (l *Loop) Render() { l.state.Render(l.surface) }

// Tick runs one update followed by one render.
func (l *Loop) Tick() {
	l.Update()
	l.Render()
}

// Run ticks once per frame released by frames. It returns nil when frames is
// exhausted and the context error when ctx ends first.
func (l *Loop) Run(ctx context.Context, frames core.FrameSource) error {
	for {
		if err := frames.Next(ctx); err != nil {
			if errors.Is(err, core.ErrFramesExhausted) {
				return nil
			}
			return err
		}
		l.Tick()
	}
}
