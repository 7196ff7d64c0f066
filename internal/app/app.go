//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"pong/internal/core"
	"pong/internal/game"
	"pong/internal/render"
	"pong/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a match loop to the ebiten.Game interface.
type Game struct {
	loop    *game.Loop
	canvas  *render.Canvas
	overlay *ui.Overlay
	log     *slog.Logger

	paused   bool
	tickOnce bool

	cursorY    int
	haveCursor bool
}

// New constructs a Game for the provided configuration.
func New(cfg *Config, logger *slog.Logger) *Game {
	canvas := render.NewCanvas(cfg.Field(), game.Background)
	loop := game.NewLoop(canvas, game.Options{
		Source:   core.NewRNG(cfg.SeedValue()),
		Logger:   logger,
		Autoplay: cfg.Autoplay,
	})
	return &Game{
		loop:    loop,
		canvas:  canvas,
		overlay: ui.NewOverlay(loop, cfg.Debug),
		log:     logger,
	}
}

// Update handles input and advances the match by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Info("quit requested", "tick", g.loop.Ticks())
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.log.Debug("pause toggled", "paused", g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loop.ResetMatch()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.loop.Reseed(core.NewRNG(time.Now().UnixNano()))
	}

	g.pollPointer()

	if g.overlay != nil {
		g.overlay.Update()
	}

	if !g.paused || g.tickOnce {
		g.loop.Update()
		g.tickOnce = false
	}
	return nil
}

// pollPointer forwards the cursor only when it has moved since the last
// update. The first sample just primes the comparison.
func (g *Game) pollPointer() {
	_, y := ebiten.CursorPosition()
	if !g.haveCursor {
		g.cursorY, g.haveCursor = y, true
		return
	}
	if y == g.cursorY {
		return
	}
	g.cursorY = y
	g.loop.MovePointer(float64(y))
}

// Draw renders the current match state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Attach(screen)
	g.loop.Render()
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.canvas.Size()
	return s.W, s.H
}
