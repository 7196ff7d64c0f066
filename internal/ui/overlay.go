//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"pong/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional debugging readouts on top of the match.
type Overlay struct {
	loop    *game.Loop
	visible bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(loop *game.Loop, visible bool) *Overlay {
	return &Overlay{loop: loop, visible: visible}
}

// Update toggles visibility on F3 or D.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || o.loop == nil {
		return
	}
	s := o.loop.State()
	lines := []string{
		fmt.Sprintf("tick  %d", o.loop.Ticks()),
		fmt.Sprintf("tps   %.1f", ebiten.ActualTPS()),
		fmt.Sprintf("fps   %.1f", ebiten.ActualFPS()),
		fmt.Sprintf("ball  (%.1f, %.1f)", s.Ball.X, s.Ball.Y),
		fmt.Sprintf("speed (%.2f, %.2f)", s.Ball.SpeedX, s.Ball.SpeedY),
		fmt.Sprintf("ai y  %.1f", s.AI.Y),
	}

	const (
		padding    = 8
		lineHeight = 16
		panelWidth = 180
	)
	h := s.Field.H
	top := h - padding*2 - lineHeight*len(lines)
	vector.DrawFilledRect(screen, 0, float32(top), panelWidth, float32(h-top), color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)

	face := basicfont.Face7x13
	for i, line := range lines {
		y := top + padding + (i+1)*lineHeight - 3
		text.Draw(screen, line, face, padding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	}
}
