//go:build ebiten

package render

import (
	"image/color"

	"pong/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextScale enlarges the 7x13 bitmap face to score size.
const TextScale = 4

// Canvas draws onto an ebiten image. Attach must be called with the frame's
// screen before drawing; calls made while detached are dropped.
type Canvas struct {
	size       core.Size
	dst        *ebiten.Image
	dash       []float64
	background color.Color
	face       font.Face
	lineWidth  float32
}

// NewCanvas returns a Canvas for a logical screen of the given size.
func NewCanvas(size core.Size, background color.Color) *Canvas {
	return &Canvas{
		size:       size,
		background: background,
		face:       basicfont.Face7x13,
		lineWidth:  1,
	}
}

// Attach points the canvas at dst for the following draw calls.
func (c *Canvas) Attach(dst *ebiten.Image) { c.dst = dst }

// Size returns the logical surface dimensions.
func (c *Canvas) Size() core.Size { return c.size }

// Clear fills the surface with the background color.
func (c *Canvas) Clear() {
	if c.dst == nil {
		return
	}
	c.dst.Fill(c.background)
}

// SetLineDash stores the dash pattern used by later strokes.
func (c *Canvas) SetLineDash(pattern []float64) {
	c.dash = append(c.dash[:0], pattern...)
}

// StrokeLine draws a line, split into dashes when a pattern is set.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64, col color.Color) {
	if c.dst == nil {
		return
	}
	for _, seg := range DashSegments(x0, y0, x1, y1, c.dash) {
		vector.StrokeLine(c.dst,
			float32(seg.X0), float32(seg.Y0), float32(seg.X1), float32(seg.Y1),
			c.lineWidth, col, false)
	}
}

// FillRect draws a filled rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	if c.dst == nil {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col, false)
}

// FillText draws s with its baseline at (x, y).
func (c *Canvas) FillText(s string, x, y float64, col color.Color) {
	if c.dst == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(TextScale, TextScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.DrawWithOptions(c.dst, s, c.face, op)
}
