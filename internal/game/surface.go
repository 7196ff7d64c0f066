package game

import (
	"image/color"

	"pong/internal/core"
)

// Surface is the 2D drawing target a frame is rendered onto.
type Surface interface {
	// Size reports the drawable area in pixels.
	Size() core.Size
	// Clear erases the whole surface.
	Clear()
	// SetLineDash sets alternating on/off lengths for subsequent strokes.
	// An empty pattern draws solid lines.
	SetLineDash(pattern []float64)
	StrokeLine(x0, y0, x1, y1 float64, c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	// FillText draws s with its baseline starting at (x, y).
	FillText(s string, x, y float64, c color.Color)
}
