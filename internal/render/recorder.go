package render

import (
	"image/color"

	"pong/internal/core"
)

// OpKind tags a recorded draw call.
type OpKind int

const (
	// OpLine is a stroked line; X, Y to X1, Y1 with the dash active at the time.
	OpLine OpKind = iota + 1
	// OpRect is a filled rectangle at X, Y sized W by H.
	OpRect
	// OpText is text with its baseline starting at X, Y.
	OpText
)

// Op is one recorded draw call.
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	X1    float64
	Y1    float64
	Dash  []float64
	Text  string
	Color color.Color
}

// Recorder is a surface that keeps the draw calls of the current frame
// instead of rasterizing them. Clear starts a new frame.
type Recorder struct {
	size   core.Size
	dash   []float64
	ops    []Op
	frames int
}

// NewRecorder returns an empty Recorder for a surface of the given size.
func NewRecorder(size core.Size) *Recorder {
	return &Recorder{size: size}
}

// Size returns the surface dimensions.
func (r *Recorder) Size() core.Size { return r.size }

// Clear drops the previous frame's operations.
func (r *Recorder) Clear() {
	r.ops = r.ops[:0]
	r.frames++
}

// SetLineDash stores the dash pattern used by later strokes.
func (r *Recorder) SetLineDash(pattern []float64) {
	r.dash = append(r.dash[:0], pattern...)
}

// StrokeLine records a line.
func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64, c color.Color) {
	var dash []float64
	if len(r.dash) > 0 {
		dash = append([]float64(nil), r.dash...)
	}
	r.ops = append(r.ops, Op{Kind: OpLine, X: x0, Y: y0, X1: x1, Y1: y1, Dash: dash, Color: c})
}

// FillRect records a filled rectangle.
func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

// FillText records a text draw.
func (r *Recorder) FillText(s string, x, y float64, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpText, X: x, Y: y, Text: s, Color: c})
}

// Ops returns the operations recorded since the last Clear. The slice is
// reused by the next frame.
func (r *Recorder) Ops() []Op { return r.ops }

// Frames returns how many times Clear has been called.
func (r *Recorder) Frames() int { return r.frames }
