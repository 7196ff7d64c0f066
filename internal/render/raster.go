package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"pong/internal/core"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Rasterize paints recorded operations into a new RGBA image. Lines are one
// pixel wide and text uses the 7x13 bitmap face at its native size.
func Rasterize(ops []Op, size core.Size, background color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for _, op := range ops {
		switch op.Kind {
		case OpRect:
			fillRect(img, op.X, op.Y, op.W, op.H, op.Color)
		case OpLine:
			for _, seg := range DashSegments(op.X, op.Y, op.X1, op.Y1, op.Dash) {
				plotLine(img, seg, op.Color)
			}
		case OpText:
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(op.Color),
				Face: basicfont.Face7x13,
				Dot:  fixed.P(int(math.Round(op.X)), int(math.Round(op.Y))),
			}
			d.DrawString(op.Text)
		}
	}
	return img
}

func fillRect(img *image.RGBA, x, y, w, h float64, c color.Color) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// plotLine walks the segment one pixel at a time along its major axis.
func plotLine(img *image.RGBA, seg Segment, c color.Color) {
	dx, dy := seg.X1-seg.X0, seg.Y1-seg.Y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Floor(seg.X0 + dx*t))
		y := int(math.Floor(seg.Y0 + dy*t))
		if image.Pt(x, y).In(img.Bounds()) {
			img.Set(x, y, c)
		}
	}
}
