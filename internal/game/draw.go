package game

import (
	"image/color"
	"strconv"

	"golang.org/x/image/colornames"
)

var (
	// Background is the color the surface is cleared to.
	Background color.Color = colornames.Black
	// Foreground is used for the divider, paddles and scores.
	Foreground color.Color = colornames.White
	// BallColor fills the ball.
	BallColor color.Color = color.RGBA{R: 0xf3, G: 0xe6, B: 0x00, A: 0xff}
	// CenterDash is the on/off pattern of the center divider.
	CenterDash = []float64{10, 15}
)

// ScoreBaseline is the y coordinate of the score text baseline.
const ScoreBaseline = 60

// Render draws the full frame onto dst.
func (s *State) Render(dst Surface) {
	w, h := float64(s.Field.W), float64(s.Field.H)

	dst.Clear()

	dst.SetLineDash(CenterDash)
	dst.StrokeLine(w/2, 0, w/2, h, Foreground)
	dst.SetLineDash(nil)

	for _, p := range []Paddle{s.Human, s.AI} {
		dst.FillRect(p.X, p.Y, p.W, p.H, Foreground)
	}

	b := s.Ball
	dst.FillRect(b.X, b.Y, b.Size, b.Size, BallColor)

	dst.FillText(strconv.Itoa(s.Score.Human), w/4, ScoreBaseline, Foreground)
	dst.FillText(strconv.Itoa(s.Score.AI), 3*w/4, ScoreBaseline, Foreground)
}
