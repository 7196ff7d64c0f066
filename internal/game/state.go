package game

import (
	"pong/internal/core"
)

// Side identifies one end of the playfield.
type Side int

const (
	// SideNone means nobody scored.
	SideNone Side = iota
	// SideHuman is the pointer-controlled paddle on the left.
	SideHuman
	// SideAI is the scripted paddle on the right.
	SideAI
)

func (s Side) String() string {
	switch s {
	case SideHuman:
		return "human"
	case SideAI:
		return "ai"
	default:
		return "none"
	}
}

// Paddle is a vertical bar whose x never changes after creation.
type Paddle struct {
	X, Y float64
	W, H float64
}

// Rect returns the paddle's bounding box.
func (p Paddle) Rect() core.Rect { return core.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H} }

// CenterY returns the vertical center of the paddle.
func (p Paddle) CenterY() float64 { return p.Y + p.H/2 }

func (p *Paddle) clamp(fieldH float64) {
	p.Y = core.Clamp(p.Y, 0, fieldH-p.H)
}

// Ball is the square projectile.
type Ball struct {
	X, Y   float64
	Size   float64
	SpeedX float64
	SpeedY float64
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.Rect { return core.Rect{X: b.X, Y: b.Y, W: b.Size, H: b.Size} }

// CenterY returns the vertical center of the ball.
func (b Ball) CenterY() float64 { return b.Y + b.Size/2 }

// Score counts points per side.
type Score struct {
	Human int
	AI    int
}

// State is everything that changes during a match.
type State struct {
	Field core.Size
	Rules Rules

	Human Paddle
	AI    Paddle
	Ball  Ball
	Score Score

	rng core.Source
}

// NewState lays out both paddles centered on their edges and serves the ball.
func NewState(field core.Size, rules Rules, rng core.Source) *State {
	w, h := float64(field.W), float64(field.H)
	y := h/2 - rules.PaddleHeight/2
	s := &State{
		Field: field,
		Rules: rules,
		Human: Paddle{X: rules.PaddleMargin, Y: y, W: rules.PaddleWidth, H: rules.PaddleHeight},
		AI:    Paddle{X: w - rules.PaddleMargin - rules.PaddleWidth, Y: y, W: rules.PaddleWidth, H: rules.PaddleHeight},
		Ball:  Ball{Size: rules.BallSize},
		rng:   rng,
	}
	s.ResetBall()
	return s
}
