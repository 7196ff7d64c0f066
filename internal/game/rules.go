package game

import (
	"math"

	"pong/internal/core"
)

// Rules holds the fixed geometry and speeds of a match.
type Rules struct {
	PaddleWidth  float64
	PaddleHeight float64
	PaddleMargin float64
	BallSize     float64

	// AISpeed is how far a tracking paddle moves per tick.
	AISpeed float64

	// ServeSpeedX and ServeSpeedY are the velocity magnitudes of a fresh serve.
	ServeSpeedX float64
	ServeSpeedY float64

	// Perturbation is the half-width of the uniform draw added to the ball's
	// vertical speed on every paddle hit.
	Perturbation float64
}

// DefaultRules returns the standard configuration.
func DefaultRules() Rules {
	return Rules{
		PaddleWidth:  16,
		PaddleHeight: 100,
		PaddleMargin: 24,
		BallSize:     16,
		AISpeed:      4,
		ServeSpeedX:  6,
		ServeSpeedY:  4,
		Perturbation: 1,
	}
}

// MinField returns the smallest playfield that fits both paddles, their
// margins and the ball.
func (r Rules) MinField() core.Size {
	w := 2*(r.PaddleMargin+r.PaddleWidth) + r.BallSize
	h := math.Max(r.PaddleHeight, r.BallSize)
	return core.Size{W: int(math.Ceil(w)), H: int(math.Ceil(h))}
}
