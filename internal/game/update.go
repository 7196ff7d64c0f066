package game

// MovePointer places the human paddle's center at the pointer's y coordinate,
// kept inside the playfield.
func (s *State) MovePointer(y float64) {
	s.Human.Y = y - s.Human.H/2
	s.Human.clamp(float64(s.Field.H))
}

// ResetBall re-centers the ball and serves it with fresh random signs at the
// fixed serve speeds.
func (s *State) ResetBall() {
	b := &s.Ball
	b.X = float64(s.Field.W)/2 - b.Size/2
	b.Y = float64(s.Field.H)/2 - b.Size/2
	b.SpeedX = s.Rules.ServeSpeedX * s.randomSign()
	b.SpeedY = s.Rules.ServeSpeedY * s.randomSign()
}

// ResetMatch zeroes the score and serves a new ball.
func (s *State) ResetMatch() {
	s.Score = Score{}
	s.ResetBall()
}

// Update advances the simulation by one tick and reports who scored, if
// anyone.
func (s *State) Update() Side {
	s.integrate()
	s.bounceWalls()
	s.bouncePaddles()
	scored := s.checkScore()
	s.Track(&s.AI)
	return scored
}

// Track moves p one fixed step toward the ball's vertical center.
func (s *State) Track(p *Paddle) {
	ball, center := s.Ball.CenterY(), p.CenterY()
	switch {
	case ball > center:
		p.Y += s.Rules.AISpeed
	case ball < center:
		p.Y -= s.Rules.AISpeed
	}
	p.clamp(float64(s.Field.H))
}

func (s *State) integrate() {
	s.Ball.X += s.Ball.SpeedX
	s.Ball.Y += s.Ball.SpeedY
}

func (s *State) bounceWalls() {
	b := &s.Ball
	if b.Y <= 0 {
		b.Y = 0
		b.SpeedY = -b.SpeedY
	}
	if bottom := float64(s.Field.H) - b.Size; b.Y >= bottom {
		b.Y = bottom
		b.SpeedY = -b.SpeedY
	}
}

// bouncePaddles checks the human paddle before the AI paddle. Both checks
// always run, so a ball overlapping both is handled twice.
func (s *State) bouncePaddles() {
	b := &s.Ball
	if b.Rect().Overlaps(s.Human.Rect()) {
		b.X = s.Human.X + s.Human.W
		b.SpeedX = -b.SpeedX
		b.SpeedY += s.perturbation()
	}
	if b.Rect().Overlaps(s.AI.Rect()) {
		b.X = s.AI.X - b.Size
		b.SpeedX = -b.SpeedX
		b.SpeedY += s.perturbation()
	}
}

func (s *State) checkScore() Side {
	scored := SideNone
	if s.Ball.X < 0 {
		s.Score.AI++
		s.ResetBall()
		scored = SideAI
	}
	if s.Ball.X+s.Ball.Size > float64(s.Field.W) {
		s.Score.Human++
		s.ResetBall()
		scored = SideHuman
	}
	return scored
}

func (s *State) randomSign() float64 {
	if s.rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

// perturbation draws uniformly from [-Perturbation, +Perturbation).
func (s *State) perturbation() float64 {
	return (s.rng.Float64() - 0.5) * 2 * s.Rules.Perturbation
}
