package core

import "math/rand/v2"

// Source yields uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Sequence replays a fixed list of values, wrapping around once exhausted.
// An empty Sequence always yields 0.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence returns a Sequence over the provided values.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: append([]float64(nil), values...)}
}

// Float64 returns the next scripted value.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Drawn reports how many values have been consumed so far.
func (s *Sequence) Drawn() int { return s.next }
