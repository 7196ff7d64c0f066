package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		va, vb := a.Float64(), b.Float64()
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, 0.0)
		assert.Less(t, va, 1.0)
	}
}

func TestSequenceWraps(t *testing.T) {
	s := NewSequence(0.1, 0.9)
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.9, s.Float64())
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 3, s.Drawn())

	empty := NewSequence()
	assert.Equal(t, 0.0, empty.Float64())
}
