package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashSegmentsVertical(t *testing.T) {
	segs := DashSegments(5, 0, 5, 60, []float64{10, 15})
	require.Len(t, segs, 3)
	assert.Equal(t, Segment{X0: 5, Y0: 0, X1: 5, Y1: 10}, segs[0])
	assert.Equal(t, Segment{X0: 5, Y0: 25, X1: 5, Y1: 35}, segs[1])
	assert.Equal(t, Segment{X0: 5, Y0: 50, X1: 5, Y1: 60}, segs[2])
}

func TestDashSegmentsTruncatesLastDash(t *testing.T) {
	segs := DashSegments(0, 0, 30, 0, []float64{10, 15})
	require.Len(t, segs, 2)
	assert.Equal(t, Segment{X0: 25, Y0: 0, X1: 30, Y1: 0}, segs[1])
}

func TestDashSegmentsOddPatternRepeats(t *testing.T) {
	// [5] behaves like [5, 5].
	segs := DashSegments(0, 0, 20, 0, []float64{5})
	require.Len(t, segs, 2)
	assert.Equal(t, 0.0, segs[0].X0)
	assert.Equal(t, 10.0, segs[1].X0)
}

func TestDashSegmentsSolidFallback(t *testing.T) {
	whole := []Segment{{X0: 0, Y0: 0, X1: 3, Y1: 4}}
	assert.Equal(t, whole, DashSegments(0, 0, 3, 4, nil))
	assert.Equal(t, whole, DashSegments(0, 0, 3, 4, []float64{0, 0}))
	assert.Equal(t, whole, DashSegments(0, 0, 3, 4, []float64{4, -1}))
	assert.Nil(t, DashSegments(2, 2, 2, 2, []float64{1, 1}))
}

func TestDashSegmentsDoesNotMutatePattern(t *testing.T) {
	pattern := make([]float64, 1, 4)
	pattern[0] = 3
	DashSegments(0, 0, 20, 0, pattern)
	assert.Equal(t, []float64{3}, pattern)
	assert.Equal(t, 0.0, pattern[:2][1], "backing array left untouched")
}
