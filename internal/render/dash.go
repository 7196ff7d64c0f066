package render

import "math"

// Segment is one solid piece of a stroked line.
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
}

// DashSegments splits the line (x0, y0)-(x1, y1) into the solid runs of an
// alternating on/off dash pattern. An odd-length pattern is repeated to make
// it even. Empty, negative or all-zero patterns yield the whole line.
func DashSegments(x0, y0, x1, y1 float64, pattern []float64) []Segment {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	if !validDash(pattern) {
		return []Segment{{X0: x0, Y0: y0, X1: x1, Y1: y1}}
	}
	if len(pattern)%2 == 1 {
		pattern = append(pattern[:len(pattern):len(pattern)], pattern...)
	}

	ux, uy := dx/length, dy/length
	var segs []Segment
	pos := 0.0
	for i := 0; pos < length; i++ {
		run := math.Min(pattern[i%len(pattern)], length-pos)
		if i%2 == 0 && run > 0 {
			segs = append(segs, Segment{
				X0: x0 + ux*pos,
				Y0: y0 + uy*pos,
				X1: x0 + ux*(pos+run),
				Y1: y0 + uy*(pos+run),
			})
		}
		pos += run
	}
	return segs
}

func validDash(pattern []float64) bool {
	if len(pattern) == 0 {
		return false
	}
	sum := 0.0
	for _, v := range pattern {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
		sum += v
	}
	return sum > 0
}
