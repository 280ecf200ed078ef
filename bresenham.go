package circle

import (
	"iter"
	"math"
)

// FortyFive returns round(r/√2), the column where the circle crosses the
// diagonal x == y. Integer octant tracers stop before it.
func FortyFive(radius int) int {
	return int(math.Round(float64(radius) / math.Sqrt2))
}

// BresenhamOctantTracer is the midpoint decision carried out in integers.
//
// The decision variable is d = 4·((x+1)² + (y-½)² - r²), which is an integer
// for integer x, y and r and has the same sign as the midpoint test. Moving
// one column changes it by 8x+12; moving one column and one row by
// 8(x-y)+20. The result matches MidpointOctantTracer exactly on every column
// before the diagonal, without floating point.
type BresenhamOctantTracer struct{}

// Trace yields first-octant points for x in [0, FortyFive(r)).
func (BresenhamOctantTracer) Trace(radius int) (iter.Seq[Point[int]], error) {
	if err := checkRadius(radius); err != nil {
		return nil, err
	}
	return func(yield func(Point[int]) bool) {
		y := radius
		d := 5 - 4*radius
		for x := range FortyFive(radius) {
			if !yield(Pt(x, y)) {
				return
			}
			if d <= 0 {
				d += 8*x + 12
			} else {
				d += 8*(x-y) + 20
				y--
			}
		}
	}, nil
}

// Coverage implements Tracer.
func (t BresenhamOctantTracer) Coverage(radius int, octants Octants) (iter.Seq[Coverage], error) {
	points, err := t.Trace(radius)
	if err != nil {
		return nil, err
	}
	return expandPoints(points, octants), nil
}

// ClassicBresenhamTracer is the widely copied listing with error term
// d = 3 - 2r, updated by 4x+6 or 4(x-y)+10 after x has advanced.
//
// The update does not match the initial term, so the traced arc drifts
// inside the true circle as the radius grows (about 1.2 pixels at r = 190).
// It is kept to show the drift next to BresenhamOctantTracer.
type ClassicBresenhamTracer struct{}

// Trace yields first-octant points for x in [0, FortyFive(r)).
func (ClassicBresenhamTracer) Trace(radius int) (iter.Seq[Point[int]], error) {
	if err := checkRadius(radius); err != nil {
		return nil, err
	}
	return func(yield func(Point[int]) bool) {
		y := radius
		d := 3 - 2*radius
		for x := range FortyFive(radius) {
			if !yield(Pt(x, y)) {
				return
			}
			next := x + 1
			if d <= 0 {
				d += 4*next + 6
			} else {
				y--
				d += 4*(next-y) + 10
			}
		}
	}, nil
}

// Coverage implements Tracer.
func (t ClassicBresenhamTracer) Coverage(radius int, octants Octants) (iter.Seq[Coverage], error) {
	points, err := t.Trace(radius)
	if err != nil {
		return nil, err
	}
	return expandPoints(points, octants), nil
}
