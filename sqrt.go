package circle

import (
	"iter"
	"math"
)

// SqrtOctantSampler computes y = round(sqrt(r² - x²)) over the first octant
// only and relies on symmetry for the rest of the circle. Within one octant
// the slope never exceeds 1, so every column is enough.
type SqrtOctantSampler struct{}

// Trace yields first-octant points while x < y.
func (SqrtOctantSampler) Trace(radius int) (iter.Seq[Point[int]], error) {
	if err := checkRadius(radius); err != nil {
		return nil, err
	}
	return func(yield func(Point[int]) bool) {
		x, y := 0, radius
		for x < y {
			if !yield(Pt(x, y)) {
				return
			}
			x++
			y = sqrtRound(radius*radius - x*x)
		}
	}, nil
}

// Coverage implements Tracer.
func (s SqrtOctantSampler) Coverage(radius int, octants Octants) (iter.Seq[Coverage], error) {
	points, err := s.Trace(radius)
	if err != nil {
		return nil, err
	}
	return expandPoints(points, octants), nil
}

// QuadrantSampler samples two octants directly and mirrors them into the
// four quadrants. The first pass steps x and solves for y until the
// diagonal; the second pass steps y down to the axis and solves for x.
type QuadrantSampler struct{}

// Trace yields the points of the lower-right quadrant (x >= 0, y >= 0) in
// tracing order. The point where the passes meet may appear twice.
//
// The second pass runs down to y = 0 inclusive, so (r, 0) and its mirrors
// are drawn. The script this sampler comes from stopped at y = 1 and left
// the outline open on the horizontal axis.
func (s QuadrantSampler) Trace(radius int) (iter.Seq[Point[int]], error) {
	passes, err := s.trace(radius)
	if err != nil {
		return nil, err
	}
	return func(yield func(Point[int]) bool) {
		for p := range passes {
			if !yield(p) {
				return
			}
		}
	}, nil
}

// trace yields each point together with whether it came from the second
// (y-stepping) pass.
func (QuadrantSampler) trace(radius int) (iter.Seq2[Point[int], bool], error) {
	if err := checkRadius(radius); err != nil {
		return nil, err
	}
	return func(yield func(Point[int], bool) bool) {
		r2 := radius * radius
		x, y := 0, radius
		for x < y {
			y = sqrtRound(r2 - x*x)
			if !yield(Pt(x, y), false) {
				return
			}
			x++
		}
		for ; y >= 0; y-- {
			x = sqrtRound(r2 - y*y)
			if !yield(Pt(x, y), true) {
				return
			}
		}
	}, nil
}

// Coverage implements Tracer. First-pass points mirror into octants 7, 2, 3
// and 6; second-pass points into 8, 1, 4 and 5.
func (s QuadrantSampler) Coverage(radius int, octants Octants) (iter.Seq[Coverage], error) {
	passes, err := s.trace(radius)
	if err != nil {
		return nil, err
	}
	return func(yield func(Coverage) bool) {
		for p, second := range passes {
			var mirrored []Point[int]
			if second {
				// (x, y) sits in octant 8, the swap of first-octant (y, x).
				mirrored = ExpandOctants(p.Y, p.X, octants&horizontalOctants)
			} else {
				mirrored = ExpandOctants(p.X, p.Y, octants&verticalOctants)
			}
			for _, q := range mirrored {
				if !yield(Coverage{X: q.X, Y: q.Y, Alpha: 255}) {
					return
				}
			}
		}
	}, nil
}

// sqrtRound returns round(sqrt(v)) for v >= 0.
func sqrtRound(v int) int {
	return int(math.Round(math.Sqrt(float64(v))))
}
