package circle

import "iter"

// NaiveSampler solves y = sqrt(r² - x²) once per integer column.
//
// It emits 2r+1 points covering the lower half of the circle. Near x = ±r the
// curve is almost vertical, consecutive columns land several rows apart and
// the outline shows gaps. The octant strategies exist to close them.
type NaiveSampler struct{}

// Trace yields (x, round(sqrt(r²-x²))) for x from -r to r inclusive.
func (NaiveSampler) Trace(radius int) (iter.Seq[Point[int]], error) {
	if err := checkRadius(radius); err != nil {
		return nil, err
	}
	return func(yield func(Point[int]) bool) {
		r2 := radius * radius
		for x := -radius; x <= radius; x++ {
			if !yield(Pt(x, sqrtRound(r2-x*x))) {
				return
			}
		}
	}, nil
}

// TraceCircle is Trace offset by the circle's center.
func (s NaiveSampler) TraceCircle(c Circle) (iter.Seq[Point[int]], error) {
	points, err := s.Trace(c.Radius)
	if err != nil {
		return nil, err
	}
	return func(yield func(Point[int]) bool) {
		for p := range points {
			if !yield(p.Add(c.Center)) {
				return
			}
		}
	}, nil
}

// Coverage implements Tracer. The octant mask is ignored.
func (s NaiveSampler) Coverage(radius int, _ Octants) (iter.Seq[Coverage], error) {
	points, err := s.Trace(radius)
	if err != nil {
		return nil, err
	}
	return func(yield func(Coverage) bool) {
		for p := range points {
			if !yield(Coverage{X: p.X, Y: p.Y, Alpha: 255}) {
				return
			}
		}
	}, nil
}
