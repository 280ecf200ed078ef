package circle

import "iter"

// MidpointOctantTracer walks the first octant one column at a time. At each
// step it evaluates the circle equation at the midpoint between the two
// candidate rows, (x+1, y-0.5). A midpoint inside or on the circle keeps the
// current row; outside it moves one row towards the center.
type MidpointOctantTracer struct{}

// Trace yields first-octant points from (0, r) while x < y.
func (MidpointOctantTracer) Trace(radius int) (iter.Seq[Point[int]], error) {
	if err := checkRadius(radius); err != nil {
		return nil, err
	}
	return func(yield func(Point[int]) bool) {
		r := float64(radius)
		x, y := 0, radius
		for x < y {
			if !yield(Pt(x, y)) {
				return
			}
			mx, my := float64(x)+1, float64(y)-0.5
			if p := mx*mx + my*my - r*r; p > 0 {
				y--
			}
			x++
		}
	}, nil
}

// Coverage implements Tracer.
func (t MidpointOctantTracer) Coverage(radius int, octants Octants) (iter.Seq[Coverage], error) {
	points, err := t.Trace(radius)
	if err != nil {
		return nil, err
	}
	return expandPoints(points, octants), nil
}
