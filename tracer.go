package circle

import "iter"

// Tracer is the capability every strategy shares: produce the coverage of a
// circle outline relative to the circle's center.
//
// The octants mask restricts the output of strategies built on symmetry.
// NaiveSampler has no octant structure and ignores it.
type Tracer interface {
	Coverage(radius int, octants Octants) (iter.Seq[Coverage], error)
}

// Compile-time checks.
var (
	_ Tracer = NaiveSampler{}
	_ Tracer = SqrtOctantSampler{}
	_ Tracer = QuadrantSampler{}
	_ Tracer = MidpointOctantTracer{}
	_ Tracer = BresenhamOctantTracer{}
	_ Tracer = ClassicBresenhamTracer{}
	_ Tracer = AntialiasedOctantTracer{}
)

// expandPoints mirrors every first-octant point into the octants in mask.
func expandPoints(points iter.Seq[Point[int]], mask Octants) iter.Seq[Coverage] {
	return func(yield func(Coverage) bool) {
		for p := range points {
			for _, q := range ExpandOctants(p.X, p.Y, mask) {
				if !yield(Coverage{X: q.X, Y: q.Y, Alpha: 255}) {
					return
				}
			}
		}
	}
}
