package circle

import (
	"iter"
	"math"
)

// CoveragePair is one antialiased column: the exact point on the circle and
// the two pixels that share its opacity.
type CoveragePair struct {
	Exact  Point[float64]
	Top    Coverage // row ceil(y), alpha round(255·frac(y))
	Bottom Coverage // row floor(y), alpha 255 minus Top's
}

// AntialiasedOctantTracer splits full opacity between the two rows nearest
// the exact y of each column, in proportion to its fractional part.
//
// The split is linear and only along y: no gamma correction, no horizontal
// coverage, nothing beyond the two nearest rows. When y is an integer both
// pixels are the same one, with alphas 0 and 255.
type AntialiasedOctantTracer struct{}

// Trace yields one pair per column x in [0, FortyFive(r)).
func (AntialiasedOctantTracer) Trace(radius int) (iter.Seq[CoveragePair], error) {
	if err := checkRadius(radius); err != nil {
		return nil, err
	}
	return func(yield func(CoveragePair) bool) {
		r2 := float64(radius) * float64(radius)
		for x := range FortyFive(radius) {
			y := math.Sqrt(r2 - float64(x*x))
			floor, frac := math.Modf(y)
			top := uint8(math.Round(255 * frac))
			pair := CoveragePair{
				Exact:  Pt(float64(x), y),
				Top:    Coverage{X: x, Y: int(math.Ceil(y)), Alpha: top},
				Bottom: Coverage{X: x, Y: int(floor), Alpha: 255 - top},
			}
			if !yield(pair) {
				return
			}
		}
	}, nil
}

// Coverage implements Tracer. Both pixels of every pair are mirrored; they
// are separate writes and rely on the sink to composite them.
func (t AntialiasedOctantTracer) Coverage(radius int, octants Octants) (iter.Seq[Coverage], error) {
	pairs, err := t.Trace(radius)
	if err != nil {
		return nil, err
	}
	return func(yield func(Coverage) bool) {
		for pair := range pairs {
			for _, c := range [2]Coverage{pair.Top, pair.Bottom} {
				for _, q := range ExpandOctants(c.X, c.Y, octants) {
					if !yield(Coverage{X: q.X, Y: q.Y, Alpha: c.Alpha}) {
						return
					}
				}
			}
		}
	}, nil
}
