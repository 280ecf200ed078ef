package circle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMidpointOctantTracer_Points(t *testing.T) {
	tests := []struct {
		r    int
		want []Point[int]
	}{
		{1, []Point[int]{{0, 1}}},
		{2, []Point[int]{{0, 2}, {1, 2}}},
		{5, []Point[int]{{0, 5}, {1, 5}, {2, 5}, {3, 4}}},
		{10, []Point[int]{{0, 10}, {1, 10}, {2, 10}, {3, 10}, {4, 9}, {5, 9}, {6, 8}}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, mustTrace(t, MidpointOctantTracer{}, tt.r)); diff != "" {
			t.Errorf("r=%d points mismatch (-want +got):\n%s", tt.r, diff)
		}
	}
}

// TestMidpointOctantTracer_TightBound checks the midpoint tolerance: every
// point is within half a pixel of the circle, |x²+y²-r²| <= r + 1/2.
func TestMidpointOctantTracer_TightBound(t *testing.T) {
	for _, r := range append(testRadii, 5, 50) {
		for _, p := range mustTrace(t, MidpointOctantTracer{}, r) {
			if e := float64(p.RadialError(r)); e > float64(r)+0.5 || e < -float64(r)-0.5 {
				t.Errorf("r=%d: point %v has radial error %v", r, p, e)
			}
		}
	}
}

func TestMidpointOctantTracer_StopsAtDiagonal(t *testing.T) {
	for _, r := range []int{5, 50, 150, 190} {
		pts := mustTrace(t, MidpointOctantTracer{}, r)
		last := pts[len(pts)-1]
		if last.X >= last.Y {
			t.Errorf("r=%d: last point %v is past the diagonal", r, last)
		}
		if d := last.Y - last.X; d > 2 {
			t.Errorf("r=%d: last point %v stops %d rows short of the diagonal", r, last, d)
		}
	}
}
