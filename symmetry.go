package circle

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Octants is a set of circle octants. Bit n-1 stands for octant n.
//
// Octants are numbered the way the drawing scripts label them: starting from
// a first-octant point (x, y) with 0 <= x <= y, octant 7 is (x, y) itself,
// 2 is (x, -y), 3 is (-x, -y), 6 is (-x, y), 8 is (y, x), 1 is (y, -x),
// 4 is (-y, -x) and 5 is (-y, x).
type Octants uint8

// AllOctants selects the whole circle.
const AllOctants Octants = 0xff

// reflection maps a first-octant point into one octant.
type reflection struct {
	octant int
	sx, sy int
	swap   bool
}

// reflections in drawing order.
var reflections = [8]reflection{
	{octant: 7, sx: 1, sy: 1},
	{octant: 2, sx: 1, sy: -1},
	{octant: 3, sx: -1, sy: -1},
	{octant: 6, sx: -1, sy: 1},
	{octant: 8, sx: 1, sy: 1, swap: true},
	{octant: 1, sx: 1, sy: -1, swap: true},
	{octant: 4, sx: -1, sy: -1, swap: true},
	{octant: 5, sx: -1, sy: 1, swap: true},
}

// Quadrant octant groups: the four unswapped and the four swapped reflections.
const (
	verticalOctants   Octants = 1<<(7-1) | 1<<(2-1) | 1<<(3-1) | 1<<(6-1)
	horizontalOctants Octants = 1<<(8-1) | 1<<(1-1) | 1<<(4-1) | 1<<(5-1)
)

// OctantSet builds a set from octant numbers in 1..8.
func OctantSet(octants ...int) (Octants, error) {
	var o Octants
	for _, n := range octants {
		if n < 1 || n > 8 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidOctant, n)
		}
		o |= 1 << (n - 1)
	}
	return o, nil
}

// ParseOctants parses "all" or a comma separated list such as "7,8".
func ParseOctants(s string) (Octants, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return AllOctants, nil
	}
	var ns []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidOctant, f)
		}
		ns = append(ns, n)
	}
	return OctantSet(ns...)
}

// Has reports whether octant n is in the set.
func (o Octants) Has(n int) bool {
	return n >= 1 && n <= 8 && o&(1<<(n-1)) != 0
}

// String lists the octants in ascending order, e.g. "1,7,8".
func (o Octants) String() string {
	if o == AllOctants {
		return "all"
	}
	var parts []string
	for n := 1; n <= 8; n++ {
		if o.Has(n) {
			parts = append(parts, strconv.Itoa(n))
		}
	}
	return strings.Join(parts, ",")
}

// Expand returns the 8-fold reflections (±x, ±y) and (±y, ±x) of a point.
// Duplicates are removed, so a point on an axis or on a diagonal yields 4.
func Expand(x, y int) []Point[int] {
	return ExpandOctants(x, y, AllOctants)
}

// ExpandOctants is Expand restricted to the octants in mask.
func ExpandOctants(x, y int, mask Octants) []Point[int] {
	out := make([]Point[int], 0, 8)
	for _, r := range reflections {
		if !mask.Has(r.octant) {
			continue
		}
		p := Point[int]{X: r.sx * x, Y: r.sy * y}
		if r.swap {
			p = Point[int]{X: r.sx * y, Y: r.sy * x}
		}
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}
