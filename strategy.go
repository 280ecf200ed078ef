package circle

import (
	"fmt"
	"strings"
)

// Strategy selects one of the rasterization algorithms.
type Strategy uint8

const (
	// Naive samples y for every column of the full width.
	Naive Strategy = iota
	// SqrtOctant samples y over one octant and mirrors it.
	SqrtOctant
	// Quadrant samples two octants and mirrors them into four quadrants.
	Quadrant
	// Midpoint runs the floating-point midpoint decision.
	Midpoint
	// Bresenham runs the integer midpoint decision. The 3-2r listing lives
	// in ClassicBresenham.
	Bresenham
	// ClassicBresenham runs the textbook 3-2r recurrence.
	ClassicBresenham
	// Antialiased splits coverage between the two nearest rows.
	Antialiased
)

var strategyNames = [...]string{
	Naive:            "naive",
	SqrtOctant:       "octant",
	Quadrant:         "quadrant",
	Midpoint:         "midpoint",
	Bresenham:        "bresenham",
	ClassicBresenham: "classic-bresenham",
	Antialiased:      "antialiased",
}

var strategyDescriptions = [...]string{
	Naive:            "naive sampling",
	SqrtOctant:       "square root octant",
	Quadrant:         "square root quadrant",
	Midpoint:         "midpoint octant",
	Bresenham:        "bresenham octant",
	ClassicBresenham: "classic bresenham octant",
	Antialiased:      "antialiased octant",
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	out := make([]Strategy, len(strategyNames))
	for i := range out {
		out[i] = Strategy(i)
	}
	return out
}

// String returns the short name accepted by ParseStrategy.
func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// Description returns a human readable name, e.g. "midpoint octant".
func (s Strategy) Description() string {
	if int(s) < len(strategyDescriptions) {
		return strategyDescriptions[s]
	}
	return s.String()
}

// ParseStrategy returns the strategy with the given short name.
// Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Tracer returns the implementation behind s, or nil for an unknown value.
func (s Strategy) Tracer() Tracer {
	switch s {
	case Naive:
		return NaiveSampler{}
	case SqrtOctant:
		return SqrtOctantSampler{}
	case Quadrant:
		return QuadrantSampler{}
	case Midpoint:
		return MidpointOctantTracer{}
	case Bresenham:
		return BresenhamOctantTracer{}
	case ClassicBresenham:
		return ClassicBresenhamTracer{}
	case Antialiased:
		return AntialiasedOctantTracer{}
	default:
		return nil
	}
}
