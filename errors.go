package circle

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by the rasterizers and parsers.
var (
	// ErrInvalidRadius is returned when a radius is not a positive finite number.
	ErrInvalidRadius = errors.New("circle: invalid radius")

	// ErrUnknownStrategy is returned by ParseStrategy for unknown names.
	ErrUnknownStrategy = errors.New("circle: unknown strategy")

	// ErrInvalidColor is returned by ParseHex for malformed colors.
	ErrInvalidColor = errors.New("circle: invalid color")

	// ErrInvalidOctant is returned for octant numbers outside 1..8.
	ErrInvalidOctant = errors.New("circle: invalid octant")

	// ErrInvalidSize is returned for negative image dimensions.
	ErrInvalidSize = errors.New("circle: invalid size")
)

// checkRadius rejects radii that cannot describe a circle.
func checkRadius(radius int) error {
	if radius < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}
	return nil
}

// CheckSize rejects negative image dimensions. A zero size is allowed and
// yields an empty pixmap.
func CheckSize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}

// RadiusFromFloat rounds f to the nearest integer radius.
// NaN, infinities and values that round below 1 are rejected.
func RadiusFromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRadius, f)
	}
	if f > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v out of range", ErrInvalidRadius, f)
	}
	r := int(math.Round(f))
	if err := checkRadius(r); err != nil {
		return 0, err
	}
	return r, nil
}
