package circle

import "golang.org/x/exp/constraints"

// Number is the set of coordinate types a Point can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point represents a 2D position.
//
// Tracers emit Point[int] relative to the circle's own origin. The
// antialiased tracer also reports the exact position as Point[float64].
type Point[T Number] struct {
	X, Y T
}

// Pt is a convenience function to create a Point.
func Pt[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// RadialError returns x² + y² - r², the signed distance of p from the
// circle of radius r measured in squared units.
func (p Point[T]) RadialError(r T) T {
	return p.X*p.X + p.Y*p.Y - r*r
}

// Circle is the input of every strategy.
type Circle struct {
	Center Point[int]
	Radius int
}

// NewCircle returns a circle centered at (cx, cy).
// It fails with ErrInvalidRadius if radius < 1.
func NewCircle(cx, cy, radius int) (Circle, error) {
	if err := checkRadius(radius); err != nil {
		return Circle{}, err
	}
	return Circle{Center: Pt(cx, cy), Radius: radius}, nil
}

// Coverage is a colorless pixel relative to the circle's origin.
type Coverage struct {
	X, Y  int
	Alpha uint8
}

// Pixel is a single absolute write into a PixelSink.
type Pixel struct {
	X, Y  int
	Color RGB
	Alpha uint8
}
