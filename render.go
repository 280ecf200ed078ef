package circle

import (
	"fmt"
	"iter"
)

// PixelSink receives absolute pixel writes.
//
// Implementations must composite rather than overwrite when alpha < 255:
// the antialiased strategy and overlapping reflections write the same pixel
// more than once.
type PixelSink interface {
	SetPixel(x, y int, c RGB, alpha uint8)
}

// Stats summarizes one Render call.
type Stats struct {
	Strategy Strategy
	Writes   int // pixel writes sent to the sink
	Partial  int // writes with alpha < 255
}

// Pixels returns the absolute pixel writes for c.
func Pixels(c Circle, opts ...RenderOption) (iter.Seq[Pixel], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := o.strategy.Tracer()
	if t == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, o.strategy)
	}
	cov, err := t.Coverage(c.Radius, o.octants)
	if err != nil {
		return nil, err
	}

	return func(yield func(Pixel) bool) {
		for cv := range cov {
			px := Pixel{
				X:     c.Center.X + cv.X,
				Y:     c.Center.Y + cv.Y,
				Color: o.color,
				Alpha: cv.Alpha,
			}
			if !yield(px) {
				return
			}
		}
	}, nil
}

// Render draws the outline of c into sink.
func Render(sink PixelSink, c Circle, opts ...RenderOption) (Stats, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pixels, err := Pixels(c, opts...)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{Strategy: o.strategy}
	for px := range pixels {
		sink.SetPixel(px.X, px.Y, px.Color, px.Alpha)
		st.Writes++
		if px.Alpha < 255 {
			st.Partial++
		}
	}

	Logger().Debug("circle rendered",
		"strategy", o.strategy.String(),
		"center", fmt.Sprintf("%d,%d", c.Center.X, c.Center.Y),
		"radius", c.Radius,
		"octants", o.octants.String(),
		"writes", st.Writes,
		"partial", st.Partial,
	)
	return st, nil
}
