package circle

// RenderOption configures a Render or Pixels call.
// Use functional options to customize the output.
//
// Example:
//
//	// Default: Bresenham, red, whole circle
//	stats, err := circle.Render(pm, c)
//
//	// Antialiased octant 7 only, in blue
//	octant, _ := circle.OctantSet(7)
//	stats, err := circle.Render(pm, c,
//	    circle.WithStrategy(circle.Antialiased),
//	    circle.WithColor(circle.Blue),
//	    circle.WithOctants(octant))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for rendering.
type renderOptions struct {
	strategy Strategy
	color    RGB
	octants  Octants
}

// defaultOptions returns the default render options.
func defaultOptions() renderOptions {
	return renderOptions{
		strategy: Bresenham,
		color:    Red,
		octants:  AllOctants,
	}
}

// WithStrategy selects the rasterization algorithm.
func WithStrategy(s Strategy) RenderOption {
	return func(o *renderOptions) {
		o.strategy = s
	}
}

// WithColor sets the color written for every pixel.
func WithColor(c RGB) RenderOption {
	return func(o *renderOptions) {
		o.color = c
	}
}

// WithOctants limits symmetric strategies to the given octants.
// The naive sampler has no octants and ignores this option.
func WithOctants(o Octants) RenderOption {
	return func(opts *renderOptions) {
		opts.octants = o
	}
}
