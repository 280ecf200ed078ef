package circle

import (
	"fmt"
	"image/color"
)

// RGB is an opaque 8-bit color. Opacity travels separately as the alpha of
// each write, so a single color can be split across several pixels.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}
)

// Color converts c to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// WithAlpha returns c as a non-premultiplied color with the given alpha.
func (c RGB) WithAlpha(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// String returns the color as a lowercase "rrggbb" hex string.
func (c RGB) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a hex color. A leading '#' is optional.
// Supported formats: "RGB" and "RRGGBB".
func ParseHex(hex string) (RGB, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [3]uint32
	switch len(s) {
	case 3:
		for i := range v {
			d, ok := parseHex(s[i : i+1])
			if !ok {
				return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
			}
			v[i] = d * 17
		}
	case 6:
		for i := range v {
			d, ok := parseHex(s[2*i : 2*i+2])
			if !ok {
				return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
			}
			v[i] = d
		}
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	return RGB{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2])}, nil
}

// parseHex decodes a short run of hex digits.
func parseHex(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}
