package circle

import (
	"errors"
	"image/color"
	"testing"
)

func TestRGB_Color(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGB
		wantR, wantG, wantB, wantA uint32
	}{
		{"black", Black, 0, 0, 0, 65535},
		{"white", White, 65535, 65535, 65535, 65535},
		{"red", Red, 65535, 0, 0, 65535},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.Color().RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestRGB_WithAlpha(t *testing.T) {
	got := Red.WithAlpha(100)
	if got != (color.NRGBA{R: 255, A: 100}) {
		t.Errorf("WithAlpha(100) = %v", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"ff0000", Red},
		{"#FF0000", Red},
		{"fff", White},
		{"#0f0", Green},
		{"1a2B3c", RGB{0x1a, 0x2b, 0x3c}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "ff00", "gg0000", "ff00000", "#12345z"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestRGB_String(t *testing.T) {
	for _, c := range []RGB{Black, White, Red, {0x1a, 0x2b, 0x3c}} {
		got, err := ParseHex(c.String())
		if err != nil || got != c {
			t.Errorf("ParseHex(%q) = %v, %v; want %v", c.String(), got, err, c)
		}
	}
}
