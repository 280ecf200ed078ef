package image

import (
	"errors"
	"image/color"
	"testing"
)

func TestUpscale(t *testing.T) {
	src := testImage()
	dst, err := Upscale(src, 3)
	if err != nil {
		t.Fatalf("Upscale: %v", err)
	}
	if dst.Bounds().Dx() != 24 || dst.Bounds().Dy() != 18 {
		t.Fatalf("bounds = %v, want 24x18", dst.Bounds())
	}
	red := color.RGBA{R: 255, A: 255}
	for y := 6; y < 9; y++ {
		for x := 9; x < 12; x++ {
			if got := dst.RGBAAt(x, y); got != red {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, red)
			}
		}
	}
	if got := dst.RGBAAt(8, 6); got == red {
		t.Errorf("pixel (8,6) is red, block leaked")
	}
}

func TestUpscale_Identity(t *testing.T) {
	src := testImage()
	dst, err := Upscale(src, 1)
	if err != nil {
		t.Fatalf("Upscale: %v", err)
	}
	for i := range src.Pix {
		if src.Pix[i] != dst.Pix[i] {
			t.Fatalf("Upscale(1) changed byte %d", i)
		}
	}
}

func TestUpscale_Invalid(t *testing.T) {
	for _, f := range []int{0, -2} {
		if _, err := Upscale(testImage(), f); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("Upscale(%d) error = %v, want ErrInvalidScale", f, err)
		}
	}
}
