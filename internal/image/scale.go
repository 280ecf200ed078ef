package image

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ErrInvalidScale is returned for scale factors below 1.
var ErrInvalidScale = errors.New("image: invalid scale factor")

// Upscale enlarges src by an integer factor with nearest-neighbour sampling,
// so every source pixel becomes a factor×factor block and gaps in a traced
// outline stay visible.
func Upscale(src image.Image, factor int) (*image.RGBA, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, factor)
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}
