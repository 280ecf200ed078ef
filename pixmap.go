package circle

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/circle/internal/blend"
	intImage "github.com/gogpu/circle/internal/image"
)

// Pixmap is an in-memory PixelSink.
//
// Pixels are stored as premultiplied RGBA, 4 bytes per pixel, and every
// SetPixel composites the write source-over what is already there.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// Compile-time checks.
var (
	_ PixelSink  = (*Pixmap)(nil)
	_ draw.Image = (*Pixmap)(nil)
)

// NewPixmap creates a transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw premultiplied RGBA bytes.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Clear fills the pixmap with an opaque color.
func (p *Pixmap) Clear(c RGB) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = 255
	}
}

// SetPixel composites c with the given alpha over the pixel at (x, y).
// Writes outside the pixmap are silently dropped.
func (p *Pixmap) SetPixel(x, y int, c RGB, alpha uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	d := p.data[i : i+4 : i+4]
	sr, sg, sb, sa := blend.Premultiply(c.R, c.G, c.B, alpha)
	d[0], d[1], d[2], d[3] = blend.Over(sr, sg, sb, sa, d[0], d[1], d[2], d[3])
}

// RGBAAt returns the premultiplied color at (x, y), transparent outside.
func (p *Pixmap) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// Set implements draw.Image. Unlike SetPixel it replaces the pixel.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	i := (y*p.width + x) * 4
	d := p.data[i : i+4 : i+4]
	d[0], d[1], d[2], d[3] = blend.Source(rgba.R, rgba.G, rgba.B, rgba.A, d[0], d[1], d[2], d[3])
}

// ToImage copies the pixmap into an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.Bounds())
	copy(img.Pix, p.data)
	return img
}

// Scale returns a copy enlarged by an integer factor, one block per pixel.
func (p *Pixmap) Scale(factor int) (*image.RGBA, error) {
	return intImage.Upscale(p.ToImage(), factor)
}

// Save encodes the pixmap to path. The extension selects PNG, JPEG, BMP
// or TIFF.
func (p *Pixmap) Save(path string) error {
	return SaveImage(path, p.ToImage())
}

// SaveImage encodes img to path, choosing the encoder from the extension.
func SaveImage(path string, img image.Image) error {
	if err := intImage.Save(path, img); err != nil {
		return err
	}
	b := img.Bounds()
	Logger().Info("image saved", "path", path, "width", b.Dx(), "height", b.Dy())
	return nil
}
