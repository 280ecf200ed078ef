package circle

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// captionMargin is the distance of the caption baseline from the bottom-left
// corner, in pixels.
const captionMargin = 4

// Caption returns a label such as "Midpoint Octant r=190".
func Caption(s Strategy, c Circle) string {
	title := cases.Title(language.English).String(s.Description())
	return fmt.Sprintf("%s r=%d", title, c.Radius)
}

// DrawCaption writes text in the bottom-left corner with a 7x13 bitmap face.
// Glyphs are drawn over the existing pixels.
func (p *Pixmap) DrawCaption(text string, c RGB) {
	d := font.Drawer{
		Dst:  p,
		Src:  image.NewUniform(c.Color()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(captionMargin, p.height-captionMargin),
	}
	d.DrawString(text)
}
