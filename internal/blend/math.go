// Package blend implements the compositing used by the circle pixmap.
//
// All values are premultiplied alpha bytes. Division by 255 uses Blinn's
// shift formula, which rounds exactly for every product of two bytes, so
// compositing a partially transparent write over an opaque background is
// reproducible bit for bit.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - Jim Blinn, "Three Wrongs Make a Right" (1995)
package blend

// div255 divides x by 255 with rounding, exactly, without division.
//
// Formula: ((x + 128) + ((x + 128) >> 8)) >> 8
//
// Valid for x <= 255*255.
func div255(x uint16) uint16 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
