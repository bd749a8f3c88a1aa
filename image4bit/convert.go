package image4bit

import (
	"math/bits"

	"tinygo.org/x/drivers/pixel"
)

// Luma weights, scaled by 256: 0.30 R + 0.59 G + 0.11 B.
const (
	lumaR = 77
	lumaG = 150
	lumaB = 29
)

// FromL8 converts an 8-bit gray sample to Gray4 by keeping its high nibble.
func FromL8(y uint8) Gray4 {
	return Gray4{Y: y >> 4}
}

// FromRGB565 converts a 5-6-5 RGB value (red in the top bits) to Gray4.
//
// Each channel is widened to 8 bits by replicating its most significant bits
// into the low bits, so 0x1F and 0x3F map to 0xFF. The top 4 bits of the
// weighted luma become the gray level.
func FromRGB565(v uint16) Gray4 {
	// RGB565BE holds the byte swapped value of a 5-6-5 word.
	c := pixel.RGB565BE(bits.ReverseBytes16(v)).RGBA()
	return Gray4{Y: Luma(c.R, c.G, c.B) >> 4}
}

// Luma returns the integer luma of an 8-bit RGB triple.
func Luma(r, g, b uint8) uint8 {
	return uint8((lumaR*uint32(r) + lumaG*uint32(g) + lumaB*uint32(b)) >> 8)
}
