package image4bit

import "iter"

// Pack stores two pixels in one byte, left in the high nibble.
func Pack(left, right Gray4) byte {
	return (left.Y&0x0F)<<4 | right.Y&0x0F
}

// Unpack splits a packed byte back into its left and right pixels.
func Unpack(b byte) (left, right Gray4) {
	return Gray4{Y: b >> 4}, Gray4{Y: b & 0x0F}
}

// PackRow packs the pixels produced by seq into dst, two per byte, and
// returns the number of bytes written.
//
// An odd trailing pixel is paired with black. Packing stops when dst is full.
func PackRow(dst []byte, seq iter.Seq[Gray4]) int {
	n := 0
	high := true
	for g := range seq {
		if n == len(dst) {
			break
		}
		if high {
			dst[n] = (g.Y & 0x0F) << 4
		} else {
			dst[n] |= g.Y & 0x0F
			n++
		}
		high = !high
	}
	if !high {
		n++
	}
	return n
}

// Fill returns the byte that paints both pixels of a pair with g.
func Fill(g Gray4) byte {
	return Pack(g, g)
}
