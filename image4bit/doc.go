// Package image4bit provides the 4-bit grayscale pixel format of the SSD1322
// display controller and the conversions that feed it.
//
// The SSD1322 uses 4-bit grayscale (16 intensity levels from 0-15). Pixels
// are stored in horizontal nibble packing where each byte contains 2 pixels.
//
// Memory layout example for a 4-pixel row:
//
//	Pixels: 0  1  2  3
//	Values: 5  10 3  12
//	Bytes:  0x5A     0x3C
//	        (0x5A = high nibble: 5, low nibble: A=10)
//	        (0x3C = high nibble: 3, low nibble: C=12)
//
// This package provides:
//
// - Gray4 and Gray4Model, a color type and model for 4-bit grayscale
// - HorizontalNibble, an image.Image with the controller RAM layout
// - FromL8 and FromRGB565, pure conversions from the two source encodings
// - Pack, Unpack and PackRow, the nibble packing used on the wire
//
// Example usage:
//
//	// Pack a row of 8-bit gray samples
//	row := make([]byte, len(samples)/2)
//	image4bit.PackRow(row, func(yield func(image4bit.Gray4) bool) {
//		for _, s := range samples {
//			if !yield(image4bit.FromL8(s)) {
//				return
//			}
//		}
//	})
//
//	// Or draw with the standard library
//	img := image4bit.NewHorizontalNibble(image.Rect(0, 0, 256, 64))
//	draw.Draw(img, img.Bounds(), image.NewUniform(image4bit.Gray4{Y: 15}), image.Point{}, draw.Src)
package image4bit
