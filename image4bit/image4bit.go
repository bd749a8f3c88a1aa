package image4bit

import (
	"image"
	"image/color"
)

// Gray4 is a 16 level gray. The high nibble of Y is ignored.
type Gray4 struct {
	Y uint8
}

// RGBA implements color.Color. Each level maps onto the 16-bit range by
// nibble replication, so 0xF becomes 0xFFFF.
func (c Gray4) RGBA() (r, g, b, a uint32) {
	y := uint32(c.Y&0x0F) * 0x1111
	return y, y, y, 0xFFFF
}

// Gray4Model converts any color to Gray4 with the luma weights used for
// RGB565 sources.
var Gray4Model = color.ModelFunc(func(c color.Color) color.Color {
	if g, ok := c.(Gray4); ok {
		return g
	}
	r, g, b, _ := c.RGBA()
	return Gray4{Y: Luma(uint8(r>>8), uint8(g>>8), uint8(b>>8)) >> 4}
})

// HorizontalNibble is an in-memory image in the SSD1322 RAM layout: each
// byte holds two horizontally adjacent pixels, the left one in the high
// nibble.
type HorizontalNibble struct {
	// Pix holds the packed pixels. The pair starting at (x, y), x even
	// relative to Rect.Min.X, is Pix[(y-Rect.Min.Y)*Stride+(x-Rect.Min.X)/2].
	Pix []byte
	// Stride is the byte distance between vertically adjacent pixels.
	Stride int
	Rect   image.Rectangle
}

// NewHorizontalNibble returns a black image with bounds r. It panics when
// r has an odd width.
func NewHorizontalNibble(r image.Rectangle) *HorizontalNibble {
	if r.Empty() {
		return &HorizontalNibble{Rect: r}
	}
	if r.Dx()&1 != 0 {
		panic("image4bit: width must be even")
	}
	return &HorizontalNibble{
		Pix:    make([]byte, r.Dx()/2*r.Dy()),
		Stride: r.Dx() / 2,
		Rect:   r,
	}
}

func (p *HorizontalNibble) ColorModel() color.Model { return Gray4Model }

func (p *HorizontalNibble) Bounds() image.Rectangle { return p.Rect }

func (p *HorizontalNibble) At(x, y int) color.Color {
	return p.Gray4At(x, y)
}

// Gray4At returns the pixel at (x, y), or black outside the bounds.
func (p *HorizontalNibble) Gray4At(x, y int) Gray4 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Gray4{}
	}
	left, right := Unpack(p.Pix[p.PixOffset(x, y)])
	if p.odd(x) {
		return right
	}
	return left
}

func (p *HorizontalNibble) Set(x, y int, c color.Color) {
	p.SetGray4(x, y, Gray4Model.Convert(c).(Gray4))
}

// SetGray4 stores c at (x, y) without going through the color model.
func (p *HorizontalNibble) SetGray4(x, y int, c Gray4) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	left, right := Unpack(p.Pix[i])
	if p.odd(x) {
		right = c
	} else {
		left = c
	}
	p.Pix[i] = Pack(left, right)
}

// PixOffset returns the index of the byte holding the pixel at (x, y).
func (p *HorizontalNibble) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)/2
}

// Row returns the packed bytes of row y between columns x0 (inclusive) and
// x1 (exclusive). Both must fall on a pair boundary. The slice aliases Pix.
func (p *HorizontalNibble) Row(y, x0, x1 int) []byte {
	i := p.PixOffset(x0, y)
	return p.Pix[i : i+(x1-x0)/2]
}

// SubImage returns the part of p visible through r, sharing pixels with p.
// r is widened to pair boundaries so the result keeps the packed layout.
func (p *HorizontalNibble) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &HorizontalNibble{}
	}
	r.Min.X -= (r.Min.X - p.Rect.Min.X) & 1
	r.Max.X += (r.Max.X - p.Rect.Min.X) & 1
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &HorizontalNibble{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}

// Opaque reports true; Gray4 has no alpha.
func (p *HorizontalNibble) Opaque() bool { return true }

// odd reports whether column x is the right pixel of its pair.
func (p *HorizontalNibble) odd(x int) bool {
	return (x-p.Rect.Min.X)&1 != 0
}
