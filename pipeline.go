package ssd1322

import (
	"encoding/binary"
	"image"

	"github.com/flavioheleno/ssd1322/image4bit"
)

// PixelFormat is the encoding of a source pixel buffer handed to a flush.
type PixelFormat int

const (
	// FormatL8 is one 8-bit luminance byte per pixel.
	FormatL8 PixelFormat = iota
	// FormatRGB565 is one 16-bit little-endian RGB565 value per pixel.
	FormatRGB565
)

func (f PixelFormat) bytesPerPixel() int {
	if f == FormatRGB565 {
		return 2
	}
	return 1
}

func (f PixelFormat) String() string {
	switch f {
	case FormatL8:
		return "L8"
	case FormatRGB565:
		return "RGB565"
	default:
		return "PixelFormat(?)"
	}
}

// writeRAM sends already packed bytes covering the aligned window win.
func (d *Dev) writeRAM(win image.Rectangle, packed []byte) error {
	if err := d.setWindow(win); err != nil {
		return err
	}
	if err := d.bus.command(cmdWriteRAM); err != nil {
		return err
	}
	return d.bus.data(packed)
}

// writeRect packs the aligned window win row by row, sampling each panel
// pixel through at, and sends it as one data burst. On success the frame
// buffer records what the panel now holds.
func (d *Dev) writeRect(win image.Rectangle, at func(x, y int) image4bit.Gray4) error {
	rowBytes := win.Dx() / 2
	buf := d.packed[:rowBytes*win.Dy()]
	for y := win.Min.Y; y < win.Max.Y; y++ {
		off := (y - win.Min.Y) * rowBytes
		image4bit.PackRow(buf[off:off+rowBytes], func(yield func(image4bit.Gray4) bool) {
			for x := win.Min.X; x < win.Max.X; x++ {
				if !yield(at(x, y)) {
					return
				}
			}
		})
	}
	if err := d.writeRAM(win, buf); err != nil {
		return err
	}
	d.remember(win, buf)
	return nil
}

// remember copies packed rows for win, as just written to RAM, into the
// frame buffer and the shown copy used by Draw and Display.
func (d *Dev) remember(win image.Rectangle, packed []byte) {
	if d.shown == nil {
		return
	}
	rowBytes := win.Dx() / 2
	for y := win.Min.Y; y < win.Max.Y; y++ {
		row := packed[(y-win.Min.Y)*rowBytes:][:rowBytes]
		off := d.next.PixOffset(win.Min.X, y)
		copy(d.shown[off:off+rowBytes], row)
		copy(d.next.Pix[off:off+rowBytes], row)
	}
}

// region samples a caller owned pixel buffer that covers area, row major
// with no padding. Pixels outside area read as black.
type region struct {
	area image.Rectangle
	pix  []byte
	f    PixelFormat
}

func newRegion(area image.Rectangle, pix []byte, f PixelFormat) (region, error) {
	area = area.Canon()
	if !area.Empty() {
		// Dx*Dy*bpp may overflow; compare by division.
		bpp := f.bytesPerPixel()
		if area.Dx() > len(pix)/bpp || area.Dy() > len(pix)/(area.Dx()*bpp) {
			return region{}, errorf("%s buffer for %v holds only %d bytes", f, area, len(pix))
		}
	}
	return region{area: area, pix: pix, f: f}, nil
}

func (r region) at(x, y int) image4bit.Gray4 {
	if !(image.Point{X: x, Y: y}.In(r.area)) {
		return image4bit.Gray4{}
	}
	i := (y-r.area.Min.Y)*r.area.Dx() + x - r.area.Min.X
	if r.f == FormatRGB565 {
		return image4bit.FromRGB565(binary.LittleEndian.Uint16(r.pix[2*i:]))
	}
	return image4bit.FromL8(r.pix[i])
}

// writeRegion sends the part of a source buffer that lands on the panel.
func (d *Dev) writeRegion(area image.Rectangle, pix []byte, f PixelFormat) error {
	if d.halted {
		return ErrHalted
	}
	src, err := newRegion(area, pix, f)
	if err != nil {
		return err
	}
	win, ok := d.variant.window(src.area, d.rect)
	if !ok {
		logf("flush %v is off panel", area)
		return nil
	}
	return d.writeRect(win, src.at)
}

// Fill paints the whole panel with one gray level. Only the low 4 bits of
// level are used.
func (d *Dev) Fill(level byte) error {
	if d.halted {
		return ErrHalted
	}
	b := image4bit.Fill(image4bit.Gray4{Y: level})
	for i := range d.packed {
		d.packed[i] = b
	}
	if err := d.writeRAM(d.rect, d.packed); err != nil {
		return err
	}
	d.remember(d.rect, d.packed)
	return nil
}

// FillBlack turns every pixel off.
func (d *Dev) FillBlack() error {
	return d.Fill(0x00)
}

// FillWhite turns every pixel on at full intensity.
func (d *Dev) FillWhite() error {
	return d.Fill(0x0F)
}

// TestPattern shows PatternAt across the whole panel.
func (d *Dev) TestPattern() error {
	if d.halted {
		return ErrHalted
	}
	return d.writeRect(d.rect, PatternAt)
}

// PatternAt is the test pattern: a horizontal ramp through all 16 levels,
// with a white 8x8 block in the top-left corner and a black 8x8 block in
// the bottom-right corner.
func PatternAt(x, y int) image4bit.Gray4 {
	switch {
	case x < 8 && y < 8:
		return image4bit.Gray4{Y: 0x0F}
	case x >= Width-8 && y >= Height-8:
		return image4bit.Gray4{}
	default:
		return image4bit.Gray4{Y: uint8(x / 16)}
	}
}
