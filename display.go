package ssd1322

import (
	"image"
)

// StagingLines is the largest number of scan lines a Display may buffer.
const StagingLines = 16

// ReadyFunc tells the graphics library that a flush has completed and its
// pixel buffer may be reused.
type ReadyFunc func()

// FlushFunc returns a flush handler for a graphics library that renders
// into its own 8-bit grayscale buffer.
//
// The handler writes area from pix (row major, area.Dx() bytes per row) to
// the panel and then calls ready exactly once, whatever the outcome. A nil
// d makes the handler acknowledge without touching the bus. Pair it with
// RoundArea so every area it receives is pixel-pair aligned.
func FlushFunc(d *Dev, ready ReadyFunc) func(area image.Rectangle, pix []byte) error {
	return func(area image.Rectangle, pix []byte) error {
		defer ack(ready)
		if d == nil {
			logf("flush %v without a device", area)
			return nil
		}
		return d.writeRegion(area, pix, FormatL8)
	}
}

// RoundArea widens the horizontal edges of r to even columns and clamps
// them to the panel width. It is meant as the graphics library's rounding
// hook for invalidated areas.
func RoundArea(r image.Rectangle) image.Rectangle {
	r.Min.X &^= 1
	r.Max.X = (r.Max.X + 1) &^ 1
	r.Min.X = max(r.Min.X, 0)
	r.Max.X = min(r.Max.X, Width)
	return r
}

func ack(ready ReadyFunc) {
	if ready != nil {
		ready()
	}
}

// Display is a partial frame buffer living in the device's staging area.
//
// The graphics library renders a band of Lines() full-width scan lines
// into Buffer() using Format(), then calls Flush.
type Display struct {
	dev   *Dev
	lines int
	f     PixelFormat
	buf   []byte
	ready ReadyFunc
}

// NewDisplay carves a buffer of lines full-width scan lines in format f out
// of the staging area.
//
// lines must be in 1..StagingLines. ErrStagingCapacity is returned when the
// buffer would not fit the staging area configured by Opts.StagingBytes.
func (d *Dev) NewDisplay(lines int, f PixelFormat, ready ReadyFunc) (*Display, error) {
	if lines < 1 || lines > StagingLines {
		return nil, errorf("display lines must be in 1..%d, got %d", StagingLines, lines)
	}
	if f != FormatL8 && f != FormatRGB565 {
		return nil, errorf("unsupported pixel format %s", f)
	}
	n := Width * lines * f.bytesPerPixel()
	if n > len(d.staging) {
		return nil, ErrStagingCapacity
	}
	logf("display %d lines %s, %d of %d staging bytes", lines, f, n, len(d.staging))
	return &Display{
		dev:   d,
		lines: lines,
		f:     f,
		buf:   d.staging[:n],
		ready: ready,
	}, nil
}

// Buffer returns the staging memory the graphics library renders into.
// All displays of a device share it.
func (s *Display) Buffer() []byte {
	return s.buf
}

// Format returns the pixel encoding of Buffer.
func (s *Display) Format() PixelFormat {
	return s.f
}

// Lines returns the number of scan lines Buffer holds.
func (s *Display) Lines() int {
	return s.lines
}

// Bounds returns the panel area.
func (s *Display) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// Flush writes area from pix, laid out like Buffer but only area.Dx()
// pixels wide, to the panel and acknowledges the flush exactly once.
//
// Areas that miss the panel are acknowledged without any bus traffic.
func (s *Display) Flush(area image.Rectangle, pix []byte) error {
	defer ack(s.ready)
	if s.dev == nil {
		logf("flush %v without a device", area)
		return nil
	}
	return s.dev.writeRegion(area, pix, s.f)
}
