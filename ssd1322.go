package ssd1322

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"
	"time"

	"github.com/flavioheleno/ssd1322/image4bit"
	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Panel geometry.
const (
	Width  = 256
	Height = 64
)

// Errors
var (
	ErrHalted          = errors.New("ssd1322: halted")
	ErrBufferSize      = errors.New("ssd1322: invalid buffer size")
	ErrStagingCapacity = errors.New("ssd1322: display buffer exceeds staging capacity")
)

var debug = os.Getenv("SSD1322_DEBUG") != ""

func logf(format string, a ...any) {
	if debug {
		log.Printf("ssd1322: "+format, a...)
	}
}

func errorf(format string, a ...any) error {
	return fmt.Errorf("ssd1322: "+format, a...)
}

func wrap(what string, err error) error {
	return fmt.Errorf("ssd1322: %s: %w", what, err)
}

// Opts is the configuration for the SSD1322 display.
//
// The zero value selects VariantStaged at its default clock.
type Opts struct {
	// Variant selects the panel wiring and init table (default: VariantStaged).
	Variant *Variant

	// Freq overrides Variant.Frequency.
	Freq physic.Frequency

	// CS is a GPIO driven chip select. It is held low across a command
	// opcode and its parameters. When nil the SPI port drives CS, which
	// then toggles around each transfer, so opcode and parameters go out
	// as separate transactions; the controller samples D/C per byte and
	// accepts that.
	CS gpio.PinOut

	// RST is the hardware reset line (optional, nil or gpio.INVALID if not
	// wired).
	RST gpio.PinOut

	// StagingBytes caps the buffer shared with NewDisplay (default:
	// Width*StagingLines*2).
	StagingBytes int

	// Clock times the reset pulse (default: real clock).
	Clock clockwork.Clock
}

// Dev is the device handle for the SSD1322 display.
type Dev struct {
	// Communication
	bus *bus
	rst gpio.PinOut // nil when not wired

	variant Variant
	clock   clockwork.Clock

	rect image.Rectangle

	// packed is the scratch area every RAM write is packed into.
	packed []byte
	// staging is shared with the graphics library through Display.
	staging []byte

	// next is lazy initialized on first Draw or SetPixel; shown holds what
	// the panel currently displays from that path.
	next  *image4bit.HorizontalNibble
	shown []byte

	halted bool
}

// NewSPI connects to an SSD1322 on p and initializes it.
//
// The SPI port is configured in Mode0 with 8-bit words at opts.Freq (or the
// variant's default clock). The dc (Data/Command) GPIO pin is required.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	c, err := p.Connect(o.Freq, spi.Mode0, 8)
	if err != nil {
		return nil, wrap("connect", err)
	}
	return newDev(c, dc, o)
}

// New initializes an SSD1322 on an already connected bus, such as the one
// returned by TinyGoConn.
func New(c conn.Conn, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	return newDev(c, dc, o)
}

func (o *Opts) withDefaults() (Opts, error) {
	var out Opts
	if o != nil {
		out = *o
	}
	if out.Variant == nil {
		out.Variant = &VariantStaged
	}
	if err := out.Variant.validate(); err != nil {
		return out, err
	}
	if out.Freq == 0 {
		out.Freq = out.Variant.Frequency
	}
	if out.StagingBytes == 0 {
		out.StagingBytes = Width * StagingLines * 2
	}
	if out.StagingBytes < 0 {
		return out, errorf("staging size must be positive, got %d", out.StagingBytes)
	}
	if out.Clock == nil {
		out.Clock = clockwork.NewRealClock()
	}
	if out.CS == gpio.INVALID {
		out.CS = nil
	}
	if out.RST == gpio.INVALID {
		out.RST = nil
	}
	return out, nil
}

func newDev(c conn.Conn, dc gpio.PinOut, o Opts) (*Dev, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, errors.New("ssd1322: a data/command pin is required")
	}
	d := &Dev{
		bus:     newBus(c, dc, o.CS),
		rst:     o.RST,
		variant: *o.Variant,
		clock:   o.Clock,
		rect:    image.Rect(0, 0, Width, Height),
		packed:  make([]byte, Width*Height/2),
		staging: make([]byte, o.StagingBytes),
	}
	if o.CS != nil {
		if err := o.CS.Out(gpio.High); err != nil {
			return nil, wrap("chip select", err)
		}
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Init resets the controller (if a reset line is wired) and writes the
// variant's init table. It also revives a halted device.
func (d *Dev) Init() error {
	if err := d.Reset(); err != nil {
		return err
	}
	logf("init %s variant, %d commands", d.variant.Name, len(d.variant.Init))
	if err := d.bus.run(d.variant.Init); err != nil {
		return err
	}
	d.halted = false
	return nil
}

// Reset pulses the reset line high, low, high. It does nothing when no reset
// pin is wired.
func (d *Dev) Reset() error {
	if d.rst == nil {
		return nil
	}
	steps := []struct {
		l    gpio.Level
		hold time.Duration
	}{
		{gpio.High, time.Millisecond},
		{gpio.Low, 10 * time.Millisecond},
		{gpio.High, 10 * time.Millisecond},
	}
	for _, s := range steps {
		if err := d.rst.Out(s.l); err != nil {
			return fmt.Errorf("ssd1322: failed to drive RST %s: %w", s.l, err)
		}
		d.clock.Sleep(s.hold)
	}
	return nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image4bit.Gray4Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1322.Dev{%s, %dx%d}", d.variant.Name, d.rect.Dx(), d.rect.Dy())
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.bus.command(cmdSetContrast, contrast)
}

// Invert inverts the display colors (black becomes white and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return ErrHalted
	}
	mode := byte(cmdNormalDisplay)
	if invert {
		mode = cmdInverseDisplay
	}
	return d.bus.command(mode)
}

// Halt powers off the display.
// After calling Halt, the display will not respond to further commands
// until Init is called again.
func (d *Dev) Halt() error {
	d.halted = true
	return d.bus.command(cmdDisplayOff)
}

// SetWindow declares the RAM area the next data burst fills.
//
// r is clamped to the panel and widened to whole column units. A rectangle
// that misses the panel entirely is ignored.
func (d *Dev) SetWindow(r image.Rectangle) error {
	if d.halted {
		return ErrHalted
	}
	win, ok := d.variant.window(r, d.rect)
	if !ok {
		logf("window %v is off panel", r)
		return nil
	}
	return d.setWindow(win)
}

func (d *Dev) setWindow(win image.Rectangle) error {
	start, end := d.variant.columns(win)
	if err := d.bus.command(cmdSetColumnAddress, start, end); err != nil {
		return err
	}
	return d.bus.command(cmdSetRowAddress, byte(win.Min.Y), byte(win.Max.Y-1))
}

// Write writes raw pixel data to the display in HorizontalNibble format.
// The data must be exactly Width * Height / 2 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if len(pixels) != len(d.packed) {
		return 0, ErrBufferSize
	}
	if err := d.writeRAM(d.rect, pixels); err != nil {
		return 0, err
	}
	d.remember(d.rect, pixels)
	return len(pixels), nil
}

// Draw draws an image onto the display with differential update optimization.
//
// It implements display.Drawer: src is aligned at sp and drawn into dst, then
// only the smallest changed rectangle is sent to the panel.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: full frame already in the controller layout.
	if img, ok := src.(*image4bit.HorizontalNibble); ok && dst == d.rect && img.Rect == d.rect && sp == (image.Point{}) {
		_, err := d.Write(img.Pix)
		return err
	}

	d.lazyNext()
	draw.Src.Draw(d.next, dst, src, sp)
	return d.flushNext()
}

func (d *Dev) lazyNext() {
	if d.next != nil {
		return
	}
	d.next = image4bit.NewHorizontalNibble(d.rect)
	// RAM content is unknown until the first write; force a full update.
	d.shown = make([]byte, len(d.next.Pix))
	for i := range d.shown {
		d.shown[i] = ^d.next.Pix[i]
	}
}

// flushNext sends the part of next that differs from what was last shown.
func (d *Dev) flushNext() error {
	changed, ok := d.diff()
	if !ok {
		return nil
	}
	win, _ := d.variant.window(changed, d.rect)
	return d.writeRect(win, d.next.Gray4At)
}

// diff returns the bounding box of the pixel pairs that differ between
// next and shown.
func (d *Dev) diff() (image.Rectangle, bool) {
	stride := d.next.Stride
	minCol, maxCol := stride, -1
	minRow, maxRow := d.rect.Dy(), -1
	for y := 0; y < d.rect.Dy(); y++ {
		row := d.next.Pix[y*stride : (y+1)*stride]
		old := d.shown[y*stride : (y+1)*stride]
		for x := range row {
			if row[x] == old[x] {
				continue
			}
			minCol = min(minCol, x)
			maxCol = max(maxCol, x)
			minRow = min(minRow, y)
			maxRow = y
		}
	}
	if maxRow < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minCol*2, minRow, (maxCol+1)*2, maxRow+1), true
}

// Interface checks
var (
	_ display.Drawer = (*Dev)(nil)
)
