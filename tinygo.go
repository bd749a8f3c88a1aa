package ssd1322

import (
	"errors"
	"image/color"

	"github.com/flavioheleno/ssd1322/image4bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

// TinyGoConn adapts a TinyGo SPI bus (machine.SPI or any drivers.SPI) to
// the connection New expects. The bus must already be configured.
func TinyGoConn(bus drivers.SPI) conn.Conn {
	return &tinyConn{bus: bus}
}

type tinyConn struct {
	bus drivers.SPI
}

func (t *tinyConn) String() string {
	return "tinygo-spi"
}

func (t *tinyConn) Tx(w, r []byte) error {
	return t.bus.Tx(w, r)
}

func (t *tinyConn) Duplex() conn.Duplex {
	return conn.Full
}

// TinyGoPin adapts an output pin setter, such as machine.Pin.Set, to the
// gpio.PinOut used for the data/command, chip select and reset lines.
func TinyGoPin(name string, set func(high bool)) gpio.PinOut {
	return &tinyPin{name: name, set: set}
}

type tinyPin struct {
	name string
	set  func(high bool)
}

func (p *tinyPin) String() string { return p.name }
func (p *tinyPin) Name() string { return p.name }
func (p *tinyPin) Number() int { return -1 }
func (p *tinyPin) Function() string { return "Out" }
func (p *tinyPin) Halt() error { return nil }

func (p *tinyPin) Out(l gpio.Level) error {
	p.set(bool(l))
	return nil
}

func (p *tinyPin) PWM(gpio.Duty, physic.Frequency) error {
	return errors.New("ssd1322: PWM is not supported on " + p.name)
}

// Size returns the panel size in pixels.
func (d *Dev) Size() (x, y int16) {
	return Width, Height
}

// SetPixel modifies the frame buffer drawn by Display. Out of range
// coordinates are ignored.
func (d *Dev) SetPixel(x, y int16, c color.RGBA) {
	d.lazyNext()
	d.next.SetGray4(int(x), int(y), image4bit.Gray4{Y: image4bit.Luma(c.R, c.G, c.B) >> 4})
}

// Display sends the pixels changed by SetPixel since the last update.
func (d *Dev) Display() error {
	if d.halted {
		return ErrHalted
	}
	d.lazyNext()
	return d.flushNext()
}

// Image returns the frame buffer shared by Draw, SetPixel and Display.
// Changes made to it are sent by the next Display call.
func (d *Dev) Image() *image4bit.HorizontalNibble {
	d.lazyNext()
	return d.next
}

var _ drivers.Displayer = (*Dev)(nil)
