package ssd1322

import (
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// defaultMaxTx is used when the connection does not report conn.Limits.
const defaultMaxTx = 4096

// bus frames every transfer in its own chip select bracket and drives the
// data/command line.
type bus struct {
	c     conn.Conn
	dc    gpio.PinOut
	cs    gpio.PinOut // nil when the SPI port drives CS itself
	maxTx int
	op    [1]byte
}

func newBus(c conn.Conn, dc, cs gpio.PinOut) *bus {
	b := &bus{c: c, dc: dc, cs: cs, maxTx: defaultMaxTx}
	if l, ok := c.(conn.Limits); ok && l.MaxTxSize() > 0 {
		b.maxTx = l.MaxTxSize()
	}
	return b
}

func (b *bus) begin() error {
	if b.cs == nil {
		return nil
	}
	return b.cs.Out(gpio.Low)
}

func (b *bus) end() error {
	if b.cs == nil {
		return nil
	}
	return b.cs.Out(gpio.High)
}

// command sends op with D/C low, then params (if any) with D/C high.
func (b *bus) command(op byte, params ...byte) (err error) {
	if err = b.begin(); err != nil {
		return wrap("chip select", err)
	}
	defer func() {
		if err2 := b.end(); err == nil && err2 != nil {
			err = wrap("chip select", err2)
		}
	}()

	if err = b.dc.Out(gpio.Low); err != nil {
		return wrap("data/command", err)
	}
	b.op[0] = op
	if err = b.c.Tx(b.op[:], nil); err != nil {
		return wrap("command", err)
	}
	if len(params) == 0 {
		return nil
	}
	if err = b.dc.Out(gpio.High); err != nil {
		return wrap("data/command", err)
	}
	return b.tx(params)
}

// data sends p with D/C high.
func (b *bus) data(p []byte) (err error) {
	if len(p) == 0 {
		return nil
	}
	if err = b.begin(); err != nil {
		return wrap("chip select", err)
	}
	defer func() {
		if err2 := b.end(); err == nil && err2 != nil {
			err = wrap("chip select", err2)
		}
	}()

	if err = b.dc.Out(gpio.High); err != nil {
		return wrap("data/command", err)
	}
	return b.tx(p)
}

// tx writes p in chunks the connection can accept.
func (b *bus) tx(p []byte) error {
	for len(p) > 0 {
		n := min(len(p), b.maxTx)
		if err := b.c.Tx(p[:n], nil); err != nil {
			return wrap("data", err)
		}
		p = p[n:]
	}
	return nil
}

func (b *bus) run(cmds []Command) error {
	for _, c := range cmds {
		if err := b.command(c.Op, c.Params...); err != nil {
			return err
		}
	}
	return nil
}
