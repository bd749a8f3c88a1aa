package ssd1322

import (
	"bytes"
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// limitedWire reports a transfer size limit like a real SPI port does.
type limitedWire struct {
	*wire
	max int
}

func (l *limitedWire) MaxTxSize() int {
	return l.max
}

func TestBusCommandFraming(t *testing.T) {
	dc := &gpiotest.Pin{N: "DC"}
	w := &wire{dc: dc}
	b := newBus(w, dc, nil)

	if err := b.command(cmdSetColumnAddress, 0x1C, 0x5B); err != nil {
		t.Fatal(err)
	}
	if err := b.command(cmdDisplayOn); err != nil {
		t.Fatal(err)
	}

	want := []frame{
		{gpio.Low, []byte{cmdSetColumnAddress}},
		{gpio.High, []byte{0x1C, 0x5B}},
		{gpio.Low, []byte{cmdDisplayOn}},
	}
	if len(w.frames) != len(want) {
		t.Fatalf("frames = %v, want %v", w.frames, want)
	}
	for i := range want {
		if w.frames[i].dc != want[i].dc || !bytes.Equal(w.frames[i].data, want[i].data) {
			t.Errorf("frame %d = %v, want %v", i, w.frames[i], want[i])
		}
	}
}

func TestBusDataEmpty(t *testing.T) {
	dc := &gpiotest.Pin{N: "DC"}
	cs := &gpiotest.Pin{N: "CS", L: gpio.High}
	w := &wire{dc: dc, cs: cs}
	b := newBus(w, dc, cs)
	if err := b.data(nil); err != nil {
		t.Fatal(err)
	}
	if len(w.frames) != 0 {
		t.Errorf("data(nil) sent %v", w.frames)
	}
}

func TestBusChipSelect(t *testing.T) {
	dc := &gpiotest.Pin{N: "DC"}
	cs := &gpiotest.Pin{N: "CS"}
	w := &wire{dc: dc, cs: cs}
	d, err := New(w, dc, &Opts{CS: cs})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := d.FillWhite(); err != nil {
		t.Fatalf("FillWhite() error = %v", err)
	}
	if got := level(cs); got != gpio.High {
		t.Errorf("CS = %s after transfers, want High", got)
	}
}

func TestBusReleasesChipSelectOnError(t *testing.T) {
	dc := &gpiotest.Pin{N: "DC"}
	cs := &gpiotest.Pin{N: "CS", L: gpio.High}
	boom := errors.New("boom")
	w := &wire{dc: dc, cs: cs, fail: boom}
	b := newBus(w, dc, cs)

	tests := map[string]func() error{
		"command": func() error { return b.command(cmdSetContrast, 1) },
		"data":    func() error { return b.data([]byte{1, 2, 3}) },
	}
	for name, f := range tests {
		err := f()
		if !errors.Is(err, boom) {
			t.Errorf("%s() error = %v, want %v", name, err, boom)
		}
		if got := level(cs); got != gpio.High {
			t.Errorf("%s() left CS %s", name, got)
		}
	}
}

func TestBusChunksData(t *testing.T) {
	dc := &gpiotest.Pin{N: "DC"}
	w := &limitedWire{wire: &wire{dc: dc}, max: 100}
	b := newBus(w, dc, nil)
	if b.maxTx != 100 {
		t.Fatalf("maxTx = %d, want 100", b.maxTx)
	}

	p := bytes.Repeat([]byte{0xA5}, 1024)
	if err := b.data(p); err != nil {
		t.Fatal(err)
	}
	if len(w.frames) != 11 {
		t.Errorf("data() used %d transfers, want 11", len(w.frames))
	}
	var got []byte
	for _, f := range w.frames {
		if len(f.data) > 100 {
			t.Errorf("transfer of %d bytes exceeds the limit", len(f.data))
		}
		got = append(got, f.data...)
	}
	if !bytes.Equal(got, p) {
		t.Error("chunked data differs from input")
	}
}

func TestBusDefaultLimit(t *testing.T) {
	dc := &gpiotest.Pin{N: "DC"}
	for _, limit := range []int{0, -1} {
		b := newBus(&limitedWire{wire: &wire{dc: dc}, max: limit}, dc, nil)
		if b.maxTx != defaultMaxTx {
			t.Errorf("maxTx with limit %d = %d, want %d", limit, b.maxTx, defaultMaxTx)
		}
	}
}
