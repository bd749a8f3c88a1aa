package ssd1322

import (
	"image"

	"periph.io/x/conn/v3/physic"
)

// Variant describes how a particular panel module is wired to the
// controller: the column addressing granularity, where the panel starts in
// the 480 pixel wide display RAM, and the power-up register table.
//
// Adding a panel module is a matter of declaring a new Variant value.
type Variant struct {
	// Name is used in String() output.
	Name string

	// ColumnQuantum is the number of pixels covered by one column address
	// unit. Must be 2 or 4.
	ColumnQuantum int

	// ColumnOffset is added to every column address, in column units.
	ColumnOffset int

	// Frequency is the default SPI clock when Opts.Freq is zero.
	Frequency physic.Frequency

	// Init is written in order, once, by Dev.Init.
	Init []Command
}

// VariantDirect matches modules addressed in pixel pairs with no column
// offset, usually paired with a caller owned L8 frame buffer and RoundArea.
var VariantDirect = Variant{
	Name:          "direct",
	ColumnQuantum: 2,
	ColumnOffset:  0,
	Frequency:     8 * physic.MegaHertz,
	Init: []Command{
		cmd(cmdDisplayOff),
		cmd(cmdSetCommandLock, commandLockUnlocked),
		cmd(cmdClockDivider, 0x91),
		cmd(cmdSetMuxRatio, muxRatio),
		cmd(cmdSetDisplayOffset, 0x00),
		cmd(cmdSetStartLine, 0x00),
		cmd(cmdSetRemap, remapHorizontalNib, remapDualCOM),
		cmd(cmdSetGPIO, gpioDisabled),
		cmd(cmdSetContrast, defaultContrast),
		cmd(cmdMasterCurrent, defaultMasterCurrent),
		cmd(cmdPhaseLength, 0xE2),
		cmd(cmdSetVCOMH, 0x0F),
		cmd(cmdPrechargeVoltage, 0x1F),
		cmd(cmdDisplayEnhanceA, 0xA0, 0xB5, 0x55),
		cmd(cmdEntireDisplayOff),
		cmd(cmdNormalDisplay),
		cmd(cmdDisplayOn),
	},
}

// VariantStaged matches the common 256x64 modules that sit centered in the
// controller RAM: 4 pixels per column address and an offset of 28 columns
// ((480-256)/2/4). It is the variant used with NewDisplay.
var VariantStaged = Variant{
	Name:          "staged",
	ColumnQuantum: 4,
	ColumnOffset:  0x1C,
	Frequency:     16 * physic.MegaHertz,
	Init: []Command{
		cmd(cmdSetCommandLock, commandLockUnlocked),
		cmd(cmdDisplayOff),
		cmd(cmdClockDivider, 0x91),
		cmd(cmdSetMuxRatio, muxRatio),
		cmd(cmdSetDisplayOffset, 0x00),
		cmd(cmdSetStartLine, 0x00),
		cmd(cmdSetRemap, remapHorizontalNib, remapDualCOM),
		cmd(cmdSetGPIO, gpioDisabled),
		cmd(cmdFunctionSelect, functionInternalVDD),
		cmd(cmdDisplayEnhanceA, 0xA0, 0xFD),
		cmd(cmdSetContrast, defaultContrast),
		cmd(cmdMasterCurrent, defaultMasterCurrent),
		cmd(cmdPhaseLength, 0xE2),
		cmd(cmdDisplayEnhanceB, 0x82, 0x20),
		cmd(cmdPrechargeVoltage, 0x1F),
		cmd(cmdSecondPrecharge, 0x08),
		cmd(cmdSetVCOMH, 0x07),
		cmd(cmdDefaultGrayTable),
		cmd(cmdNormalDisplay),
		cmd(cmdExitPartial),
		cmd(cmdDisplayOn),
	},
}

// window clamps r into bounds and widens its horizontal edges outward to
// whole column units. It reports false when nothing of r is on the panel.
func (v *Variant) window(r, bounds image.Rectangle) (image.Rectangle, bool) {
	r = r.Canon().Intersect(bounds)
	if r.Empty() {
		return image.Rectangle{}, false
	}
	q := v.ColumnQuantum
	r.Min.X -= (r.Min.X - bounds.Min.X) % q
	r.Max.X += (q - (r.Max.X-bounds.Min.X)%q) % q
	if r.Max.X > bounds.Max.X {
		r.Max.X = bounds.Max.X
	}
	return r, true
}

// columns returns the controller column addresses of an aligned window.
func (v *Variant) columns(win image.Rectangle) (start, end byte) {
	q := v.ColumnQuantum
	return byte(win.Min.X/q + v.ColumnOffset), byte((win.Max.X-1)/q + v.ColumnOffset)
}

func (v *Variant) validate() error {
	if v.ColumnQuantum != 2 && v.ColumnQuantum != 4 {
		return errorf("column quantum must be 2 or 4, got %d", v.ColumnQuantum)
	}
	if v.ColumnOffset < 0 || v.ColumnOffset+Width/v.ColumnQuantum > 0x80 {
		return errorf("column offset %d does not fit the column address range", v.ColumnOffset)
	}
	return nil
}
