// Package ssd1322 controls a 256x64 SSD1322 OLED display via SPI.
//
// The SSD1322 is a 4-bit grayscale OLED controller with a 480x128 pixel RAM.
// This driver talks to it over 4-wire SPI with a separate data/command line
// and hands it pixels from three kinds of callers:
//
//   - periph.io code, through the display.Drawer interface (Draw)
//   - TinyGo code, through the drivers.Displayer interface (SetPixel, Display)
//   - an external graphics library that renders into its own buffer or into
//     the driver's staging buffer (FlushFunc, RoundArea, NewDisplay)
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select, a GPIO (Opts.CS), or GND
//	RES         → Optional: GPIO for hardware reset (Opts.RST)
//
// # Variants
//
// Panel modules differ in how many pixels one column address covers and
// where the panel sits in the controller RAM. VariantStaged (4 pixels per
// column, offset 28) fits the common centered 256x64 modules; VariantDirect
// (2 pixels per column, no offset) fits modules wired from column 0. Any
// rectangle sent to the panel is clamped to it and widened to whole column
// units; pixels added by the widening are sent black.
//
// # Basic Usage
//
//	host.Init()
//	b, _ := spireg.Open("")
//	dev, _ := ssd1322.NewSPI(b, gpioreg.ByName("GPIO25"), &ssd1322.Opts{
//		RST: gpioreg.ByName("GPIO24"),
//	})
//	defer dev.Halt()
//
//	img := image4bit.NewHorizontalNibble(dev.Bounds())
//	// ... draw into img ...
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// Draw only sends the smallest rectangle that changed since the previous
// Draw. Write sends a raw full frame, and Fill, FillBlack, FillWhite and
// TestPattern paint the whole panel.
//
// # Graphics Library Integration
//
// A library that renders 8-bit grayscale into its own buffer uses FlushFunc
// as its flush handler and RoundArea as its invalidation rounding hook:
//
//	flush := ssd1322.FlushFunc(dev, lib.FlushReady)
//	lib.OnRound(ssd1322.RoundArea)
//	lib.OnFlush(flush)
//
// A library that wants the driver to own the buffer asks for a Display of
// up to StagingLines scan lines, in FormatL8 or FormatRGB565:
//
//	s, err := dev.NewDisplay(16, ssd1322.FormatRGB565, lib.FlushReady)
//	lib.SetBuffer(s.Buffer(), s.Lines())
//	lib.OnFlush(s.Flush)
//
// Both flush paths call the ready callback exactly once per flush, even
// when the area is off panel or the write fails.
//
// # TinyGo
//
// On microcontrollers, wrap machine.SPI with TinyGoConn and the pins with
// TinyGoPin, then pass them to New:
//
//	dc := machine.D9
//	dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
//	dev, err := ssd1322.New(ssd1322.TinyGoConn(machine.SPI0), ssd1322.TinyGoPin("D9", dc.Set), nil)
//
// # Debugging
//
// Set the SSD1322_DEBUG environment variable to log init, skipped windows
// and display allocation through the standard logger.
//
// # Datasheet
//
// https://www.displayfuture.com/Display/datasheet/controller/SSD1322.pdf
package ssd1322
