// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uc1701

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/GermanBionicSystems/lcd132/framebuf"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
)

const (
	_SETLOWCOLUMN     = 0x00
	_SETHIGHCOLUMN    = 0x10
	_POWERBOOSTER     = 0x2C
	_POWERREGULATOR   = 0x2E
	_POWERFOLLOWER    = 0x2F
	_SETSTARTLINE     = 0x40
	_SETCONTRAST      = 0x81
	_SETSEGMENTREMAP  = 0xA1
	_SETBIAS9         = 0xA2
	_NORMALDISPLAY    = 0xA6
	_INVERTDISPLAY    = 0xA7
	_DISPLAYOFF       = 0xAE
	_DISPLAYON        = 0xAF
	_PAGESTARTADDRESS = 0xB0
)

// initSequence was captured on the reference board right after reset.
var initSequence = []byte{
	_SETBIAS9,
	_SETSEGMENTREMAP,
	0x60,
	_SETSTARTLINE | 5,
	_SETLOWCOLUMN | 1,
	_POWERBOOSTER,
	_POWERREGULATOR,
	_POWERFOLLOWER,
	0x58, 0x08, 0x00, 0x00,
	_SETLOWCOLUMN, _DISPLAYON, _SETSTARTLINE, _PAGESTARTADDRESS | 1, _SETHIGHCOLUMN, 0x00,
	_SETLOWCOLUMN, _DISPLAYON, _SETSTARTLINE, _PAGESTARTADDRESS | 2, _SETHIGHCOLUMN, 0x00,
	_SETLOWCOLUMN, _DISPLAYON, _SETSTARTLINE, _PAGESTARTADDRESS | 3, _SETHIGHCOLUMN, 0x00,
}

// initDelay returns the wait after sending c during initialization. The
// power circuits need time to stabilize.
func initDelay(c byte) time.Duration {
	switch c {
	case _POWERBOOSTER, _POWERREGULATOR, _POWERFOLLOWER:
		return 100 * time.Millisecond
	default:
		return time.Millisecond
	}
}

// sleep is overridden in tests.
var sleep = time.Sleep

// DefaultOpts is the reference 132x48 panel.
var DefaultOpts = Opts{
	W:         framebuf.LCDWidth,
	H:         framebuf.LCDHeight,
	RAMPages:  8,
	RAMWidth:  132,
	ResetHold: 10 * time.Millisecond,
	ResetWait: 2 * time.Millisecond,
}

// Opts defines the options for the device.
type Opts struct {
	W int
	H int
	// RAMPages is the number of pages of display RAM cleared on
	// initialization, including the ones not visible on the panel.
	RAMPages int
	// RAMWidth is the number of columns cleared in each RAM page.
	RAMWidth int
	// ResetHold is how long RST is held low.
	ResetHold time.Duration
	// ResetWait is the wait after RST is released.
	ResetWait time.Duration
}

// Dev is an open handle to the display controller.
type Dev struct {
	t   Transport
	rst gpio.PinOut

	rect image.Rectangle

	// buffer is what the controller RAM is known to contain for the visible
	// pages.
	buffer []byte
	// next is lazy initialized on first Draw() with an image that is not a
	// framebuf.Buffer of the panel size.
	next *framebuf.Buffer
	// full forces the next draw to send everything.
	full   bool
	halted bool
}

// New resets the controller, sends the initialization sequence and clears
// the display RAM.
//
// rst may be nil when the reset line is not wired.
func New(t Transport, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts.W < 1 || opts.W > 132 {
		return nil, fmt.Errorf("uc1701: invalid width %d", opts.W)
	}
	if opts.H < 8 || opts.H > 64 || opts.H&7 != 0 {
		return nil, fmt.Errorf("uc1701: invalid height %d", opts.H)
	}
	if opts.RAMPages < opts.H/8 || opts.RAMPages > 9 {
		return nil, fmt.Errorf("uc1701: invalid RAM pages %d", opts.RAMPages)
	}
	if opts.RAMWidth < opts.W || opts.RAMWidth > 132 {
		return nil, fmt.Errorf("uc1701: invalid RAM width %d", opts.RAMWidth)
	}
	d := &Dev{
		t:      t,
		rst:    rst,
		rect:   image.Rect(0, 0, opts.W, opts.H),
		buffer: make([]byte, opts.W*opts.H/8),
		// Signal that the screen must be redrawn on first draw().
		full: true,
	}
	if err := d.reset(opts); err != nil {
		return nil, err
	}
	for _, c := range initSequence {
		if err := d.t.SendCommand(c); err != nil {
			return nil, fmt.Errorf("uc1701: init: %w", err)
		}
		sleep(initDelay(c))
	}
	blank := make([]byte, opts.RAMWidth)
	for page := 0; page < opts.RAMPages; page++ {
		if err := d.setAddress(page, 0); err != nil {
			return nil, fmt.Errorf("uc1701: init: %w", err)
		}
		if err := d.t.SendDataBlock(blank); err != nil {
			return nil, fmt.Errorf("uc1701: init: %w", err)
		}
	}
	return d, nil
}

func (d *Dev) reset(opts *Opts) error {
	if d.rst == nil {
		return nil
	}
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("uc1701: reset: %w", err)
	}
	sleep(opts.ResetHold)
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("uc1701: reset: %w", err)
	}
	sleep(opts.ResetWait)
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("uc1701.Dev{%v, %s}", d.t, d.rect.Max)
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by framebuf.Bit.
func (d *Dev) ColorModel() color.Model {
	return framebuf.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
//
// It draws synchronously, once this function returns, the display is updated.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	var next []byte
	if img, ok := src.(*framebuf.Buffer); ok && r == d.rect && img.Bounds() == d.rect && sp.X == 0 && sp.Y == 0 {
		// Exact size, full frame, page layout: fast path!
		next = img.Pix
		if d.next != nil {
			copy(d.next.Pix, next)
		}
	} else {
		// Double buffering.
		if d.next == nil {
			d.next = framebuf.New(d.rect.Dx(), d.rect.Dy())
			copy(d.next.Pix, d.buffer)
		}
		next = d.next.Pix
		draw.Src.Draw(d.next, r, src, sp)
	}
	return d.drawInternal(next)
}

// Flush sends the content of b to the display.
func (d *Dev) Flush(b *framebuf.Buffer) error {
	return d.Draw(d.rect, b, image.Point{})
}

// Write writes a buffer of pixels to the display.
//
// The format is the one of framebuf.Buffer.Pix: horizontal bands of 8
// pixels high, each byte being 8 vertical pixels.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.buffer) {
		return 0, fmt.Errorf("uc1701: invalid pixel stream length; expected %d bytes, got %d bytes", len(d.buffer), len(pixels))
	}
	if err := d.drawInternal(pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Invalidate forces the next draw to resend the whole frame, for example
// after the controller was power cycled externally.
func (d *Dev) Invalidate() {
	d.full = true
}

// SetContrast changes the electronic volume, between 0 and 63.
func (d *Dev) SetContrast(level byte) error {
	if level > 63 {
		return fmt.Errorf("uc1701: invalid contrast %d", level)
	}
	return d.sendCommands(_SETCONTRAST, level)
}

// SetDisplayStartLine causes the display to start from startLine,
// effectively scrolling the screen vertically to that position.
//
// startLine must be between 0 and 63.
func (d *Dev) SetDisplayStartLine(startLine byte) error {
	if startLine > 63 {
		return fmt.Errorf("uc1701: invalid startLine %d", startLine)
	}
	return d.sendCommands(_SETSTARTLINE | startLine)
}

// Halt turns off the display.
//
// Sending any other command afterward reenables the display.
func (d *Dev) Halt() error {
	d.halted = false
	err := d.sendCommands(_DISPLAYOFF)
	if err == nil {
		d.halted = true
	}
	return err
}

// Invert the display (light on dark vs dark on light).
func (d *Dev) Invert(lightOnDark bool) error {
	if lightOnDark {
		return d.sendCommands(_INVERTDISPLAY)
	}
	return d.sendCommands(_NORMALDISPLAY)
}

func (d *Dev) calculateSubset(next []byte) (int, int, int, int, bool) {
	w := d.rect.Dx()
	h := d.rect.Dy()
	startPage := 0
	endPage := h / 8
	startCol := 0
	endCol := w
	if d.full {
		d.full = false
		return startPage, endPage, startCol, endCol, false
	}
	// Top.
	for ; startPage < endPage; startPage++ {
		x := w * startPage
		y := w * (startPage + 1)
		if !bytes.Equal(d.buffer[x:y], next[x:y]) {
			break
		}
	}
	// Bottom.
	for ; endPage > startPage; endPage-- {
		x := w * (endPage - 1)
		y := w * endPage
		if !bytes.Equal(d.buffer[x:y], next[x:y]) {
			break
		}
	}
	if startPage == endPage {
		// Early exit, the image is exactly the same.
		return 0, 0, 0, 0, true
	}
	// Left.
	for ; startCol < endCol; startCol++ {
		if !d.columnEqual(next, startCol, startPage, endPage) {
			break
		}
	}
	// Right.
	for ; endCol > startCol; endCol-- {
		if !d.columnEqual(next, endCol-1, startPage, endPage) {
			break
		}
	}
	return startPage, endPage, startCol, endCol, false
}

func (d *Dev) columnEqual(next []byte, col, startPage, endPage int) bool {
	w := d.rect.Dx()
	for p := startPage; p < endPage; p++ {
		if d.buffer[p*w+col] != next[p*w+col] {
			return false
		}
	}
	return true
}

// drawInternal sends image data to the controller, one block per page.
func (d *Dev) drawInternal(next []byte) error {
	startPage, endPage, startCol, endCol, skip := d.calculateSubset(next)
	if skip {
		return nil
	}
	copy(d.buffer, next)
	w := d.rect.Dx()
	for page := startPage; page < endPage; page++ {
		if err := d.setAddress(page, startCol); err != nil {
			// The RAM content is unknown now.
			d.full = true
			return fmt.Errorf("uc1701: %w", err)
		}
		pageStart := page * w
		if err := d.t.SendDataBlock(d.buffer[pageStart+startCol : pageStart+endCol]); err != nil {
			d.full = true
			return fmt.Errorf("uc1701: %w", err)
		}
	}
	return nil
}

// setAddress points the RAM write pointer to column col of page.
func (d *Dev) setAddress(page, col int) error {
	return d.sendCommands(
		_PAGESTARTADDRESS|byte(page&0x0F),
		_SETHIGHCOLUMN|byte((col>>4)&0x0F),
		_SETLOWCOLUMN|byte(col&0x0F),
	)
}

func (d *Dev) sendCommands(c ...byte) error {
	if d.halted {
		// Transparently enable the display.
		if err := d.t.SendCommand(_DISPLAYON); err != nil {
			return err
		}
		d.halted = false
	}
	for _, b := range c {
		if err := d.t.SendCommand(b); err != nil {
			return err
		}
	}
	return nil
}

var _ display.Drawer = &Dev{}
