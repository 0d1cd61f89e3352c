// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termlcd emulates the 132x48 panel and its key pad in a terminal.
//
// Dev is a display.Drawer that prints the frame to the console using ANSI
// color codes, redrawing in place. Keys turns terminal key presses into
// keypad readings.
//
// Useful to play with the drawing code before the panel is wired.
package termlcd

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/GermanBionicSystems/lcd132/framebuf"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	W int
	H int
	// Palette prints every pixel as a colored block. When nil, two pixel
	// rows share a line of text drawn with half block characters.
	Palette *ansi256.Palette
	// On and Off are the colors of lit and unlit pixels when a Palette is
	// used.
	On  color.NRGBA
	Off color.NRGBA
}

// DefaultOpts looks like the reference panel: dark pixels on a green-gray
// background.
var DefaultOpts = Opts{
	W:       framebuf.LCDWidth,
	H:       framebuf.LCDHeight,
	Palette: ansi256.Default,
	On:      color.NRGBA{0x20, 0x28, 0x20, 255},
	Off:     color.NRGBA{0x9C, 0xBC, 0x8C, 255},
}

// Dev is a panel emulator that outputs to the console.
type Dev struct {
	w    io.Writer
	opts Opts

	fb *framebuf.Buffer
	// last is the frame printed last, to skip identical frames.
	last  []byte
	drawn bool
	lines int
	buf   bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that prints to w.
func NewWriter(w io.Writer, opts *Opts) *Dev {
	o := *opts
	if o.W <= 0 {
		o.W = framebuf.LCDWidth
	}
	if o.H <= 0 {
		o.H = framebuf.LCDHeight
	}
	d := &Dev{w: w, opts: o, fb: framebuf.New(o.W, o.H)}
	d.last = make([]byte, len(d.fb.Pix))
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("termlcd.Dev{%dx%d}", d.opts.W, d.opts.H)
}

// Halt implements conn.Resource.
//
// It resets the terminal colors and moves below the panel.
func (d *Dev) Halt() error {
	_, err := io.WriteString(d.w, "\033[0m\r\n")
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return framebuf.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.fb.Bounds()
}

// Draw implements display.Drawer.
//
// The whole panel is printed again, unless nothing changed since the last
// call.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if img, ok := src.(*framebuf.Buffer); ok && r == d.Bounds() && img.Bounds() == r && sp.X == 0 && sp.Y == 0 {
		copy(d.fb.Pix, img.Pix)
	} else {
		draw.Src.Draw(d.fb, r, src, sp)
	}
	if d.drawn && bytes.Equal(d.last, d.fb.Pix) {
		return nil
	}
	copy(d.last, d.fb.Pix)
	return d.refresh()
}

// Flush prints b.
func (d *Dev) Flush(b *framebuf.Buffer) error {
	return d.Draw(d.Bounds(), b, image.Point{})
}

func (d *Dev) refresh() error {
	d.buf.Reset()
	if d.drawn {
		// Go back to the top left corner of the previous frame.
		fmt.Fprintf(&d.buf, "\r\033[%dA", d.lines)
	}
	if d.opts.Palette != nil {
		d.lines = d.blocks()
	} else {
		d.lines = d.halfBlocks()
	}
	d.drawn = true
	_, err := d.buf.WriteTo(d.w)
	return err
}

func (d *Dev) blocks() int {
	on := d.opts.Palette.Block(d.opts.On)
	off := d.opts.Palette.Block(d.opts.Off)
	for y := 0; y < d.fb.H; y++ {
		for x := 0; x < d.fb.W; x++ {
			if d.fb.BitAt(x, y) {
				_, _ = d.buf.WriteString(on)
			} else {
				_, _ = d.buf.WriteString(off)
			}
		}
		_, _ = d.buf.WriteString("\033[0m\r\n")
	}
	return d.fb.H
}

// halfBlocks prints rows y and y+1 on the same line.
func (d *Dev) halfBlocks() int {
	lines := 0
	for y := 0; y < d.fb.H; y += 2 {
		for x := 0; x < d.fb.W; x++ {
			top := bool(d.fb.BitAt(x, y))
			bottom := bool(d.fb.BitAt(x, y+1))
			switch {
			case top && bottom:
				_, _ = d.buf.WriteString("█")
			case top:
				_, _ = d.buf.WriteString("▀")
			case bottom:
				_, _ = d.buf.WriteString("▄")
			default:
				_ = d.buf.WriteByte(' ')
			}
		}
		_, _ = d.buf.WriteString("\r\n")
		lines++
	}
	return lines
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
