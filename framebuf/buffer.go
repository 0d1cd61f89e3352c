// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package framebuf implements an in-memory frame buffer with the same layout
// as the display RAM of page-addressed monochrome LCD controllers.
//
// The buffer is split in pages, each one an horizontal band of 8 pixels high.
// A page is W bytes and each byte holds one column of 8 pixels, LSB on top.
// 132*48 = 6 pages of 132 bytes = 792 bytes.
//
// Every drawing operation accepts coordinates outside of the buffer and
// silently clips them, so callers never need to check bounds.
package framebuf

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"tinygo.org/x/drivers"
)

// Size of the panel on the reference board.
const (
	LCDWidth  = 132
	LCDHeight = 48
)

// Bit implements a 1 bit color. On is a dark pixel on the panel.
type Bit bool

// RGBA returns either black or white.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 0, 0, 0, 65535
	}
	return 65535, 65535, 65535, 65535
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// Possible bitness.
const (
	On  = Bit(true)
	Off = Bit(false)
)

// BitModel is the color Model for 1 bit color. Dark colors become On.
var BitModel = color.ModelFunc(convert)

// Buffer is a page-addressed 1 bit frame buffer.
type Buffer struct {
	W, H int
	// Pix is H/8 pages of W bytes each.
	Pix []byte
}

// New returns a cleared buffer of w x h pixels.
//
// h must be a multiple of 8.
func New(w, h int) *Buffer {
	if w <= 0 || h <= 0 || h&7 != 0 {
		panic(fmt.Sprintf("framebuf: invalid size %dx%d", w, h))
	}
	return &Buffer{W: w, H: h, Pix: make([]byte, w*h/8)}
}

// NewLCD returns a cleared 132x48 buffer.
func NewLCD() *Buffer {
	return New(LCDWidth, LCDHeight)
}

// Pages returns the number of 8 pixels high bands.
func (b *Buffer) Pages() int {
	return b.H / 8
}

// Page returns the W bytes of page p. It is a view into Pix.
func (b *Buffer) Page(p int) []byte {
	return b.Pix[p*b.W : (p+1)*b.W]
}

// SetBit turns pixel (x, y) on or off. It is a no-op outside of the buffer.
func (b *Buffer) SetBit(x, y int, v Bit) {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return
	}
	i := (y>>3)*b.W + x
	mask := byte(1) << uint(y&7)
	if v {
		b.Pix[i] |= mask
	} else {
		b.Pix[i] &^= mask
	}
}

// BitAt reports whether pixel (x, y) is on. It is false outside of the
// buffer.
func (b *Buffer) BitAt(x, y int) Bit {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return Off
	}
	return Bit(b.Pix[(y>>3)*b.W+x]&(1<<uint(y&7)) != 0)
}

// Clear turns every pixel off.
func (b *Buffer) Clear() {
	b.Fill(0)
}

// Fill sets every byte of every page to pattern.
func (b *Buffer) Fill(pattern byte) {
	for i := range b.Pix {
		b.Pix[i] = pattern
	}
}

// InvertRect flips every pixel in the w x h rectangle at (x, y), clipped to
// the buffer.
func (b *Buffer) InvertRect(x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(b.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		mask := byte(1) << uint(py&7)
		row := (py >> 3) * b.W
		for px := r.Min.X; px < r.Max.X; px++ {
			b.Pix[row+px] ^= mask
		}
	}
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.W, b.H)
}

// At implements image.Image.
func (b *Buffer) At(x, y int) color.Color {
	return b.BitAt(x, y)
}

// Set implements draw.Image.
func (b *Buffer) Set(x, y int, c color.Color) {
	b.SetBit(x, y, convertBit(c))
}

// Size implements drivers.Displayer.
func (b *Buffer) Size() (x, y int16) {
	return int16(b.W), int16(b.H)
}

// SetPixel implements drivers.Displayer.
func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	b.SetBit(int(x), int(y), convertBit(c))
}

// Display implements drivers.Displayer. The buffer has nothing to flush;
// pass it to a display driver instead.
func (b *Buffer) Display() error {
	return nil
}

func (b *Buffer) String() string {
	return fmt.Sprintf("framebuf.Buffer{%d, %d}", b.W, b.H)
}

func convert(c color.Color) color.Color {
	return convertBit(c)
}

func convertBit(c color.Color) Bit {
	switch t := c.(type) {
	case Bit:
		return t
	default:
		r, g, bl, a := c.RGBA()
		if a < 0x8000 {
			return Off
		}
		return Bit((r + g + bl) < 3*0x8000)
	}
}

var _ draw.Image = &Buffer{}
var _ drivers.Displayer = &Buffer{}
