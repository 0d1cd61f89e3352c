// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package demo draws test and showcase screens for the 132x48 panel.
//
// Each Demo renders one frame at a time into a framebuf.Buffer, so the same
// screens can be shown on the panel, in a terminal or saved as images.
package demo

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/GermanBionicSystems/lcd132/framebuf"
	"github.com/GermanBionicSystems/lcd132/glyph"
	"github.com/GermanBionicSystems/lcd132/keypad"
)

// Demo is a still screen or an animation.
type Demo struct {
	Name string
	// Frames is the number of frames; a still screen has one.
	Frames int
	// Delay is how long each frame is shown.
	Delay time.Duration
	// Draw renders frame into b, replacing its content.
	Draw func(b *framebuf.Buffer, frame int)
}

// Smiley is a 16x16 bitmap in page layout, for DrawBitmap.
var Smiley = []byte{
	0x00, 0xE0, 0x18, 0x04, 0xC2, 0x22, 0x11, 0x11,
	0x11, 0x11, 0x22, 0xC2, 0x04, 0x18, 0xE0, 0x00,
	0x00, 0x07, 0x18, 0x20, 0x43, 0x44, 0x88, 0x88,
	0x88, 0x88, 0x44, 0x43, 0x20, 0x18, 0x07, 0x00,
}

var all = []Demo{
	still("primitives", 3*time.Second, GraphicsPrimitives),
	still("selftest", 3*time.Second, FontSelfTest),
	still("fonts", 3*time.Second, Fonts),
	still("shapes", 3*time.Second, Shapes),
	still("splash", 1500*time.Millisecond, Splash),
	{Name: "scroll", Frames: (framebuf.LCDWidth+150)/2 + 1, Delay: 30 * time.Millisecond, Draw: Scroll},
	{Name: "bounce", Frames: 50, Delay: 50 * time.Millisecond, Draw: Bounce},
	{Name: "pattern", Frames: 20, Delay: 50 * time.Millisecond, Draw: Pattern},
	{Name: "smiley", Frames: 6, Delay: 300 * time.Millisecond, Draw: Smileys},
	still("ready", 3*time.Second, Ready),
	still("columns", 5*time.Second, ColumnRuler),
	still("rows", 5*time.Second, RowRuler),
	{Name: "stripes", Frames: 2, Delay: time.Second, Draw: func(b *framebuf.Buffer, frame int) { Stripes(b, frame%2 == 0) }},
}

func still(name string, d time.Duration, f func(b *framebuf.Buffer)) Demo {
	return Demo{Name: name, Frames: 1, Delay: d, Draw: func(b *framebuf.Buffer, _ int) { f(b) }}
}

// ByName returns the demo called name.
func ByName(name string) (Demo, bool) {
	for _, d := range all {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// Names returns the names of all the demos, sorted.
func Names() []string {
	out := make([]string, 0, len(all))
	for _, d := range all {
		out = append(out, d.Name)
	}
	sort.Strings(out)
	return out
}

func frame(b *framebuf.Buffer) {
	b.Clear()
	b.DrawRect(0, 0, b.W, b.H)
}

// GraphicsPrimitives exercises every primitive of the rasterizer.
func GraphicsPrimitives(b *framebuf.Buffer) {
	w, h := b.W, b.H
	frame(b)
	b.DrawLine(0, 0, 20, 10)
	b.DrawLine(w-1, 0, w-21, 10)
	b.DrawLine(0, h-1, 20, h-11)
	b.DrawLine(w-1, h-1, w-21, h-11)
	b.DrawCircle(66, 24, 20)
	b.DrawCircle(30, 15, 10)
	b.DrawCircle(102, 15, 10)
	b.DrawRect(10, 10, 30, 15)
	b.FillRect(92, 30, 30, 10)
	b.DrawHLine(5, w-6, h/2)
	b.DrawVLine(w/2, 5, h-6)
	for i := 0; i < 5; i++ {
		b.DrawLine(50+i*3, 35, 70+i*3, 45)
	}
	b.DrawText(0, 40, "LCD", glyph.Standard)
	b.DrawNumber(5, 100, framebuf.LCDWidth, glyph.Standard)
}

// FontSelfTest shows the printable ASCII range of the standard font.
func FontSelfTest(b *framebuf.Buffer) {
	frame(b)
	b.DrawText(1, 2, "0123456789", glyph.Standard)
	b.DrawText(2, 2, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", glyph.Standard)
	b.DrawText(3, 2, "abcdefghijklmnopqrstuvwxyz", glyph.Standard)
	b.DrawText(4, 2, " !\"#$%&'()*+,-./:;<=>?@[\\]^_{|}~", glyph.Standard)
}

// Fonts compares the two glyph fonts.
func Fonts(b *framebuf.Buffer) {
	frame(b)
	b.DrawText(0, 2, "Font 5x7:", glyph.Standard)
	b.DrawText(1, 2, "ABCDEFG 0123", glyph.Standard)
	b.DrawText(3, 2, "Font 3x5:", glyph.Compact)
	b.DrawText(4, 2, "ABCDEFGHIJKLM 012345", glyph.Compact)
}

// Shapes draws outlined and filled triangles and a circle.
func Shapes(b *framebuf.Buffer) {
	frame(b)
	b.DrawText(0, 35, "SHAPES", glyph.Standard)
	b.DrawTriangle(10, 35, 25, 15, 40, 35)
	b.FillTriangle(50, 35, 65, 15, 80, 35)
	b.DrawCircle(100, 25, 15)
	b.FillRect(95, 20, 10, 10)
}

// Splash is the boot screen.
func Splash(b *framebuf.Buffer) {
	frame(b)
	b.DrawText(1, 30, "ESP32-S3", glyph.Standard)
	b.DrawText(3, 35, "132x48", glyph.Standard)
}

const scrollText = "  Framebuffer Graphics Demo  "

// Scroll moves a line of text from the right edge to past the left one, two
// columns per frame.
func Scroll(b *framebuf.Buffer, n int) {
	frame(b)
	x := b.W - 2*n
	for i := 0; i < len(scrollText); i++ {
		b.DrawChar(2, x, scrollText[i], glyph.Standard, 1)
		x += glyph.Standard.Advance
	}
}

// Bounce moves a ball along a sine wave.
func Bounce(b *framebuf.Buffer, n int) {
	frame(b)
	x := 20 + n*2
	y := 24 + int(12*math.Sin(float64(n)*0.3))
	if x < b.W-20 {
		b.DrawCircle(x, y, 8)
		b.FillRect(x-2, y-2, 4, 4)
	}
	b.DrawText(5, 2, "Bouncing!", glyph.Compact)
}

// Pattern scrolls horizontal lines down, one row per frame.
func Pattern(b *framebuf.Buffer, n int) {
	b.Clear()
	for y := 0; y < b.H; y += 4 {
		b.DrawHLine(0, b.W-1, (y+n)%b.H)
	}
	b.DrawText(2, 20, "GRAPHICS", glyph.Standard)
	b.DrawNumber(3, 45, n, glyph.Standard)
}

// Smileys blinks three smileys: even frames show them, odd frames only the
// border.
func Smileys(b *framebuf.Buffer, n int) {
	frame(b)
	if n%2 != 0 {
		return
	}
	b.DrawBitmap(10, 16, Smiley, 16, 16)
	b.DrawBitmap(58, 8, Smiley, 16, 16)
	b.DrawBitmap(106, 16, Smiley, 16, 16)
}

// Ready is an inverted banner inside a filled box.
func Ready(b *framebuf.Buffer) {
	frame(b)
	b.FillRect(10, 10, b.W-20, b.H-20)
	b.InvertRect(20, 8, b.W-40, 32)
	b.DrawText(2, 40, "READY", glyph.Standard)
}

// ColumnRuler marks every other column on the top rows and labels every
// 16th, to count the visible columns.
func ColumnRuler(b *framebuf.Buffer) {
	b.Clear()
	top := b.Page(0)
	for x := range top {
		switch {
		case x%16 == 0:
			top[x] = 0x1F
		case x%8 == 0:
			top[x] = 0x0F
		case x%2 == 0:
			top[x] = 0x03
		}
	}
	for x := 0; x < b.W; x += 16 {
		b.DrawNumber(1, x, x, glyph.Standard)
	}
	for p := 0; p < b.Pages(); p++ {
		b.Page(p)[0] = 0xFF
		b.Page(p)[b.W-1] = 0xFF
	}
}

// RowRuler marks every other row on the left columns and labels each page
// with its first row.
func RowRuler(b *framebuf.Buffer) {
	b.Clear()
	for p := 0; p < b.Pages(); p++ {
		var c [5]byte
		for bit := 0; bit < 8; bit++ {
			y := p*8 + bit
			m := byte(1) << uint(bit)
			if y%2 == 0 {
				c[0] |= m
			}
			if y%8 == 0 {
				c[1] |= m
				c[2] |= m
			}
			if y%16 == 0 {
				c[3] |= m
				c[4] |= m
			}
		}
		copy(b.Page(p), c[:])
		b.DrawNumber(p, 8, p*8, glyph.Standard)
	}
}

// Stripes lights every other column, starting with column 0 when evenOn.
func Stripes(b *framebuf.Buffer, evenOn bool) {
	for p := 0; p < b.Pages(); p++ {
		row := b.Page(p)
		for x := range row {
			if (x%2 == 0) == evenOn {
				row[x] = 0xFF
			} else {
				row[x] = 0
			}
		}
	}
}

// KeypadTest returns a screen naming the key held.
func KeypadTest(k keypad.Key) func(b *framebuf.Buffer) {
	name := strings.ToUpper(k.String())
	return func(b *framebuf.Buffer) {
		frame(b)
		b.DrawText(0, 4, "Keypad Test", glyph.Standard)
		b.DrawText(2, 10, "Pressed:", glyph.Standard)
		b.DrawText(3, 10, name, glyph.Standard)
	}
}
