// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package framebuf

import (
	"image/color"
	"strconv"

	"github.com/GermanBionicSystems/lcd132/glyph"
	"tinygo.org/x/tinyfont"
)

// DrawChar copies the glyph of c into page at column col, then clears
// spacing columns after it.
//
// Glyph columns replace the page bytes; they are not OR'ed. A glyph that
// does not fit entirely in the page is not drawn at all. Spacing columns
// past the right edge are dropped.
func (b *Buffer) DrawChar(page, col int, c byte, f *glyph.Font, spacing int) {
	if page < 0 || page >= b.Pages() || col < 0 || col+f.Width > b.W {
		return
	}
	p := b.Page(page)
	copy(p[col:], f.Glyph(c))
	for i := col + f.Width; i < col+f.Width+spacing && i < b.W; i++ {
		p[i] = 0
	}
}

// DrawText draws text in page starting at column col.
//
// Characters are placed every f.Advance columns whatever their shape, with
// one blank column of spacing. Drawing stops at the first character that
// would start at or past the right edge.
func (b *Buffer) DrawText(page, col int, text string, f *glyph.Font) {
	for i := 0; i < len(text) && col < b.W; i++ {
		b.DrawChar(page, col, text[i], f, 1)
		col += f.Advance
	}
}

// DrawNumber draws n in base 10.
func (b *Buffer) DrawNumber(page, col, n int, f *glyph.Font) {
	b.DrawText(page, col, strconv.Itoa(n), f)
}

// TextWidth returns the number of columns DrawText uses for text, without
// the trailing spacing.
func TextWidth(text string, f *glyph.Font) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text)-1)*f.Advance + f.Width
}

// WriteLine draws text with its baseline at pixel row y, which does not need
// to be page aligned. Pixels are OR'ed into the buffer.
//
// A nil font selects tinyfont.Picopixel.
func (b *Buffer) WriteLine(x, y int, text string, font tinyfont.Fonter) {
	if font == nil {
		font = &tinyfont.Picopixel
	}
	tinyfont.WriteLine(b, font, int16(x), int16(y), text, black)
}

// LineWidth returns the width in pixels of text drawn with WriteLine.
func LineWidth(text string, font tinyfont.Fonter) int {
	if font == nil {
		font = &tinyfont.Picopixel
	}
	_, w := tinyfont.LineWidth(font, text)
	return int(w)
}

var black = color.RGBA{A: 255}
