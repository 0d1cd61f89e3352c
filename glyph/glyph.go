// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package glyph contains the fixed-width bitmap fonts used to write text on
// page-addressed monochrome displays.
//
// A glyph is stored as a run of column bytes. Bit 0 of each byte is the top
// pixel of the column, which is the same layout the display controller uses
// for one page, so a glyph can be copied into display memory as is.
package glyph

// Font maps a character code to a fixed number of column bytes.
//
// Codes outside [First, Last] resolve to Fallback. A nil Fallback means the
// font covers every code it can be asked for.
type Font struct {
	Name string
	// Width is the number of columns of every glyph.
	Width int
	// Advance is the horizontal pitch used when laying out text. It is fixed
	// per font and does not depend on the glyph being drawn.
	Advance int
	First   byte
	Last    byte
	// Fallback is drawn for codes outside of [First, Last].
	Fallback []byte

	data []byte
}

// Glyph returns the columns of c. The returned slice must not be modified.
func (f *Font) Glyph(c byte) []byte {
	if c < f.First || c > f.Last {
		if f.Fallback != nil {
			return f.Fallback
		}
		return blank[:f.Width]
	}
	i := int(c-f.First) * f.Width
	return f.data[i : i+f.Width : i+f.Width]
}

// Covers reports whether c has its own glyph in f.
func (f *Font) Covers(c byte) bool {
	return c >= f.First && c <= f.Last
}

func (f *Font) String() string {
	return f.Name
}

var blank [8]byte

// Compact is a 3x5 font covering printable ASCII. Other codes render as a
// hollow box.
var Compact = &Font{
	Name:     "3x5",
	Width:    3,
	Advance:  4,
	First:    32,
	Last:     126,
	Fallback: []byte{0x1F, 0x11, 0x1F},
	data:     compactData[:],
}

// Standard is a 5x7 font covering every byte value. The upper half follows
// the usual code page 437 layout.
var Standard = &Font{
	Name:    "5x7",
	Width:   5,
	Advance: 6,
	First:   0,
	Last:    255,
	data:    standardData[:],
}
