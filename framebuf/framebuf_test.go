// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package framebuf

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/GermanBionicSystems/lcd132/glyph"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// lit returns every pixel turned on, in row-major order.
func lit(b *Buffer) []image.Point {
	var out []image.Point
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.BitAt(x, y) {
				out = append(out, image.Pt(x, y))
			}
		}
	}
	return out
}

func span(y, x0, x1 int) []image.Point {
	var out []image.Point
	for x := x0; x <= x1; x++ {
		out = append(out, image.Pt(x, y))
	}
	return out
}

func TestNew_invalid(t *testing.T) {
	for _, tc := range []struct{ w, h int }{{0, 8}, {8, 0}, {8, 12}, {-1, 8}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d, %d) did not panic", tc.w, tc.h)
				}
			}()
			New(tc.w, tc.h)
		}()
	}
}

func TestNewLCD(t *testing.T) {
	b := NewLCD()
	if b.W != 132 || b.H != 48 || b.Pages() != 6 || len(b.Pix) != 792 {
		t.Fatalf("unexpected geometry %s pages=%d len=%d", b, b.Pages(), len(b.Pix))
	}
}

func TestSetBit(t *testing.T) {
	b := NewLCD()
	for _, p := range []image.Point{{0, 0}, {131, 47}, {7, 8}, {64, 23}} {
		b.SetBit(p.X, p.Y, On)
		if !b.BitAt(p.X, p.Y) {
			t.Errorf("BitAt(%v) = false after On", p)
		}
		b.SetBit(p.X, p.Y, Off)
		if b.BitAt(p.X, p.Y) {
			t.Errorf("BitAt(%v) = true after Off", p)
		}
	}
	b.SetBit(3, 9, On)
	if b.Pix[132+3] != 0x02 {
		t.Fatalf("layout: got %#x, want 0x02", b.Pix[132+3])
	}
}

func TestSetBit_outOfRange(t *testing.T) {
	b := NewLCD()
	for _, p := range []image.Point{{132, 0}, {0, 48}, {-1, 0}, {0, -1}, {1000, 1000}} {
		b.SetBit(p.X, p.Y, On)
		if b.BitAt(p.X, p.Y) {
			t.Errorf("BitAt(%v) = true", p)
		}
	}
	if got := lit(b); len(got) != 0 {
		t.Fatalf("out of range writes leaked: %v", got)
	}
}

func TestFillAndInvert(t *testing.T) {
	b := New(8, 8)
	b.Fill(0xAA)
	for x := 0; x < 8; x++ {
		if b.BitAt(x, 0) || !b.BitAt(x, 1) {
			t.Fatalf("Fill(0xAA) column %d = %#x", x, b.Pix[x])
		}
	}
	b.Clear()
	b.InvertRect(-2, 2, 4, 2)
	want := []image.Point{{0, 2}, {1, 2}, {0, 3}, {1, 3}}
	if diff := cmp.Diff(lit(b), want); diff != "" {
		t.Fatalf("InvertRect() difference (-got +want):\n%s", diff)
	}
	b.InvertRect(0, 0, 8, 8)
	if got := len(lit(b)); got != 60 {
		t.Fatalf("got %d pixels after second invert, want 60", got)
	}
}

func TestDrawLine(t *testing.T) {
	for _, tc := range []struct {
		name           string
		x0, y0, x1, y1 int
		want           []image.Point
	}{
		{"horizontal", 0, 0, 5, 0, span(0, 0, 5)},
		{"reversed", 5, 0, 0, 0, span(0, 0, 5)},
		{"single", 3, 3, 3, 3, []image.Point{{3, 3}}},
		{"diagonal", 0, 0, 3, 3, []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"shallow", 0, 0, 4, 2, []image.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}},
		{"clipped", -2, 0, 2, 0, span(0, 0, 2)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := NewLCD()
			b.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1)
			if diff := cmp.Diff(lit(b), tc.want); diff != "" {
				t.Fatalf("DrawLine() difference (-got +want):\n%s", diff)
			}
		})
	}
}

func TestDrawHLine(t *testing.T) {
	for _, tc := range []struct {
		name      string
		x0, x1, y int
		want      []image.Point
	}{
		{"normal", 2, 4, 1, span(1, 2, 4)},
		{"swapped", 4, 2, 1, span(1, 2, 4)},
		{"clip right", 129, 200, 0, span(0, 129, 131)},
		{"clip left", -5, 1, 0, span(0, 0, 1)},
		{"off right", 132, 140, 0, nil},
		{"off left", -9, -1, 0, nil},
		{"off bottom", 0, 10, 48, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := NewLCD()
			b.DrawHLine(tc.x0, tc.x1, tc.y)
			if diff := cmp.Diff(lit(b), tc.want, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("DrawHLine() difference (-got +want):\n%s", diff)
			}
		})
	}
}

func TestDrawVLine(t *testing.T) {
	b := NewLCD()
	b.DrawVLine(5, 50, 44)
	want := []image.Point{{5, 44}, {5, 45}, {5, 46}, {5, 47}}
	if diff := cmp.Diff(lit(b), want); diff != "" {
		t.Fatalf("DrawVLine() difference (-got +want):\n%s", diff)
	}
	b.Clear()
	b.DrawVLine(132, 0, 10)
	b.DrawVLine(0, 48, 60)
	if got := lit(b); len(got) != 0 {
		t.Fatalf("off-axis DrawVLine drew %v", got)
	}
}

func TestDrawRect(t *testing.T) {
	b := NewLCD()
	b.DrawRect(0, 0, 0, 5)
	b.DrawRect(0, 0, 5, 0)
	if got := lit(b); len(got) != 0 {
		t.Fatalf("empty rect drew %v", got)
	}
	b.DrawRect(0, 0, 132, 48)
	if got := len(lit(b)); got != 2*132+2*46 {
		t.Fatalf("border has %d pixels", got)
	}
	if !b.BitAt(131, 47) || b.BitAt(1, 1) {
		t.Fatal("border misplaced")
	}
}

func TestFillRect(t *testing.T) {
	b := NewLCD()
	b.FillRect(130, 46, 10, 10)
	want := []image.Point{{130, 46}, {131, 46}, {130, 47}, {131, 47}}
	if diff := cmp.Diff(lit(b), want); diff != "" {
		t.Fatalf("FillRect() difference (-got +want):\n%s", diff)
	}
	b.Clear()
	b.FillRect(-1, 0, 10, 10)
	b.FillRect(132, 0, 10, 10)
	b.FillRect(0, 48, 10, 10)
	b.FillRect(0, 0, 0, 10)
	b.FillRect(0, 0, 10, -3)
	if got := lit(b); len(got) != 0 {
		t.Fatalf("rejected FillRect drew %v", got)
	}
}

func TestDrawCircle_symmetric(t *testing.T) {
	for _, r := range []int{0, 1, 3, 7, 12} {
		b := NewLCD()
		const cx, cy = 60, 24
		b.DrawCircle(cx, cy, r)
		pts := lit(b)
		if len(pts) == 0 {
			t.Fatalf("r=%d: nothing drawn", r)
		}
		for _, p := range pts {
			dx, dy := p.X-cx, p.Y-cy
			for _, q := range [][2]int{{dx, dy}, {-dx, dy}, {dx, -dy}, {-dx, -dy}, {dy, dx}, {-dy, dx}, {dy, -dx}, {-dy, -dx}} {
				if !b.BitAt(cx+q[0], cy+q[1]) {
					t.Fatalf("r=%d: %v lit but reflection (%d, %d) is not", r, p, cx+q[0], cy+q[1])
				}
			}
		}
		if !b.BitAt(cx+r, cy) || !b.BitAt(cx, cy-r) {
			t.Fatalf("r=%d: axis points missing", r)
		}
	}
}

func TestDrawCircle_partial(t *testing.T) {
	b := NewLCD()
	b.DrawCircle(0, 0, 5)
	if !b.BitAt(5, 0) || !b.BitAt(0, 5) {
		t.Fatal("visible quadrant not drawn")
	}
}

func TestDrawTriangle(t *testing.T) {
	b := NewLCD()
	b.DrawTriangle(0, 0, 4, 0, 0, 4)
	for _, p := range []image.Point{{0, 0}, {4, 0}, {0, 4}, {2, 2}} {
		if !b.BitAt(p.X, p.Y) {
			t.Errorf("%v not drawn", p)
		}
	}
	if b.BitAt(1, 1) {
		t.Error("outline filled")
	}
}

func TestFillTriangle(t *testing.T) {
	var flat []image.Point
	flat = append(flat, span(10, 2, 30)...)
	var corner []image.Point
	for y := 0; y <= 4; y++ {
		corner = append(corner, span(y, 0, y)...)
	}
	var arrow []image.Point
	for y, x1 := range []int{0, 2, 2, 0, 0} {
		arrow = append(arrow, span(y, 0, x1)...)
	}
	// Spans worked out by hand from the fill in the panel firmware.
	// The lower half collapses toward x0, and the clipped left endpoints
	// leave one pixel per row.
	var kite []image.Point
	for y, x1 := range []int{0, 2, 4, 6, 8, 2, 0, 0, 0, 0, 0} {
		kite = append(kite, span(y, 0, x1)...)
	}
	var flatTop []image.Point
	for y := 0; y <= 10; y++ {
		flatTop = append(flatTop, span(y, min(y, 21-y), max(y, 21-y))...)
	}
	for _, tc := range []struct {
		name string
		v    [6]int
		want []image.Point
	}{
		{"flat", [6]int{20, 10, 2, 10, 30, 10}, flat},
		{"flat bottom", [6]int{0, 0, 4, 4, 0, 4}, corner},
		{"vertex order", [6]int{0, 4, 0, 0, 4, 4}, corner},
		{"split", [6]int{0, 0, 4, 2, 0, 4}, arrow},
		{"firmware lower half", [6]int{0, 0, 10, 5, 0, 10}, kite},
		{"firmware flat top", [6]int{0, 0, 20, 0, 10, 10}, flatTop},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := NewLCD()
			v := tc.v
			b.FillTriangle(v[0], v[1], v[2], v[3], v[4], v[5])
			if diff := cmp.Diff(lit(b), tc.want); diff != "" {
				t.Fatalf("FillTriangle() difference (-got +want):\n%s", diff)
			}
		})
	}
}

var smiley = []byte{
	0x00, 0xE0, 0x18, 0x04, 0xC2, 0x22, 0x11, 0x11, 0x11, 0x11, 0x22, 0xC2, 0x04, 0x18, 0xE0, 0x00,
	0x00, 0x07, 0x18, 0x20, 0x43, 0x44, 0x88, 0x88, 0x88, 0x88, 0x44, 0x43, 0x20, 0x18, 0x07, 0x00,
}

func TestDrawBitmap_aligned(t *testing.T) {
	b := NewLCD()
	b.DrawBitmap(10, 16, smiley, 16, 16)
	if diff := cmp.Diff(b.Page(2)[10:26], smiley[:16]); diff != "" {
		t.Fatalf("page 2 difference (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(b.Page(3)[10:26], smiley[16:]); diff != "" {
		t.Fatalf("page 3 difference (-got +want):\n%s", diff)
	}
	if got := len(lit(b)); got != popcount(smiley) {
		t.Fatalf("got %d pixels, want %d", got, popcount(smiley))
	}
}

func TestDrawBitmap_shifted(t *testing.T) {
	for _, y := range []int{1, 3, 7, 13, 33} {
		b := NewLCD()
		b.DrawBitmap(100, y, smiley, 16, 16)
		src := New(16, 16)
		copy(src.Pix, smiley)
		for sy := 0; sy < 16; sy++ {
			for sx := 0; sx < 16; sx++ {
				want := src.BitAt(sx, sy)
				if y+sy >= b.H {
					want = Off
				}
				if got := b.BitAt(100+sx, y+sy); got != want {
					t.Fatalf("y=%d: pixel (%d, %d) = %t, want %t", y, sx, sy, got, want)
				}
			}
		}
		var count int
		for _, p := range lit(b) {
			if p.X < 100 || p.X >= 116 || p.Y < y || p.Y >= y+16 {
				t.Fatalf("y=%d: stray pixel %v", y, p)
			}
			count++
		}
		if y+16 <= b.H && count != popcount(smiley) {
			t.Fatalf("y=%d: got %d pixels, want %d", y, count, popcount(smiley))
		}
	}
}

func TestDrawBitmap_or(t *testing.T) {
	b := NewLCD()
	b.Fill(0x01)
	b.DrawBitmap(0, 0, []byte{0x80, 0x00}, 2, 8)
	if b.Pix[0] != 0x81 || b.Pix[1] != 0x01 {
		t.Fatalf("got %#x %#x", b.Pix[0], b.Pix[1])
	}
}

func TestDrawBitmap_clipped(t *testing.T) {
	b := NewLCD()
	b.DrawBitmap(124, 44, smiley, 16, 16)
	b.DrawBitmap(-8, -4, smiley, 16, 16)
	for _, p := range lit(b) {
		if !p.In(b.Bounds()) {
			t.Fatalf("pixel %v outside of bounds", p)
		}
	}
	// Source rows 0 to 3 land above the buffer. Source (8, 4) lands on (0, 0).
	if !b.BitAt(0, 0) || smiley[8]&0x10 == 0 {
		t.Fatal("BitAt(0, 0) = false")
	}
	if b.BitAt(0, 4) != Bit(smiley[16+8]&0x01 != 0) {
		t.Fatal("second source page misplaced")
	}
}

func popcount(b []byte) int {
	n := 0
	for _, v := range b {
		for ; v != 0; v &= v - 1 {
			n++
		}
	}
	return n
}

func TestDrawChar(t *testing.T) {
	b := NewLCD()
	b.Fill(0xFF)
	b.DrawChar(0, 0, 'A', glyph.Standard, 1)
	want := []byte{0x7C, 0x12, 0x11, 0x12, 0x7C, 0x00, 0xFF}
	if diff := cmp.Diff(b.Pix[:7], want); diff != "" {
		t.Fatalf("DrawChar() difference (-got +want):\n%s", diff)
	}
}

func TestDrawChar_edges(t *testing.T) {
	b := NewLCD()
	b.DrawChar(0, 128, 'A', glyph.Standard, 1)
	b.DrawChar(0, -1, 'A', glyph.Standard, 1)
	b.DrawChar(6, 0, 'A', glyph.Standard, 1)
	b.DrawChar(-1, 0, 'A', glyph.Standard, 1)
	if got := lit(b); len(got) != 0 {
		t.Fatalf("skipped chars drew %v", got)
	}
	b.Fill(0xFF)
	b.DrawChar(1, 127, '0', glyph.Standard, 3)
	if diff := cmp.Diff(b.Page(1)[127:], glyph.Standard.Glyph('0')); diff != "" {
		t.Fatalf("glyph at edge difference (-got +want):\n%s", diff)
	}
	b.DrawChar(1, 126, '0', glyph.Standard, 3)
	if b.Page(1)[131] != 0 {
		t.Fatal("spacing column within bounds not cleared")
	}
}

func TestDrawText(t *testing.T) {
	b := NewLCD()
	b.DrawText(2, 0, "HI", glyph.Compact)
	p := b.Page(2)
	want := append(append([]byte{}, glyph.Compact.Glyph('H')...), 0)
	want = append(want, glyph.Compact.Glyph('I')...)
	if diff := cmp.Diff(p[:7], want); diff != "" {
		t.Fatalf("DrawText() difference (-got +want):\n%s", diff)
	}

	b.Clear()
	b.DrawText(0, 0, "iiiii", glyph.Standard)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(b.Pix[i*6:i*6+5], glyph.Standard.Glyph('i')); diff != "" {
			t.Fatalf("char %d not on a fixed pitch:\n%s", i, diff)
		}
	}
}

func TestDrawText_stopsAtEdge(t *testing.T) {
	b := NewLCD()
	// 22 glyphs fit at pitch 6; the 23rd would start at column 132.
	b.DrawText(0, 0, "MMMMMMMMMMMMMMMMMMMMMMMMMMMMMM", glyph.Standard)
	for i := 0; i < 22; i++ {
		if b.Pix[i*6] != glyph.Standard.Glyph('M')[0] {
			t.Fatalf("char %d missing", i)
		}
	}
	if b.Pix[131] != 0x00 {
		t.Fatalf("column 131 = %#x; partial glyph drawn", b.Pix[131])
	}
}

func TestDrawText_fallback(t *testing.T) {
	b := NewLCD()
	b.DrawText(0, 0, "\x7f", glyph.Compact)
	if diff := cmp.Diff(b.Pix[:3], []byte{0x1F, 0x11, 0x1F}); diff != "" {
		t.Fatalf("fallback difference (-got +want):\n%s", diff)
	}
}

func TestDrawNumber(t *testing.T) {
	for _, n := range []int{0, 7, -42, 12345} {
		got := NewLCD()
		got.DrawNumber(3, 10, n, glyph.Compact)
		want := NewLCD()
		want.DrawText(3, 10, itoa(n), glyph.Compact)
		if diff := cmp.Diff(got.Pix, want.Pix); diff != "" {
			t.Fatalf("DrawNumber(%d) difference (-got +want):\n%s", n, diff)
		}
	}
}

func itoa(n int) string {
	if n < 0 {
		return "-" + itoa(-n)
	}
	if n < 10 {
		return string(rune('0' + n))
	}
	return itoa(n/10) + string(rune('0'+n%10))
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("SNAKE", glyph.Compact); got != 19 {
		t.Fatalf("TextWidth() = %d, want 19", got)
	}
	if got := TextWidth("", glyph.Standard); got != 0 {
		t.Fatalf("TextWidth(\"\") = %d", got)
	}
}

func TestWriteLine(t *testing.T) {
	b := NewLCD()
	b.WriteLine(2, 20, "Hi", nil)
	pts := lit(b)
	if len(pts) == 0 {
		t.Fatal("nothing drawn")
	}
	for _, p := range pts {
		if p.Y > 20 || p.Y < 10 || p.X < 2 {
			t.Fatalf("pixel %v outside of the text line", p)
		}
	}
	if w := LineWidth("Hi", nil); w <= 0 {
		t.Fatalf("LineWidth() = %d", w)
	}
}

func TestImage(t *testing.T) {
	b := New(16, 8)
	draw.Draw(b, image.Rect(2, 2, 4, 4), &image.Uniform{color.Black}, image.Point{}, draw.Src)
	want := []image.Point{{2, 2}, {3, 2}, {2, 3}, {3, 3}}
	if diff := cmp.Diff(lit(b), want); diff != "" {
		t.Fatalf("draw.Draw() difference (-got +want):\n%s", diff)
	}
	if b.At(2, 2) != On || b.At(0, 0) != Off {
		t.Fatal("At() disagrees with BitAt()")
	}
	if BitModel.Convert(color.White) != Off || BitModel.Convert(color.Gray{0x10}) != On {
		t.Fatal("BitModel conversion")
	}
	if BitModel.Convert(color.RGBA{}) != Off {
		t.Fatal("transparent converted to On")
	}
}
