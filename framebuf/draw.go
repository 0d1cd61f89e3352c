// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package framebuf

// DrawHLine turns on pixels (x0, y) to (x1, y) inclusive.
func (b *Buffer) DrawHLine(x0, x1, y int) {
	if y < 0 || y >= b.H {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x1 < 0 || x0 >= b.W {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= b.W {
		x1 = b.W - 1
	}
	row := (y >> 3) * b.W
	mask := byte(1) << uint(y&7)
	for x := x0; x <= x1; x++ {
		b.Pix[row+x] |= mask
	}
}

// DrawVLine turns on pixels (x, y0) to (x, y1) inclusive.
func (b *Buffer) DrawVLine(x, y0, y1 int) {
	if x < 0 || x >= b.W {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y1 < 0 || y0 >= b.H {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 >= b.H {
		y1 = b.H - 1
	}
	for y := y0; y <= y1; y++ {
		b.Pix[(y>>3)*b.W+x] |= 1 << uint(y&7)
	}
}

// DrawLine draws a Bresenham line from (x0, y0) to (x1, y1), both ends
// included.
func (b *Buffer) DrawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		b.SetBit(x0, y0, On)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect draws the outline of the w x h rectangle at (x, y).
func (b *Buffer) DrawRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	b.DrawHLine(x, x+w-1, y)
	b.DrawHLine(x, x+w-1, y+h-1)
	b.DrawVLine(x, y, y+h-1)
	b.DrawVLine(x+w-1, y, y+h-1)
}

// FillRect turns on every pixel of the w x h rectangle at (x, y).
//
// Nothing is drawn when (x, y) itself is outside of the buffer. The opposite
// corner is clamped to the buffer.
func (b *Buffer) FillRect(x, y, w, h int) {
	if x < 0 || x >= b.W || y < 0 || y >= b.H || w <= 0 || h <= 0 {
		return
	}
	x1 := x + w - 1
	y1 := y + h - 1
	if x1 >= b.W {
		x1 = b.W - 1
	}
	if y1 >= b.H {
		y1 = b.H - 1
	}
	for row := y; row <= y1; row++ {
		b.DrawHLine(x, x1, row)
	}
}

// DrawCircle draws the outline of a circle of radius r centered on
// (cx, cy) with the midpoint algorithm.
//
// Each of the 8 symmetric points is clipped on its own, so a circle partly
// off the buffer is partly drawn.
func (b *Buffer) DrawCircle(cx, cy, r int) {
	if r < 0 {
		return
	}
	x := r
	y := 0
	err := 0
	for x >= y {
		b.SetBit(cx+x, cy+y, On)
		b.SetBit(cx+y, cy+x, On)
		b.SetBit(cx-y, cy+x, On)
		b.SetBit(cx-x, cy+y, On)
		b.SetBit(cx-x, cy-y, On)
		b.SetBit(cx-y, cy-x, On)
		b.SetBit(cx+y, cy-x, On)
		b.SetBit(cx+x, cy-y, On)
		if err <= 0 {
			y++
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

// DrawTriangle draws the outline of a triangle.
func (b *Buffer) DrawTriangle(x0, y0, x1, y1, x2, y2 int) {
	b.DrawLine(x0, y0, x1, y1)
	b.DrawLine(x1, y1, x2, y2)
	b.DrawLine(x2, y2, x0, y0)
}

// FillTriangle fills a triangle one horizontal span at a time.
//
// Edge positions use truncating integer division, so shallow edges lean
// toward the first vertex. The lower half starts its accumulators at
// dx12*(last-y0) and dx02*(y1-y0) like the panel firmware does, which
// draws that half shorter than the true triangle.
func (b *Buffer) FillTriangle(x0, y0, x1, y1, x2, y2 int) {
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	if y0 == y2 {
		a, c := x0, x0
		if x1 < a {
			a = x1
		} else if x1 > c {
			c = x1
		}
		if x2 < a {
			a = x2
		} else if x2 > c {
			c = x2
		}
		b.DrawHLine(a, c, y0)
		return
	}

	dx01, dy01 := x1-x0, y1-y0
	dx02, dy02 := x2-x0, y2-y0
	dx12, dy12 := x2-x1, y2-y1

	// The scanline y1 belongs to the lower part unless the bottom edge is
	// flat.
	last := y1 - 1
	if y1 == y2 {
		last = y1
	}

	sa, sb := 0, 0
	for y := y0; y <= last; y++ {
		xa := x0 + sa/dy02
		xb := x0 + sb/dy01
		sa += dx02
		sb += dx01
		if xa > xb {
			xa, xb = xb, xa
		}
		b.DrawHLine(xa, xb, y)
	}

	sa = dx12 * (last - y0)
	sb = dx02 * (y1 - y0)
	for y := last + 1; y <= y2; y++ {
		xa := x1 + sa/dy12
		xb := x0 + sb/dy02
		sa += dx12
		sb += dx02
		if xa > xb {
			xa, xb = xb, xa
		}
		b.DrawHLine(xa, xb, y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
