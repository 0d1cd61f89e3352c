// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package framebuf

// DrawBitmap ORs a w x h bitmap into the buffer with its top left corner at
// (x, y).
//
// bitmap uses the buffer layout: (h+7)/8 pages of w bytes, LSB on top. When
// y is not a multiple of 8 each source byte straddles two destination pages.
// Pixels are only ever turned on. Bytes falling outside of the buffer are
// dropped.
func (b *Buffer) DrawBitmap(x, y int, bitmap []byte, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	pages := (h + 7) / 8
	if len(bitmap) < pages*w {
		pages = len(bitmap) / w
	}
	// Floor division so a bitmap starting above the buffer still lines up.
	page0 := y >> 3
	shift := uint(y & 7)
	for py := 0; py < pages; py++ {
		dst := page0 + py
		for px := 0; px < w; px++ {
			dx := x + px
			if dx < 0 || dx >= b.W {
				continue
			}
			col := bitmap[py*w+px]
			if shift == 0 {
				b.orByte(dst, dx, col)
				continue
			}
			b.orByte(dst, dx, col<<shift)
			b.orByte(dst+1, dx, col>>(8-shift))
		}
	}
}

func (b *Buffer) orByte(page, x int, v byte) {
	if page < 0 || page >= b.Pages() {
		return
	}
	b.Pix[page*b.W+x] |= v
}
