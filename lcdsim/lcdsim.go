// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcdsim shows the 132x48 panel in a desktop window.
//
// Screen is a display.Drawer keeping the last frame. Run opens a window
// that calls a step function on every tick and shows the Screen, with the
// arrow keys, Enter and space acting as the key pad. The window requires
// cgo.
package lcdsim

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/GermanBionicSystems/lcd132/framebuf"
	"periph.io/x/conn/v3/display"
)

// Opts defines the options for the simulator.
type Opts struct {
	W int
	H int
	// Scale is the window size in screen pixels per panel pixel.
	Scale int
	Title string
	On    color.RGBA
	Off   color.RGBA
}

// DefaultOpts is the reference panel at 6x.
var DefaultOpts = Opts{
	W:     framebuf.LCDWidth,
	H:     framebuf.LCDHeight,
	Scale: 6,
	Title: "lcd132",
	On:    color.RGBA{0x20, 0x28, 0x20, 0xFF},
	Off:   color.RGBA{0x9C, 0xBC, 0x8C, 0xFF},
}

// Screen is the simulated panel.
//
// Draw may be called from any goroutine.
type Screen struct {
	opts Opts

	mu     sync.Mutex
	fb     *framebuf.Buffer
	img    *image.RGBA
	frames int
}

// NewScreen returns a blank panel.
func NewScreen(opts *Opts) *Screen {
	o := *opts
	if o.W <= 0 {
		o.W = framebuf.LCDWidth
	}
	if o.H <= 0 {
		o.H = framebuf.LCDHeight
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	fb := framebuf.New(o.W, o.H)
	return &Screen{opts: o, fb: fb, img: image.NewRGBA(fb.Bounds())}
}

func (s *Screen) String() string {
	return fmt.Sprintf("lcdsim.Screen{%dx%d}", s.opts.W, s.opts.H)
}

// Halt implements conn.Resource. It blanks the panel.
func (s *Screen) Halt() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fb.Clear()
	return nil
}

// ColorModel implements display.Drawer.
func (s *Screen) ColorModel() color.Model {
	return framebuf.BitModel
}

// Bounds implements display.Drawer.
func (s *Screen) Bounds() image.Rectangle {
	return s.fb.Bounds()
}

// Draw implements display.Drawer.
func (s *Screen) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if img, ok := src.(*framebuf.Buffer); ok && r == s.fb.Bounds() && img.Bounds() == r && sp.X == 0 && sp.Y == 0 {
		copy(s.fb.Pix, img.Pix)
	} else {
		draw.Src.Draw(s.fb, r, src, sp)
	}
	s.frames++
	return nil
}

// Frames returns the number of calls to Draw.
func (s *Screen) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Image renders the panel in its colors, one image pixel per panel pixel.
//
// The returned image is reused by the next call.
func (s *Screen) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	for y := 0; y < s.fb.H; y++ {
		for x := 0; x < s.fb.W; x++ {
			c := s.opts.Off
			if s.fb.BitAt(x, y) {
				c = s.opts.On
			}
			s.img.SetRGBA(x, y, c)
		}
	}
	return s.img
}

var _ display.Drawer = &Screen{}
