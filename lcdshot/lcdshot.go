// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcdshot renders frames of the panel as enlarged images, for
// documentation and bug reports.
package lcdshot

import (
	"image"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/lcd132/framebuf"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// Opts defines how a frame is rendered.
type Opts struct {
	// Scale is the size in image pixels of a panel pixel.
	Scale int
	// Gap leaves unlit space between panel pixels, in image pixels.
	Gap float64
	// Border is the margin around the panel, in image pixels.
	Border int
	// Caption is printed under the panel when not empty.
	Caption string
	// CaptionSize is the font size of the caption, in points.
	CaptionSize float64

	On    color.Color
	Off   color.Color
	Bezel color.Color
}

// DefaultOpts mimics the reference panel in its bezel.
var DefaultOpts = Opts{
	Scale:       4,
	Gap:         1,
	Border:      8,
	CaptionSize: 14,
	On:          color.RGBA{0x20, 0x28, 0x20, 0xFF},
	Off:         color.RGBA{0x9C, 0xBC, 0x8C, 0xFF},
	Bezel:       color.RGBA{0x30, 0x30, 0x30, 0xFF},
}

// Render returns b drawn according to opts.
func Render(b *framebuf.Buffer, opts *Opts) (image.Image, error) {
	dc, err := render(b, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// Encode writes b drawn according to opts to w as a PNG.
func Encode(w io.Writer, b *framebuf.Buffer, opts *Opts) error {
	dc, err := render(b, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// Save writes b drawn according to opts to a PNG file.
func Save(path string, b *framebuf.Buffer, opts *Opts) error {
	dc, err := render(b, opts)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

func render(b *framebuf.Buffer, opts *Opts) (*gg.Context, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	s := float64(scale)
	border := float64(opts.Border)
	w := float64(b.W)*s + 2*border
	h := float64(b.H)*s + 2*border

	var captionH float64
	var face *truetype.Font
	if opts.Caption != "" {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, err
		}
		face = f
		captionH = opts.CaptionSize * 2
	}

	dc := gg.NewContext(int(w), int(h+captionH))
	dc.SetColor(opts.Bezel)
	dc.Clear()

	dc.SetColor(opts.Off)
	dc.DrawRectangle(border, border, float64(b.W)*s, float64(b.H)*s)
	dc.Fill()

	gap := opts.Gap
	if gap >= s {
		gap = 0
	}
	dc.SetColor(opts.On)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.BitAt(x, y) {
				dc.DrawRectangle(border+float64(x)*s, border+float64(y)*s, s-gap, s-gap)
			}
		}
	}
	dc.Fill()

	if face != nil {
		dc.SetFontFace(truetype.NewFace(face, &truetype.Options{Size: opts.CaptionSize}))
		dc.SetColor(opts.Off)
		dc.DrawStringAnchored(opts.Caption, w/2, h+captionH/2, 0.5, 0.5)
	}
	return dc, nil
}
