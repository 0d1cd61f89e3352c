// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build cgo

package lcdsim

import (
	"github.com/GermanBionicSystems/lcd132/keypad"
	"github.com/hajimehoshi/ebiten/v2"
)

// TPS is the number of ticks per second, matching the poll rate of the game
// loop.
const TPS = 100

// Run opens a window showing s and calls step on every tick. It blocks
// until the window is closed, Escape is pressed or step fails.
func Run(s *Screen, step func() error) error {
	ebiten.SetWindowTitle(s.opts.Title)
	ebiten.SetWindowSize(s.opts.W*s.opts.Scale, s.opts.H*s.opts.Scale)
	ebiten.SetTPS(TPS)
	return ebiten.RunGame(&window{s: s, step: step})
}

type window struct {
	s     *Screen
	step  func() error
	fbImg *ebiten.Image
}

func (w *window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if w.step != nil {
		return w.step()
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	img := w.s.Image()
	if w.fbImg == nil {
		w.fbImg = ebiten.NewImage(img.Rect.Dx(), img.Rect.Dy())
	}
	w.fbImg.WritePixels(img.Pix)
	screen.DrawImage(w.fbImg, nil)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.s.opts.W, w.s.opts.H
}

// Keys reads the keyboard of the window as a key pad.
type Keys struct{}

// Read implements keypad.Reader.
func (Keys) Read() keypad.Key {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		return keypad.Up
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		return keypad.Down
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		return keypad.Left
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		return keypad.Right
	case ebiten.IsKeyPressed(ebiten.KeyEnter), ebiten.IsKeyPressed(ebiten.KeySpace):
		return keypad.OK
	}
	return keypad.None
}

var _ keypad.Reader = Keys{}
