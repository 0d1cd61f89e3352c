// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package snake

import (
	"github.com/GermanBionicSystems/lcd132/framebuf"
	"github.com/GermanBionicSystems/lcd132/glyph"
)

// Text placement, in pages and columns.
const (
	scoreLabel    = "SNAKE  Pts:"
	scoreCol      = 70
	gameOverPage  = 2
	gameOverCol   = 30
	restartPage   = 4
	restartCol    = 10
	restartHint   = "OK = Restart"
	pausePage     = 2
	pauseCol      = 40
	labelFirstCol = 2
)

// Render draws the whole game into b, replacing its content.
func (g *Game) Render(b *framebuf.Buffer) {
	b.Clear()
	b.DrawRect(0, HUD, b.W, b.H-HUD)
	b.DrawText(0, labelFirstCol, scoreLabel, glyph.Standard)
	b.DrawNumber(0, scoreCol, g.score, glyph.Standard)
	drawCell(b, g.food)
	for _, p := range g.body[:g.n] {
		drawCell(b, p)
	}
	switch g.state {
	case GameOver:
		b.DrawText(gameOverPage, gameOverCol, "GAME OVER", glyph.Standard)
		b.DrawText(restartPage, restartCol, restartHint, glyph.Compact)
	case Paused:
		b.DrawText(pausePage, pauseCol, "PAUSE", glyph.Standard)
	}
}

// drawCell fills a cell leaving a one pixel gap around it.
func drawCell(b *framebuf.Buffer, p Point) {
	b.FillRect(p.X*Cell+1, HUD+p.Y*Cell+1, Cell-2, Cell-2)
}
