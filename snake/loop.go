// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package snake

import (
	"context"
	"fmt"
	"time"

	"github.com/GermanBionicSystems/lcd132/framebuf"
	"github.com/GermanBionicSystems/lcd132/keypad"
	"periph.io/x/conn/v3/display"
)

// PollInterval is the pause between two iterations of Run.
const PollInterval = 10 * time.Millisecond

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Loop drives a Game from a key pad and sends the frames to a display.
//
// Input is read on every iteration while the game advances only when its
// tick interval elapsed, so pause and restart stay responsive at any pace.
type Loop struct {
	g     *Game
	keys  keypad.Reader
	clock Clock
	out   display.Drawer
	buf   *framebuf.Buffer

	started  bool
	lastTick time.Time
}

// NewLoop returns a loop playing g.
//
// The frame buffer matches the bounds of out.
func NewLoop(g *Game, keys keypad.Reader, clock Clock, out display.Drawer) *Loop {
	r := out.Bounds()
	return &Loop{
		g:     g,
		keys:  keys,
		clock: clock,
		out:   out,
		buf:   framebuf.New(r.Dx(), r.Dy()),
	}
}

// Game returns the game being played.
func (l *Loop) Game() *Game {
	return l.g
}

// Buffer returns the frame buffer sent to the display.
func (l *Loop) Buffer() *framebuf.Buffer {
	return l.buf
}

// Poll runs one iteration: read the key pad, step the game if the tick
// interval elapsed, render and flush the frame.
func (l *Loop) Poll() error {
	k := l.keys.Read()
	l.g.HandleKey(k)
	now := l.clock.Now()
	if !l.started {
		l.started = true
		l.lastTick = now
	}
	if now.Sub(l.lastTick) >= l.g.Interval() {
		l.lastTick = now
		l.g.Step()
	}
	l.g.Render(l.buf)
	if err := l.out.Draw(l.buf.Bounds(), l.buf, l.buf.Bounds().Min); err != nil {
		return fmt.Errorf("snake: %w", err)
	}
	return nil
}

// Run calls Poll every PollInterval until ctx is done or the display fails.
func (l *Loop) Run(ctx context.Context) error {
	t := time.NewTicker(PollInterval)
	defer t.Stop()
	for {
		if err := l.Poll(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}
