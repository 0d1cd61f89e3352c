// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package termlcd

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/GermanBionicSystems/lcd132/keypad"
	"golang.org/x/term"
)

// DefaultHold is how long a key reads as held after its last byte arrived.
//
// Terminals only send bytes on press and auto-repeat, so a key is released
// when it stops repeating.
const DefaultHold = 150 * time.Millisecond

// KeysOpts defines the options for Keys.
type KeysOpts struct {
	// Hold is how long a key reads as held after its last byte.
	Hold time.Duration
	// Now returns the current time. It defaults to time.Now.
	Now func() time.Time
}

// Keys is a keypad.Reader fed by a terminal.
//
// Arrow keys and w, a, s, d move; Enter and space are OK; q, Esc twice and
// Ctrl-C close Quit.
type Keys struct {
	hold time.Duration
	now  func() time.Time

	mu      sync.Mutex
	key     keypad.Key
	at      time.Time
	pending []byte

	quit     chan struct{}
	quitOnce sync.Once
}

// NewKeys returns Keys decoding the bytes fed with Feed.
func NewKeys(opts *KeysOpts) *Keys {
	k := &Keys{hold: opts.Hold, now: opts.Now, quit: make(chan struct{})}
	if k.hold <= 0 {
		k.hold = DefaultHold
	}
	if k.now == nil {
		k.now = time.Now
	}
	return k
}

// ReadFrom feeds k with everything read from r until it fails.
//
// It is meant to run in its own goroutine.
func (k *Keys) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		total += int64(n)
		k.Feed(buf[:n])
		if err != nil {
			if err == io.EOF {
				err = nil
			}
			return total, err
		}
	}
}

// Feed decodes terminal input. Escape sequences may be split across calls.
func (k *Keys) Feed(b []byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pending = append(k.pending, b...)
	for len(k.pending) > 0 {
		n, key, quit := decode(k.pending)
		if n == 0 {
			// Incomplete escape sequence.
			return
		}
		k.pending = k.pending[n:]
		if quit {
			k.quitOnce.Do(func() { close(k.quit) })
		}
		if key != keypad.None {
			k.key = key
			k.at = k.now()
		}
	}
}

// Read implements keypad.Reader.
func (k *Keys) Read() keypad.Key {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.key == keypad.None || k.now().Sub(k.at) >= k.hold {
		return keypad.None
	}
	return k.key
}

// Quit is closed when a quit key was pressed.
func (k *Keys) Quit() <-chan struct{} {
	return k.quit
}

// decode returns the number of bytes of the first key in b, or 0 if b
// starts with an incomplete escape sequence.
func decode(b []byte) (int, keypad.Key, bool) {
	switch b[0] {
	case 0x1B:
		if len(b) < 2 {
			return 0, keypad.None, false
		}
		if b[1] == 0x1B {
			return 2, keypad.None, true
		}
		if b[1] != '[' && b[1] != 'O' {
			return 1, keypad.None, false
		}
		if len(b) < 3 {
			return 0, keypad.None, false
		}
		switch b[2] {
		case 'A':
			return 3, keypad.Up, false
		case 'B':
			return 3, keypad.Down, false
		case 'C':
			return 3, keypad.Right, false
		case 'D':
			return 3, keypad.Left, false
		}
		return 3, keypad.None, false
	case 'w', 'W':
		return 1, keypad.Up, false
	case 's', 'S':
		return 1, keypad.Down, false
	case 'a', 'A':
		return 1, keypad.Left, false
	case 'd', 'D':
		return 1, keypad.Right, false
	case '\r', '\n', ' ':
		return 1, keypad.OK, false
	case 'q', 'Q', 0x03:
		return 1, keypad.None, true
	}
	return 1, keypad.None, false
}

// MakeRaw puts the terminal on stdin in raw mode so key presses are
// delivered immediately and not echoed. The returned function restores it.
func MakeRaw() (func() error, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() error { return nil }, nil
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(fd, old) }, nil
}

var _ keypad.Reader = &Keys{}
