// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package keypad

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Key is a key of the pad.
type Key uint8

// Keys, in reporting priority order when more than one is held.
const (
	None Key = iota
	Up
	Down
	Left
	Right
	OK
)

const keyName = "NoneUpDownLeftRightOK"

var keyIndex = [...]uint8{0, 4, 6, 10, 14, 19, 21}

func (k Key) String() string {
	if k > OK {
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
	return keyName[keyIndex[k]:keyIndex[k+1]]
}

// Reader returns the key currently held, or None.
type Reader interface {
	Read() Key
}

// Opts defines the options for the device.
type Opts struct {
	// Debounce is how long the raw reading must have been stable before a
	// different key is reported.
	Debounce time.Duration
	// Now returns the current time. It defaults to time.Now.
	Now func() time.Time
	// Common is the line shared by the five switches when it is wired to a
	// GPIO instead of ground. It is driven low. nil when tied to ground.
	Common gpio.PinOut
}

// DefaultOpts suits the tactile switches of the reference pad.
var DefaultOpts = Opts{
	Debounce: 30 * time.Millisecond,
}

// Dev is a debounced key pad.
type Dev struct {
	mu       sync.Mutex
	pins     [5]gpio.PinIn
	debounce time.Duration
	now      func() time.Time
	stable   Key
	last     time.Time
}

// New configures the five inputs with a pull-up and returns a key pad
// reading them. A nil opts selects DefaultOpts.
func New(up, down, left, right, ok gpio.PinIn, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	d := &Dev{
		pins:     [5]gpio.PinIn{up, down, left, right, ok},
		debounce: opts.Debounce,
		now:      opts.Now,
	}
	if d.debounce < 0 {
		return nil, errors.New("keypad: negative debounce")
	}
	if d.now == nil {
		d.now = time.Now
	}
	if c := opts.Common; c != nil && c != gpio.INVALID {
		if err := c.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("keypad: common %s: %w", c, err)
		}
	}
	for i, p := range d.pins {
		if p == nil || p == gpio.INVALID {
			return nil, fmt.Errorf("keypad: pin for %s is required", Key(i+1))
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("keypad: %s: %w", p, err)
		}
	}
	d.last = d.now()
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("keypad.Dev{%s, %s, %s, %s, %s}", d.pins[0], d.pins[1], d.pins[2], d.pins[3], d.pins[4])
}

// Raw returns the key held right now, without debouncing.
func (d *Dev) Raw() Key {
	for i, p := range d.pins {
		if p.Read() == gpio.Low {
			return Key(i + 1)
		}
	}
	return None
}

// Read implements Reader.
//
// A raw reading that differs from the reported key is adopted only when the
// previous one was last confirmed at least Debounce ago.
func (d *Dev) Read() Key {
	k := d.Raw()
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	if k != d.stable {
		if now.Sub(d.last) >= d.debounce {
			d.last = now
			d.stable = k
		}
	} else {
		d.last = now
	}
	return d.stable
}

var _ Reader = &Dev{}
