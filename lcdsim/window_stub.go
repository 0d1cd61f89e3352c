// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !cgo

package lcdsim

import (
	"errors"

	"github.com/GermanBionicSystems/lcd132/keypad"
)

// Run returns an error: the window requires cgo.
func Run(s *Screen, step func() error) error {
	return errors.New("lcdsim: window mode requires cgo (build with CGO_ENABLED=1)")
}

// Keys never reports a key without a window.
type Keys struct{}

// Read implements keypad.Reader.
func (Keys) Read() keypad.Key {
	return keypad.None
}
