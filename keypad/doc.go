// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package keypad reads a five key navigation pad wired to GPIO inputs.
//
// Each key shorts its input to the common line when pressed. The common line
// is either ground or a GPIO held low (see Opts.Common), so the inputs use the
// internal pull-up and a pressed key reads as gpio.Low. Only one key is
// reported at a time.
//
// The value returned is a debounced level, not an event. Callers that need
// to react to a press once compare successive reads.
package keypad
