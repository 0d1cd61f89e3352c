// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcd132 is a container for the packages driving a 132x48
// monochrome page-addressed LCD and the games and demos drawn on it.
//
// The frame buffer lives in framebuf, fonts in glyph, the controller driver
// in uc1701 and the debounced key pad in keypad. The snake package runs the
// game, demo draws diagnostic screens, and termlcd, lcdsim and lcdshot
// emulate the panel on a host.
package lcd132
