// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package snake implements the snake game played on the 132x48 panel.
//
// The play field is a toroidal grid of 4x4 pixel cells below an 8 pixel
// high score line. Game holds the simulation and draws it into a
// framebuf.Buffer. Loop polls the key pad, advances the game when its tick
// interval elapsed and sends every frame to a display.
package snake
