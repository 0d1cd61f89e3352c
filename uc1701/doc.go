// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package uc1701 controls a monochrome LCD via a UC1701 (or ST7565 family)
// page-addressed controller.
//
// The driver does differential updates: it only sends modified columns for
// the smallest band of pages, to economize bus bandwidth. This matters most
// when the bus is bit-banged over plain GPIOs, where every bit costs a few
// register writes.
//
// The controller is driven on a 4-wire serial bus: chip select (active low),
// data/command (low for commands), clock and data. Use NewBitBang to clock
// the bus over any four GPIO pins, or NewSPI to use a hardware SPI port plus
// a GPIO for data/command.
//
// The RST pin is optional. When given, New pulses it before sending the
// initialization sequence.
//
// The reference panel is 132x48 pixels, 6 pages of 132 columns. The
// controller has 8 pages of display RAM; the 2 hidden ones are cleared on
// initialization.
//
// # Datasheets
//
// https://www.crystalfontz.com/controllers/UltraChip/UC1701/
package uc1701
