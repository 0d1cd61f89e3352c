// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"testing"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/conn/v3/spi/spitest"
)

type closingPort struct {
	spitest.Record
	closed int
}

func (c *closingPort) Close() error {
	c.closed++
	return nil
}

func TestNewPanel_closesPort(t *testing.T) {
	for _, n := range []string{"TDC", "TRST", "TUP", "TDOWN", "TLEFT", "TRIGHT"} {
		if err := gpioreg.Register(&gpiotest.Pin{N: n}); err != nil {
			t.Fatal(err)
		}
	}
	port := &closingPort{}
	if err := spireg.Register("TESTSPI", nil, -1, func() (spi.PortCloser, error) { return port, nil }); err != nil {
		t.Fatal(err)
	}
	f := panelFlags{
		spi:      "TESTSPI",
		dc:       "TDC",
		rst:      "TRST",
		keys:     "TUP,TDOWN,TLEFT,TRIGHT,TOK",
		contrast: -1,
	}
	// TOK is not registered, so the key pad fails after the display is up.
	if _, err := newPanel(&f); err == nil {
		t.Fatal("expected error")
	}
	if port.closed != 1 {
		t.Fatalf("port closed %d times, want 1", port.closed)
	}
	if n := len(port.Ops); n == 0 {
		t.Fatal("display was never initialized")
	}
}
