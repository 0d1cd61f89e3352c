// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package demo_test

import (
	"fmt"
	"strings"

	"github.com/GermanBionicSystems/lcd132/demo"
	"github.com/GermanBionicSystems/lcd132/framebuf"
)

func ExampleByName() {
	d, ok := demo.ByName("stripes")
	if !ok {
		return
	}
	b := framebuf.NewLCD()
	d.Draw(b, 0)
	var sb strings.Builder
	for x := 0; x < 8; x++ {
		if b.BitAt(x, 0) {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	fmt.Println(d.Name, d.Frames, sb.String())
	// Output: stripes 2 #.#.#.#.
}
