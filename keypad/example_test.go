// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package keypad_test

import (
	"fmt"
	"log"
	"time"

	"github.com/GermanBionicSystems/lcd132/keypad"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	d, err := keypad.New(gpioreg.ByName("GPIO4"), gpioreg.ByName("GPIO5"), gpioreg.ByName("GPIO16"), gpioreg.ByName("GPIO17"), gpioreg.ByName("GPIO27"), &keypad.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	// Print each press once.
	last := keypad.None
	for start := time.Now(); time.Since(start) < 10*time.Second; time.Sleep(10 * time.Millisecond) {
		if k := d.Read(); k != last {
			if k != keypad.None {
				fmt.Println(k)
			}
			last = k
		}
	}
}
