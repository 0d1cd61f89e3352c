// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package snake_test

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/GermanBionicSystems/lcd132/snake"
	"github.com/GermanBionicSystems/lcd132/termlcd"
)

func Example() {
	// Play for a minute in the terminal.
	restore, err := termlcd.MakeRaw()
	if err != nil {
		log.Fatal(err)
	}
	defer restore()
	keys := termlcd.NewKeys(&termlcd.KeysOpts{})
	go func() {
		_, _ = keys.ReadFrom(os.Stdin)
	}()
	dev := termlcd.New(&termlcd.DefaultOpts)
	loop := snake.NewLoop(snake.New(nil), keys, snake.SystemClock{}, dev)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := loop.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		log.Fatal(err)
	}
	_ = dev.Halt()
}
