// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// lcdsnake plays snake or shows the demo screens on a 132x48 UC1701 panel,
// in a terminal, in a web browser or in a window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/GermanBionicSystems/lcd132/demo"
	"github.com/GermanBionicSystems/lcd132/framebuf"
	"github.com/GermanBionicSystems/lcd132/keypad"
	"github.com/GermanBionicSystems/lcd132/lcdshot"
	"github.com/GermanBionicSystems/lcd132/lcdsim"
	"github.com/GermanBionicSystems/lcd132/lcdweb"
	"github.com/GermanBionicSystems/lcd132/snake"
	"github.com/GermanBionicSystems/lcd132/termlcd"
	"github.com/GermanBionicSystems/lcd132/uc1701"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

type panelFlags struct {
	spi       string
	cs        string
	dc        string
	sck       string
	mosi      string
	rst       string
	bl        string
	keys      string
	common    string
	contrast  int
	backlight int
}

func (f *panelFlags) register() {
	flag.StringVar(&f.spi, "spi", "", "SPI port to use instead of bit-banging, e.g. \"SPI0.0\"")
	flag.StringVar(&f.cs, "cs", "GPIO8", "chip select pin")
	flag.StringVar(&f.dc, "dc", "GPIO25", "data/command pin")
	flag.StringVar(&f.sck, "sck", "GPIO11", "clock pin, bit-bang only")
	flag.StringVar(&f.mosi, "mosi", "GPIO10", "data pin, bit-bang only")
	flag.StringVar(&f.rst, "rst", "GPIO24", "reset pin, empty if not wired")
	flag.StringVar(&f.bl, "bl", "GPIO18", "backlight pin, empty if not wired")
	flag.StringVar(&f.keys, "keys", "GPIO4,GPIO5,GPIO16,GPIO17,GPIO27", "up,down,left,right,ok key pins")
	flag.StringVar(&f.common, "common", "", "pin driven low as the keys' common line, empty if tied to ground")
	flag.IntVar(&f.contrast, "contrast", -1, "contrast 0-63, -1 to keep the default")
	flag.IntVar(&f.backlight, "backlight", 255, "backlight intensity 0-255")
}

func pin(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("unknown pin %q", name)
	}
	return p, nil
}

// panel is the hardware: the display, its backlight and the key pad.
type panel struct {
	dev    *uc1701.Dev
	keys   *keypad.Dev
	closer func() error
}

func openPanel(f *panelFlags) (*panel, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	return newPanel(f)
}

// newPanel opens the hardware named by f in the pin and port registries.
// Everything opened is released on failure.
func newPanel(f *panelFlags) (*panel, error) {
	p := &panel{closer: func() error { return nil }}
	if err := p.open(f); err != nil {
		_ = p.closer()
		return nil, err
	}
	return p, nil
}

// open fills p. p.closer is set as soon as there is something to release.
func (p *panel) open(f *panelFlags) error {
	dc, err := pin(f.dc)
	if err != nil {
		return err
	}
	var t uc1701.Transport
	if f.spi != "" {
		port, err := spireg.Open(f.spi)
		if err != nil {
			return err
		}
		p.closer = port.Close
		if t, err = uc1701.NewSPI(port, dc, 0); err != nil {
			return err
		}
	} else {
		var pins [3]gpio.PinIO
		for i, n := range []string{f.cs, f.sck, f.mosi} {
			if pins[i], err = pin(n); err != nil {
				return err
			}
		}
		if t, err = uc1701.NewBitBang(pins[0], dc, pins[1], pins[2]); err != nil {
			return err
		}
	}
	var rst gpio.PinOut
	if f.rst != "" {
		if rst, err = pin(f.rst); err != nil {
			return err
		}
	}
	if p.dev, err = uc1701.New(t, rst, &uc1701.DefaultOpts); err != nil {
		return err
	}
	if f.contrast >= 0 {
		if err := p.dev.SetContrast(byte(f.contrast)); err != nil {
			return err
		}
	}
	if f.bl != "" {
		bl, err := pin(f.bl)
		if err != nil {
			return err
		}
		if err := uc1701.NewBacklight(bl).Backlight(display.Intensity(f.backlight)); err != nil {
			// Not fatal, the panel is readable without it.
			log.Printf("backlight: %v", err)
		}
	}
	names := strings.Split(f.keys, ",")
	if len(names) != 5 {
		return errors.New("-keys needs 5 pins")
	}
	var keys [5]gpio.PinIO
	for i, n := range names {
		if keys[i], err = pin(n); err != nil {
			return err
		}
	}
	opts := keypad.DefaultOpts
	if f.common != "" {
		if opts.Common, err = pin(f.common); err != nil {
			return err
		}
	}
	p.keys, err = keypad.New(keys[0], keys[1], keys[2], keys[3], keys[4], &opts)
	return err
}

// playDemo shows every frame of d on out, then returns.
func playDemo(ctx context.Context, d demo.Demo, out display.Drawer) error {
	b := framebuf.New(out.Bounds().Dx(), out.Bounds().Dy())
	for i := 0; i < d.Frames; i++ {
		d.Draw(b, i)
		if err := out.Draw(b.Bounds(), b, b.Bounds().Min); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.Delay):
		}
	}
	return nil
}

// keypadTest shows the key held until ctx is done.
func keypadTest(ctx context.Context, keys keypad.Reader, out display.Drawer) error {
	b := framebuf.New(out.Bounds().Dx(), out.Bounds().Dy())
	for {
		demo.KeypadTest(keys.Read())(b)
		if err := out.Draw(b.Bounds(), b, b.Bounds().Min); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(50 * time.Millisecond):
		}
	}
}

// run plays the game, or the demo named name, until ctx is done.
func run(ctx context.Context, name string, keys keypad.Reader, out display.Drawer) error {
	err := play(ctx, name, keys, out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func play(ctx context.Context, name string, keys keypad.Reader, out display.Drawer) error {
	switch name {
	case "":
		return snake.NewLoop(snake.New(nil), keys, snake.SystemClock{}, out).Run(ctx)
	case "keypad":
		return keypadTest(ctx, keys, out)
	case "all":
		for _, n := range demo.Names() {
			d, _ := demo.ByName(n)
			if err := playDemo(ctx, d, out); err != nil {
				return err
			}
		}
		return nil
	}
	d, ok := demo.ByName(name)
	if !ok {
		return fmt.Errorf("unknown demo %q; try one of %s", name, strings.Join(demo.Names(), ", "))
	}
	return playDemo(ctx, d, out)
}

func snapshot(path, name, caption string) error {
	b := framebuf.NewLCD()
	if name == "" {
		snake.New(nil).Render(b)
	} else {
		d, ok := demo.ByName(name)
		if !ok {
			return fmt.Errorf("unknown demo %q", name)
		}
		d.Draw(b, 0)
	}
	opts := lcdshot.DefaultOpts
	opts.Caption = caption
	return lcdshot.Save(path, b, &opts)
}

// terminalKeys puts the terminal in raw mode and reads keys from stdin. The
// returned context is cancelled when the quit key is pressed.
func terminalKeys(ctx context.Context) (context.Context, *termlcd.Keys, func(), error) {
	restore, err := termlcd.MakeRaw()
	if err != nil {
		return nil, nil, nil, err
	}
	keys := termlcd.NewKeys(&termlcd.KeysOpts{})
	go func() {
		_, _ = keys.ReadFrom(os.Stdin)
	}()
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		select {
		case <-keys.Quit():
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, keys, func() {
		cancel()
		_ = restore()
	}, nil
}

func mainImpl() error {
	var pf panelFlags
	pf.register()
	out := flag.String("out", "lcd", "where to draw: lcd, term, web or window")
	addr := flag.String("addr", "localhost:8132", "with -out web, address to listen on")
	name := flag.String("demo", "", "demo to show instead of the game, \"all\", \"keypad\" or \"list\"")
	shot := flag.String("png", "", "save the first frame to this PNG file and exit")
	caption := flag.String("caption", "", "caption under the -png image")
	halfBlocks := flag.Bool("halfblocks", false, "with -out term, draw two rows per line without colors")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	if *name == "list" {
		fmt.Println(strings.Join(demo.Names(), "\n"))
		return nil
	}
	if *shot != "" {
		return snapshot(*shot, *name, *caption)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *out {
	case "lcd":
		p, err := openPanel(&pf)
		if err != nil {
			return err
		}
		defer p.closer()
		err = run(ctx, *name, p.keys, p.dev)
		if err2 := p.dev.Halt(); err == nil {
			err = err2
		}
		return err

	case "term":
		opts := termlcd.DefaultOpts
		if *halfBlocks {
			opts.Palette = nil
		}
		dev := termlcd.New(&opts)
		ctx, keys, done, err := terminalKeys(ctx)
		if err != nil {
			return err
		}
		defer done()
		err = run(ctx, *name, keys, dev)
		_ = dev.Halt()
		return err

	case "web":
		srv := lcdweb.New(&lcdweb.DefaultOpts)
		hs := &http.Server{Addr: *addr, Handler: srv}
		errc := make(chan error, 1)
		go func() {
			errc <- hs.ListenAndServe()
		}()
		log.Printf("streaming on http://%s/", *addr)
		ctx, keys, done, err := terminalKeys(ctx)
		if err != nil {
			return err
		}
		defer done()
		select {
		case err = <-errc:
			return err
		default:
		}
		err = run(ctx, *name, keys, srv)
		_ = srv.Halt()
		if err2 := hs.Close(); err == nil {
			err = err2
		}
		return err

	case "window":
		screen := lcdsim.NewScreen(&lcdsim.DefaultOpts)
		if *name == "" {
			loop := snake.NewLoop(snake.New(nil), lcdsim.Keys{}, snake.SystemClock{}, screen)
			return lcdsim.Run(screen, loop.Poll)
		}
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		errc := make(chan error, 1)
		go func() {
			errc <- run(ctx, *name, lcdsim.Keys{}, screen)
		}()
		if err := lcdsim.Run(screen, nil); err != nil {
			return err
		}
		cancel()
		if err := <-errc; err != nil {
			return err
		}
		return nil
	}
	return fmt.Errorf("unknown -out %q", *out)
}

func main() {
	if err := mainImpl(); err != nil {
		log.Fatalf("lcdsnake: %v", err)
	}
}
