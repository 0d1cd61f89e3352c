// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uc1701

import (
	"strings"
	"testing"

	"github.com/GermanBionicSystems/lcd132/framebuf"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"
)

type event struct {
	pin string
	l   gpio.Level
}

// recordingPin logs every level written to it, in order across pins.
type recordingPin struct {
	gpiotest.Pin
	events *[]event
}

func (p *recordingPin) Out(l gpio.Level) error {
	*p.events = append(*p.events, event{p.N, l})
	return p.Pin.Out(l)
}

// frame is one chip select period as seen by the controller.
type frame struct {
	data  bool
	bytes []byte
}

// decode replays pin events the way the controller samples them: a bit is
// shifted in on each rising clock edge while CS is low.
func decode(t *testing.T, events []event) []frame {
	level := map[string]gpio.Level{"CS": gpio.High, "DC": gpio.Low, "SCK": gpio.High, "MOSI": gpio.High}
	var out []frame
	var cur byte
	n := 0
	for _, e := range events {
		prev := level[e.pin]
		level[e.pin] = e.l
		switch e.pin {
		case "CS":
			if prev == gpio.High && e.l == gpio.Low {
				out = append(out, frame{})
			} else if prev == gpio.Low && e.l == gpio.High && n != 0 {
				t.Errorf("CS released after %d bits", n)
			}
		case "DC":
			if level["CS"] == gpio.Low {
				out[len(out)-1].data = bool(e.l)
			}
		case "MOSI":
			if level["CS"] == gpio.Low && level["SCK"] == gpio.High {
				t.Error("MOSI changed while SCK is high")
			}
		case "SCK":
			if prev == gpio.Low && e.l == gpio.High && level["CS"] == gpio.Low {
				cur = cur<<1 | bitOf(level["MOSI"])
				if n++; n == 8 {
					f := &out[len(out)-1]
					f.bytes = append(f.bytes, cur)
					cur, n = 0, 0
				}
			}
		}
	}
	if level["CS"] != gpio.High || level["SCK"] != gpio.High {
		t.Error("bus not left idle")
	}
	return out
}

func bitOf(l gpio.Level) byte {
	if l {
		return 1
	}
	return 0
}

func newBitBang(t *testing.T) (*BitBang, *[]event) {
	var events []event
	pin := func(n string) *recordingPin {
		return &recordingPin{Pin: gpiotest.Pin{N: n}, events: &events}
	}
	b, err := NewBitBang(pin("CS"), pin("DC"), pin("SCK"), pin("MOSI"))
	if err != nil {
		t.Fatal(err)
	}
	return b, &events
}

func TestNewBitBang(t *testing.T) {
	b, events := newBitBang(t)
	want := []event{{"CS", gpio.High}, {"DC", gpio.Low}, {"SCK", gpio.High}, {"MOSI", gpio.High}}
	if diff := cmp.Diff(*events, want, cmp.AllowUnexported(event{})); diff != "" {
		t.Fatalf("idle levels difference (-got +want):\n%s", diff)
	}
	if s := b.String(); !strings.HasPrefix(s, "BitBang{CS") {
		t.Fatalf("String() = %q", s)
	}
	if _, err := NewBitBang(nil, &gpiotest.Pin{}, &gpiotest.Pin{}, &gpiotest.Pin{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestBitBang(t *testing.T) {
	b, events := newBitBang(t)
	*events = (*events)[:0]
	if err := b.SendCommand(0xA5); err != nil {
		t.Fatal(err)
	}
	if err := b.SendData(0x3C); err != nil {
		t.Fatal(err)
	}
	if err := b.SendDataBlock([]byte{0x01, 0x80, 0xFF}); err != nil {
		t.Fatal(err)
	}
	want := []frame{
		{data: false, bytes: []byte{0xA5}},
		{data: true, bytes: []byte{0x3C}},
		{data: true, bytes: []byte{0x01, 0x80, 0xFF}},
	}
	if diff := cmp.Diff(decode(t, *events), want, cmp.AllowUnexported(frame{})); diff != "" {
		t.Fatalf("decoded difference (-got +want):\n%s", diff)
	}
}

func TestBitBang_dev(t *testing.T) {
	stubSleep(t)
	b, events := newBitBang(t)
	opts := DefaultOpts
	d, err := New(b, nil, &opts)
	if err != nil {
		t.Fatal(err)
	}
	frames := decode(t, *events)
	if len(frames) != 30+8*4 {
		t.Fatalf("got %d frames during init", len(frames))
	}

	*events = (*events)[:0]
	buf := framebuf.NewLCD()
	buf.SetBit(131, 47, framebuf.On)
	if err := d.Flush(buf); err != nil {
		t.Fatal(err)
	}
	frames = decode(t, *events)
	if len(frames) != 6*4 {
		t.Fatalf("got %d frames during flush", len(frames))
	}
	last := frames[len(frames)-4:]
	want := []frame{
		{bytes: []byte{0xB5}},
		{bytes: []byte{0x10}},
		{bytes: []byte{0x00}},
		{data: true, bytes: buf.Page(5)},
	}
	if diff := cmp.Diff(last, want, cmp.AllowUnexported(frame{})); diff != "" {
		t.Fatalf("last page difference (-got +want):\n%s", diff)
	}
}

func TestSPI(t *testing.T) {
	r := &spitest.Record{}
	dc := &gpiotest.Pin{N: "DC"}
	s, err := NewSPI(r, dc, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SendCommand(0xAF); err != nil {
		t.Fatal(err)
	}
	if dc.L != gpio.Low {
		t.Fatal("DC must be low for commands")
	}
	if err := s.SendData(0x42); err != nil {
		t.Fatal(err)
	}
	if err := s.SendDataBlock([]byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if dc.L != gpio.High {
		t.Fatal("DC must be high for data")
	}
	want := []conntest.IO{{W: []byte{0xAF}}, {W: []byte{0x42}}, {W: []byte{1, 2, 3}}}
	if diff := cmp.Diff(r.Ops, want, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("Tx difference (-got +want):\n%s", diff)
	}
	if _, err := NewSPI(r, nil, 0); err == nil {
		t.Fatal("expected error")
	}
}

func TestSPI_dev(t *testing.T) {
	stubSleep(t)
	r := &spitest.Record{}
	s, err := NewSPI(r, &gpiotest.Pin{N: "DC"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	opts := DefaultOpts
	if _, err := New(s, &gpiotest.Pin{N: "RST"}, &opts); err != nil {
		t.Fatal(err)
	}
	if len(r.Ops) != 30+8*4 {
		t.Fatalf("got %d transfers during init", len(r.Ops))
	}
	if diff := cmp.Diff(r.Ops[len(r.Ops)-1].W, make([]byte, 132)); diff != "" {
		t.Fatalf("last transfer difference (-got +want):\n%s", diff)
	}
}
