// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uc1701

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Transport sends bytes to the controller with the data/command line set
// accordingly.
//
// Each call is a complete transfer framed by chip select.
type Transport interface {
	SendCommand(c byte) error
	SendData(d byte) error
	SendDataBlock(d []byte) error
}

// BitBang is a Transport that clocks the bus over four GPIO pins.
//
// Bytes are sent MSB first. The clock idles high; data is set while the
// clock is low and sampled by the controller on the rising edge.
type BitBang struct {
	cs, dc, sck, mosi gpio.PinOut
}

// NewBitBang returns a Transport over the four pins and sets them to their
// idle levels: CS high, DC low, SCK high, MOSI high.
func NewBitBang(cs, dc, sck, mosi gpio.PinOut) (*BitBang, error) {
	for _, p := range []gpio.PinOut{cs, dc, sck, mosi} {
		if p == nil || p == gpio.INVALID {
			return nil, errors.New("uc1701: all bit-bang pins are required")
		}
	}
	b := &BitBang{cs: cs, dc: dc, sck: sck, mosi: mosi}
	for _, s := range []struct {
		p gpio.PinOut
		l gpio.Level
	}{{cs, gpio.High}, {dc, gpio.Low}, {sck, gpio.High}, {mosi, gpio.High}} {
		if err := s.p.Out(s.l); err != nil {
			return nil, fmt.Errorf("uc1701: %s: %w", s.p, err)
		}
	}
	return b, nil
}

func (b *BitBang) String() string {
	return fmt.Sprintf("BitBang{%s, %s, %s, %s}", b.cs, b.dc, b.sck, b.mosi)
}

// SendCommand implements Transport.
func (b *BitBang) SendCommand(c byte) error {
	return b.transfer(gpio.Low, []byte{c})
}

// SendData implements Transport.
func (b *BitBang) SendData(d byte) error {
	return b.transfer(gpio.High, []byte{d})
}

// SendDataBlock implements Transport.
//
// The whole block is sent within a single chip select.
func (b *BitBang) SendDataBlock(d []byte) error {
	return b.transfer(gpio.High, d)
}

func (b *BitBang) transfer(dc gpio.Level, d []byte) error {
	if err := b.cs.Out(gpio.Low); err != nil {
		return err
	}
	if err := b.dc.Out(dc); err != nil {
		return err
	}
	for _, v := range d {
		if err := b.writeByte(v); err != nil {
			return err
		}
	}
	return b.cs.Out(gpio.High)
}

func (b *BitBang) writeByte(v byte) error {
	for i := 7; i >= 0; i-- {
		if err := b.sck.Out(gpio.Low); err != nil {
			return err
		}
		if err := b.mosi.Out(gpio.Level(v&(1<<uint(i)) != 0)); err != nil {
			return err
		}
		if err := b.sck.Out(gpio.High); err != nil {
			return err
		}
	}
	return nil
}

// SPI is a Transport over a hardware SPI port and a GPIO for data/command.
type SPI struct {
	c  spi.Conn
	dc gpio.PinOut
}

// DefaultSPIFrequency is a conservative clock for the controller.
const DefaultSPIFrequency = 4 * physic.MegaHertz

// NewSPI returns a Transport over p.
//
// The controller samples on the rising edge with the clock idling high,
// which is SPI mode 3. Use 0 for f to use DefaultSPIFrequency.
func NewSPI(p spi.Port, dc gpio.PinOut, f physic.Frequency) (*SPI, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, errors.New("uc1701: dc pin is required")
	}
	if err := dc.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("uc1701: %w", err)
	}
	if f == 0 {
		f = DefaultSPIFrequency
	}
	c, err := p.Connect(f, spi.Mode3, 8)
	if err != nil {
		return nil, fmt.Errorf("uc1701: %w", err)
	}
	return &SPI{c: c, dc: dc}, nil
}

func (s *SPI) String() string {
	return fmt.Sprintf("SPI{%s, %s}", s.c, s.dc)
}

// SendCommand implements Transport.
func (s *SPI) SendCommand(c byte) error {
	if err := s.dc.Out(gpio.Low); err != nil {
		return err
	}
	return s.c.Tx([]byte{c}, nil)
}

// SendData implements Transport.
func (s *SPI) SendData(d byte) error {
	return s.SendDataBlock([]byte{d})
}

// SendDataBlock implements Transport.
func (s *SPI) SendDataBlock(d []byte) error {
	if err := s.dc.Out(gpio.High); err != nil {
		return err
	}
	return s.c.Tx(d, nil)
}

var _ Transport = &BitBang{}
var _ Transport = &SPI{}
