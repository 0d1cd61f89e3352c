// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uc1701

import (
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// BacklightFrequency is the PWM frequency driving the backlight LED.
const BacklightFrequency = 5 * physic.KiloHertz

// PWMBacklight dims the panel LED with PWM on a single GPIO pin. It
// implements display.DisplayBacklight.
type PWMBacklight struct {
	pin  gpio.PinOut
	freq physic.Frequency
}

// NewBacklight returns a backlight driven by pin at BacklightFrequency.
func NewBacklight(pin gpio.PinOut) *PWMBacklight {
	return &PWMBacklight{pin: pin, freq: BacklightFrequency}
}

// Backlight sets the intensity, from 0 (off) to 255 (full).
//
// The extremes drive the pin as a plain output so pins without PWM support
// can still turn the light on and off.
func (bl *PWMBacklight) Backlight(intensity display.Intensity) error {
	switch {
	case intensity <= 0:
		return bl.pin.Out(gpio.Low)
	case intensity >= 255:
		return bl.pin.Out(gpio.High)
	default:
		return bl.pin.PWM(gpio.Duty(int64(gpio.DutyMax)*int64(intensity)/255), bl.freq)
	}
}

func (bl *PWMBacklight) String() string {
	return "PWMBacklight{" + bl.pin.String() + "}"
}

var _ display.DisplayBacklight = &PWMBacklight{}
