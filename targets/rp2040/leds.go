//go:build rp2040

package main

import (
	"image/color"

	"mmufw/core"

	"machine"
	"tinygo.org/x/drivers/ws2812"
)

// WS2812LEDs drives the eight-pixel indicator strip, one pixel per
// filament channel, via tinygo.org/x/drivers' ws2812 bit-bang driver.
type WS2812LEDs struct {
	dev    ws2812.Device
	pixels [8]color.RGBA
}

// NewWS2812LEDs configures the strip's data pin and returns a driver ready
// to register with core.SetLEDDriver.
func NewWS2812LEDs(pin machine.Pin) *WS2812LEDs {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &WS2812LEDs{dev: ws2812.New(pin)}
}

func (d *WS2812LEDs) SetChannel(channel int, c core.LEDColor) error {
	if channel < 0 || channel > 7 {
		return nil
	}
	d.pixels[channel] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	return nil
}

func (d *WS2812LEDs) Show() error {
	return d.dev.WriteColors(d.pixels[:])
}

// BlinkChannel flashes one pixel five times and leaves it lit on c,
// leaving every other pixel untouched.
func (d *WS2812LEDs) BlinkChannel(channel int, c core.LEDColor) error {
	if channel < 0 || channel > 7 {
		return nil
	}
	on := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	off := color.RGBA{}

	for i := 0; i < 5; i++ {
		d.pixels[channel] = on
		if err := d.dev.WriteColors(d.pixels[:]); err != nil {
			return err
		}
		core.BusyWaitUS(200000)

		d.pixels[channel] = off
		if err := d.dev.WriteColors(d.pixels[:]); err != nil {
			return err
		}
		core.BusyWaitUS(200000)
	}

	d.pixels[channel] = on
	return d.dev.WriteColors(d.pixels[:])
}

func (d *WS2812LEDs) BlinkAll(c core.LEDColor) error {
	for i := range d.pixels {
		d.pixels[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	}
	if err := d.dev.WriteColors(d.pixels[:]); err != nil {
		return err
	}
	core.BusyWaitUS(200000)
	for i := range d.pixels {
		d.pixels[i] = color.RGBA{}
	}
	if err := d.dev.WriteColors(d.pixels[:]); err != nil {
		return err
	}
	core.BusyWaitUS(200000)
	return nil
}
