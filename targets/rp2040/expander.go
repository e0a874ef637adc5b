//go:build rp2040

package main

import (
	"mmufw/core"
)

// pcf8574Addr is the default I2C address for the PCF8574 8-bit I/O
// expander multiplexing the eight filament sensors and the action button.
// Per spec, all inputs are active-low.
const pcf8574Addr core.I2CAddress = 0x20

// PCF8574Expander reads the eight filament sensors (bits 0-7) through a
// PCF8574 on the given I2C bus. The action button shares bit 7's pin in
// single-expander wiring configurations; boards with a dedicated button
// input should wire it to core.MustGPIO() instead and leave
// ButtonPressed's bit index unused.
type PCF8574Expander struct {
	bus        core.I2CBusID
	buttonBit  uint8
}

// NewPCF8574Expander returns a driver ready to register with
// core.SetExpanderDriver.
func NewPCF8574Expander(bus core.I2CBusID, buttonBit uint8) *PCF8574Expander {
	return &PCF8574Expander{bus: bus, buttonBit: buttonBit}
}

func (e *PCF8574Expander) Init() error {
	return core.MustI2C().ConfigureBus(e.bus, 100000)
}

func (e *PCF8574Expander) read() (byte, error) {
	data, err := core.MustI2C().Read(e.bus, pcf8574Addr, nil, 1)
	if err != nil {
		return 0, err
	}
	if len(data) == 0 {
		return 0xFF, nil
	}
	return data[0], nil
}

func (e *PCF8574Expander) FilamentPresent(channel int) (bool, error) {
	if channel < 0 || channel > 7 {
		return false, nil
	}
	bits, err := e.read()
	if err != nil {
		return false, err
	}
	return bits&(1<<uint(channel)) == 0, nil // active-low
}

func (e *PCF8574Expander) ButtonPressed() (bool, error) {
	bits, err := e.read()
	if err != nil {
		return false, err
	}
	return bits&(1<<e.buttonBit) == 0, nil
}
