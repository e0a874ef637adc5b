//go:build rp2040

package main

import (
	"mmufw/core"

	"machine"
)

// RPStepperBackend toggles the feeder stepper's step/dir/enable lines
// directly; the pulse generator in core owns all timing.
type RPStepperBackend struct {
	stepPin, dirPin, enablePin machine.Pin
}

// NewRPStepperBackend configures the three control pins as outputs.
func NewRPStepperBackend(stepPin, dirPin, enablePin machine.Pin) *RPStepperBackend {
	stepPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	dirPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	enablePin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	enablePin.Set(true) // active-low: idle disabled
	return &RPStepperBackend{stepPin: stepPin, dirPin: dirPin, enablePin: enablePin}
}

// Init is a no-op: pins are fixed and configured by NewRPStepperBackend.
func (b *RPStepperBackend) Init(stepPin, dirPin, enablePin core.GPIOPin) error { return nil }

func (b *RPStepperBackend) Enable(on bool) error {
	b.enablePin.Set(!on) // active-low
	return nil
}

func (b *RPStepperBackend) SetDirection(dir bool) error {
	b.dirPin.Set(dir)
	return nil
}

func (b *RPStepperBackend) AssertStep() error {
	b.stepPin.High()
	return nil
}

func (b *RPStepperBackend) DeassertStep() error {
	b.stepPin.Low()
	return nil
}

func (b *RPStepperBackend) GetName() string { return "rp2040-stepper" }
