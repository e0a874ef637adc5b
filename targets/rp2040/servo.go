//go:build rp2040

package main

import (
	"mmufw/core"

	"machine"
	"tinygo.org/x/drivers/servo"
)

// PWMServos drives the two positioning servos (selector, cutter) through
// tinygo.org/x/drivers' servo package. Attach reconfigures the PWM output
// for each move; Detach leaves it running, so the servo keeps its last
// position energized between moves.
type PWMServos struct {
	selectorPin machine.Pin
	cutterPin   machine.Pin
	selector    servo.Servo
	cutter      servo.Servo
}

// NewPWMServos returns a driver over the given selector/cutter pins,
// ready to register with core.SetServoDriver.
func NewPWMServos(selectorPin, cutterPin machine.Pin) *PWMServos {
	return &PWMServos{selectorPin: selectorPin, cutterPin: cutterPin}
}

// pwmAndPin returns the PWM peripheral backing each servo pin. Selector
// (GP14) and cutter (GP15) share RP2040 PWM slice 7's two channels.
func (d *PWMServos) pwmAndPin(id core.ServoID) (pwmPeripheral, machine.Pin) {
	if id == core.ServoCutter {
		return machine.PWM7, d.cutterPin
	}
	return machine.PWM7, d.selectorPin
}

func (d *PWMServos) Attach(id core.ServoID) error {
	pwm, pin := d.pwmAndPin(id)
	s, err := servo.New(pwm, pin)
	if err != nil {
		return err
	}
	if id == core.ServoCutter {
		d.cutter = s
	} else {
		d.selector = s
	}
	return nil
}

func (d *PWMServos) WriteAngle(id core.ServoID, degrees int) error {
	if degrees < 0 {
		degrees = 0
	}
	if degrees > 180 {
		degrees = 180
	}
	if id == core.ServoCutter {
		return d.cutter.SetAngle(uint8(degrees))
	}
	return d.selector.SetAngle(uint8(degrees))
}

func (d *PWMServos) Detach(id core.ServoID) error {
	// tinygo.org/x/drivers/servo has no explicit detach. Leaving the PWM
	// channel at its last duty cycle is harmless between brief command
	// windows; re-Attach reconfigures it on the next move.
	return nil
}
