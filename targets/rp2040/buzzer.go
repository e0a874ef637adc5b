//go:build rp2040

package main

import (
	"mmufw/core"

	"machine"
)

// PiezoBuzzer plays named melodies as a sequence of tones on a PWM-driven
// piezo pin. Melodies are small enough to run synchronously; none of them
// is longer than a few hundred milliseconds. Tones are driven through
// core.PWMDriver rather than talking to the machine package directly, so
// the same slice/channel bookkeeping that serves hardware PWM elsewhere
// also covers the buzzer.
type PiezoBuzzer struct {
	pin core.PWMPin
}

// NewPiezoBuzzer wraps the given pin for tone output via core.MustPWM().
func NewPiezoBuzzer(pin machine.Pin) *PiezoBuzzer {
	return &PiezoBuzzer{pin: core.PWMPin(pin)}
}

func (b *PiezoBuzzer) tone(hz uint32, ms uint32) {
	if hz == 0 {
		core.BusyWaitUS(ms * 1000)
		return
	}
	cycleTicks := core.TimerFreq / hz
	core.MustPWM().ConfigureHardwarePWM(b.pin, cycleTicks)
	core.MustPWM().SetDutyCycle(b.pin, core.PWMValue(core.MustPWM().GetMaxValue()/2))
	core.BusyWaitUS(ms * 1000)
	core.MustPWM().SetDutyCycle(b.pin, 0)
}

func (b *PiezoBuzzer) Play(m core.Melody) error {
	switch m {
	case core.MelodyClick:
		b.tone(2000, 30)
	case core.MelodyInsert:
		b.tone(1500, 60)
		b.tone(2200, 60)
	case core.MelodyRemove:
		b.tone(2200, 60)
		b.tone(1500, 60)
	case core.MelodyError:
		b.tone(400, 150)
		b.tone(400, 150)
	case core.MelodyStartup:
		b.tone(1200, 80)
		b.tone(1600, 80)
		b.tone(2000, 120)
	}
	return nil
}
