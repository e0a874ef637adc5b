package core

// Direction selects the stepper's rotation sense. Forward/reverse are
// logical: which physical direction they correspond to depends on wiring
// and is fixed by ForwardIsHigh.
type Direction bool

const (
	DirForward Direction = false
	DirReverse Direction = true
)

// ForwardIsHigh is the hardware-configured polarity: the dir pin level
// that corresponds to logical forward. Set once by target wiring code.
var ForwardIsHigh = true

func dirLevel(d Direction) bool {
	high := ForwardIsHigh
	if d == DirReverse {
		high = !high
	}
	return high
}

func clampRPM(rpm float64) float64 {
	if rpm == 0 {
		return DefaultRPM
	}
	if rpm < MinRPM {
		return MinRPM
	}
	return rpm
}

func stepsForDegrees(degrees int) int {
	d := degrees
	if d < 0 {
		d = -d
	}
	return d * Microsteps * StepsPerRevolution / 360
}

func targetDelayUS(rpm float64) uint32 {
	return uint32(30_000_000.0 / (rpm * Microsteps * StepsPerRevolution))
}

// ramp tracks the pulse generator's current half-period as steps are
// issued, per spec's accel/decel policy: 1us change every
// AccelDecelSkipSteps, floor/ceiling at SlowPulseDelayUS.
type ramp struct {
	current  uint32
	target   uint32
	accel    bool
	decel    bool
	reached  bool
}

func newRamp(accel, decel bool, target uint32) *ramp {
	r := &ramp{target: target, accel: accel, decel: decel}
	if accel {
		r.current = SlowPulseDelayUS
	} else {
		r.current = target
	}
	return r
}

func (r *ramp) afterStep(stepIndex, totalSteps int) {
	if r.accel && !r.reached && stepIndex%AccelDecelSkipSteps == 0 {
		if r.current > r.target {
			r.current--
			if r.current == r.target {
				r.reached = true
			}
		} else {
			r.reached = true
		}
	}
	if r.decel && totalSteps > 0 {
		if stepIndex*100 >= totalSteps*99 {
			if stepIndex%AccelDecelSkipSteps == 0 && r.current < SlowPulseDelayUS {
				r.current++
			}
		}
	}
}

// Rotate drives the stepper through |degrees| worth of steps at rpm,
// honoring accel/decel ramping and, if resetOnSensor is set, restarting
// the step count and ramp from zero whenever the hub reports an edge
// mid-motion. Returns the number of pulses actually issued.
func Rotate(degrees int, rpm float64, accel, decel, resetOnSensor bool, hub *HubState) int {
	if degrees == 0 {
		return 0
	}

	backend := MustStepperBackend()
	dir := DirForward
	if degrees < 0 {
		dir = DirReverse
	}

	rpm = clampRPM(rpm)
	target := targetDelayUS(rpm)
	totalSteps := stepsForDegrees(degrees)

	backend.SetDirection(dirLevel(dir))
	backend.Enable(true)

	var lastHub bool
	if resetOnSensor && hub != nil {
		lastHub = hub.Read()
	}

	issued := 0
	r := newRamp(accel, decel, target)
	stepIndex := 0
	for stepIndex < totalSteps {
		backend.AssertStep()
		BusyWaitUS(r.current)
		backend.DeassertStep()
		BusyWaitUS(r.current)

		issued++
		stepIndex++
		r.afterStep(stepIndex, totalSteps)

		if resetOnSensor && hub != nil {
			current := hub.Read()
			if current != lastHub {
				lastHub = current
				stepIndex = 0
				r = newRamp(accel, decel, target)
			}
		}
	}

	backend.Enable(false)
	return issued
}
