package core

// stepsToMM converts an issued step count back into millimeters of
// filament travel, per spec's reporting formula.
func stepsToMM(steps int, mmPerRotation float64) float64 {
	degrees := float64(steps) * 360.0 / (Microsteps * StepsPerRevolution)
	return degrees * mmPerRotation / 360.0
}

func mmToDegrees(mm, mmPerRotation float64) int {
	if mmPerRotation == 0 {
		return 0
	}
	return int(mm / mmPerRotation * 360.0)
}

// Feed is the sensor-tracked, two-phase move C2 describes: a ramp-up hunt
// toward the hub transitioning to targetHub, then a fixed overshoot or
// undershoot of millimeters issued with decel only. stallMM bounds the
// hunt phase; exceeding it without the expected transition marks the
// channel stalled rather than aborting the move.
func (mc *Controller) Feed(targetHub bool, millimeters, stallMM, rpm float64, dir Direction) {
	if millimeters == 0 {
		return
	}

	ch := mc.RuntimeState.ActiveFilament
	stalled := false

	if mc.Hub.Read() == targetHub {
		mc.setChannelStall(ch)
		Warnf("feed: hub already at target state, proceeding with stall flagged")
		stalled = true
	}

	backend := MustStepperBackend()
	backend.SetDirection(dirLevel(dir))
	backend.Enable(true)

	stallSteps := int(stallMM / mc.Motion.MMPerRotation * StepsPerRevolution * Microsteps)
	minRetractSteps := int(mc.Motion.MinRetractMM / mc.Motion.MMPerRotation * StepsPerRevolution * Microsteps)

	r := newRamp(true, false, targetDelayUS(clampRPM(rpm)))
	issued := 0
	aborted := false

	for {
		backend.AssertStep()
		BusyWaitUS(r.current)
		backend.DeassertStep()
		BusyWaitUS(r.current)
		issued++
		r.afterStep(issued, 0)

		if dir == DirReverse && issued > stallSteps && issued > minRetractSteps {
			mc.setChannelStall(ch)
			Warnf("feed: reverse stall")
			stalled = true
			break
		}
		if dir == DirForward && issued > stallSteps && !mc.RuntimeState.AutoExtruding {
			mc.setChannelStall(ch)
			Warnf("feed: forward stall")
			stalled = true
			break
		}

		if issued%SensorCheckInterval == 0 {
			present, err := MustExpander().FilamentPresent(ch)
			if err != nil {
				Warnf("feed: sensor read: " + err.Error())
			} else if !present {
				aborted = true
				break
			}
		}

		hubNow := mc.Hub.Read()
		if hubNow == targetHub && !stalled {
			if dir != DirReverse || issued >= minRetractSteps {
				break
			}
		}
	}

	if aborted {
		backend.Enable(false)
		mc.Channels.SetMissingSignal(true)
		mc.Channels.SetVisual(ch, VisualMissing)
		MustBuzzer().Play(MelodyError)
		MustLEDs().BlinkChannel(ch, ColorRed)
		MustLEDs().Show()
		return
	}

	if !stalled {
		pastSensorMM := millimeters
		if dir == DirReverse {
			pastSensorMM = -pastSensorMM
		}
		degrees := mmToDegrees(pastSensorMM, mc.Motion.MMPerRotation)
		extra := Rotate(degrees, rpm, false, true, dir == DirReverse, mc.Hub)
		issued += extra
	}

	Infof("feed: " + itoa(issued) + " steps (" +
		itoaFloat(stepsToMM(issued, mc.Motion.MMPerRotation)) + "mm)")

	backend.Enable(false)
}

func (mc *Controller) setChannelStall(ch int) {
	if ch < 0 || ch > 7 {
		return
	}
	mc.Channels.SetVisual(ch, VisualStall)
	mc.Hub.SetStalled(true)
}

// Extrude pushes filament forward until the hub reports empty-to-loaded,
// then an additional mm past that point.
func (mc *Controller) Extrude(mm, rpm float64) {
	stallMM := mc.Motion.MMToStuck + mc.Motion.RetractMM + mm
	mc.Feed(false, mm, stallMM, rpm, DirForward)
}

// Retract pulls filament back until the hub reports loaded-to-empty, then
// an additional mm past that point, with reset_on_sensor so the overshoot
// is measured from the sensor edge rather than the starting position.
func (mc *Controller) Retract(mm, rpm float64) {
	stallMM := mc.Motion.ExtrudeMM + mm
	mc.Feed(true, mm, stallMM, rpm, DirReverse)
}
