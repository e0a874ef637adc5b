package core

import "mmufw/protocol"

// AliveIntervalMS is how often the heartbeat line is emitted.
const AliveIntervalMS = 5000

// LongPressMS is the action-button hold duration that triggers
// auto-extrude instead of a short-press release.
const LongPressMS = 1000

// StartupBlinkIntervalMS is the toggle period of the whole-strip orange
// blink shown before START has been received.
const StartupBlinkIntervalMS = 500

// Poll runs C5's three sub-tasks once. Called every main-loop iteration
// while Started is true. now is the current millisecond clock.
func (mc *Controller) Poll(now uint32) {
	mc.pollFilamentSensors()
	mc.pollHub()
	mc.pollButton(now)

	if now-mc.RuntimeState.PreviousAliveMS >= AliveIntervalMS {
		mc.RuntimeState.PreviousAliveMS = now
		SendLine(protocol.ReplyAlive)
	}
}

// PollStartup runs the idle-waiting indicator: every StartupBlinkIntervalMS
// it toggles all 8 channel pixels between orange and off. Called every
// main-loop iteration while Started is false, in place of Poll.
func (mc *Controller) PollStartup(now uint32) {
	if now-mc.RuntimeState.PreviousStartupBlinkMS < StartupBlinkIntervalMS {
		return
	}
	mc.RuntimeState.PreviousStartupBlinkMS = now
	mc.RuntimeState.StartupBlinkOn = !mc.RuntimeState.StartupBlinkOn

	color := ColorOff
	if mc.RuntimeState.StartupBlinkOn {
		color = ColorOrange
	}
	for i := 0; i < 8; i++ {
		MustLEDs().SetChannel(i, color)
	}
	MustLEDs().Show()
}

func (mc *Controller) pollFilamentSensors() {
	active := mc.RuntimeState.ActiveFilament
	for i := 0; i < 8; i++ {
		present, err := MustExpander().FilamentPresent(i)
		if err != nil {
			Warnf("poll: filament sensor " + itoa(i) + ": " + err.Error())
			continue
		}
		if present == mc.Channels.Present(i) {
			continue
		}
		mc.Channels.SetFilamentPresent(i, present)
		if present {
			Infof("filament present on channel " + itoa(i))
		} else {
			Infof("filament lost on channel " + itoa(i))
		}

		if i == active {
			if present {
				mc.Channels.SetVisual(i, VisualOK)
				MustLEDs().SetChannel(i, ColorGreen)
				mc.Channels.SetMissingSignal(false)
				MustBuzzer().Play(MelodyInsert)
			} else {
				mc.Channels.SetVisual(i, VisualMissing)
				MustLEDs().SetChannel(i, ColorRed)
				mc.Channels.SetMissingSignal(true)
				MustBuzzer().Play(MelodyRemove)
			}
		} else if present {
			MustLEDs().SetChannel(i, ColorCyan)
		} else {
			MustLEDs().SetChannel(i, ColorOff)
		}
		MustLEDs().Show()
	}
}

func (mc *Controller) pollHub() {
	if !mc.Hub.ObserveEdge() {
		return
	}
	active := mc.RuntimeState.ActiveFilament
	if active < 0 || !mc.Channels.Present(active) {
		return
	}
	mc.Channels.SetMissingSignal(false)
	mc.Channels.SetVisual(active, VisualOK)
	MustLEDs().SetChannel(active, ColorGreen)
	MustLEDs().Show()
}

func (mc *Controller) pollButton(now uint32) {
	down, err := MustExpander().ButtonPressed()
	if err != nil {
		Warnf("poll: action button: " + err.Error())
		return
	}

	if down && !mc.RuntimeState.ActionButtonDown {
		mc.RuntimeState.ActionButtonDown = true
		mc.RuntimeState.ActionButtonPressStartMS = now
		return
	}
	if !down && mc.RuntimeState.ActionButtonDown {
		mc.RuntimeState.ActionButtonDown = false
		duration := now - mc.RuntimeState.ActionButtonPressStartMS
		MustBuzzer().Play(MelodyClick)

		active := mc.RuntimeState.ActiveFilament
		if duration > LongPressMS && active >= 0 && mc.Channels.Present(active) && mc.Hub.Read() {
			mc.RuntimeState.AutoExtruding = true
			angle := mc.Channels.Items[active].ServoAngle
			MustServo().Attach(ServoSelector)
			MustServo().WriteAngle(ServoSelector, angle)
			MustServo().Detach(ServoSelector)
			mc.Extrude(mc.Motion.ExtrudeMM, DefaultRPM)
			mc.Release()
			mc.RuntimeState.AutoExtruding = false
			return
		}
		mc.Release()
	}
}
