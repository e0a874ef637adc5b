package core

// Select performs a tool change to channel i (C4): sets every other
// channel's indicator to cyan (present) or off (absent), arms channel i's,
// moves the selector servo, and verifies presence.
// Returns true if the channel was present and selection succeeded.
func (mc *Controller) Select(i int) bool {
	for j := 0; j < 8; j++ {
		if j == i {
			continue
		}
		if mc.Channels.Present(j) {
			mc.Channels.SetVisual(j, VisualIdle)
			MustLEDs().SetChannel(j, ColorCyan)
		} else {
			MustLEDs().SetChannel(j, ColorOff)
		}
	}
	mc.Channels.SetVisual(i, VisualArmed)
	MustLEDs().SetChannel(i, ColorOrange)
	MustLEDs().Show()

	angle := mc.Channels.Items[i].ServoAngle
	MustServo().Attach(ServoSelector)
	MustServo().WriteAngle(ServoSelector, angle)
	MustServo().Detach(ServoSelector)
	mc.RuntimeState.LastServoPos = angle
	mc.RuntimeState.ActiveFilament = i

	if mc.Channels.Present(i) {
		mc.Channels.SetMissingSignal(false)
		color := ColorGreen
		if mc.Hub.Stalled() {
			color = ColorYellow
		}
		mc.Channels.SetVisual(i, VisualOK)
		MustLEDs().SetChannel(i, color)
		MustLEDs().Show()
		return true
	}

	mc.Channels.SetMissingSignal(true)
	mc.Channels.SetVisual(i, VisualMissing)
	MustLEDs().SetChannel(i, ColorRed)
	MustLEDs().Show()
	MustBuzzer().Play(MelodyError)
	MustLEDs().BlinkChannel(i, ColorRed)
	return false
}

// Release parks the selector servo at channel 7's position if the last
// servo position was above 90 degrees, else at channel 0's position, and
// restores every channel's indicator.
func (mc *Controller) Release() {
	target := mc.Channels.Items[0].ServoAngle
	if mc.RuntimeState.LastServoPos > 90 {
		target = mc.Channels.Items[7].ServoAngle
	}

	MustServo().Attach(ServoSelector)
	MustServo().WriteAngle(ServoSelector, target)
	MustServo().Detach(ServoSelector)
	mc.RuntimeState.LastServoPos = target

	for j := 0; j < 8; j++ {
		if mc.Channels.Present(j) {
			MustLEDs().SetChannel(j, ColorCyan)
		} else {
			MustLEDs().SetChannel(j, ColorOff)
		}
	}
	MustLEDs().Show()
}
