package core

import (
	"strings"

	"mmufw/protocol"
)

// Dispatch parses one trimmed, uppercased host line and executes the
// matching command. Replies are written via SendLine as the protocol
// requires: OK/ERROR for most commands, with FILAMENT_RELEASE and RETRACT
// replying OK before the motion they trigger.
func (mc *Controller) Dispatch(line string) {
	line = protocol.NormalizeLine(line)
	if line == "" {
		return
	}
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "START":
		mc.cmdStart()
	case "SYNC":
		mc.cmdSync(args)
	case "FILAMENT":
		mc.cmdFilament(args)
	case "FILAMENT_RELEASE":
		mc.cmdFilamentRelease()
	case "EXTRUDE":
		mc.cmdExtrude(args)
	case "RETRACT":
		mc.cmdRetract(args)
	case "SWAP_FINISH":
		mc.cmdSwapFinish()
	case "CUTTER_POSITION":
		mc.cmdServoPosition(ServoCutter, args)
	case "MMU_POSITION":
		mc.cmdServoPosition(ServoSelector, args)
	case "MMU_ROTATE":
		mc.cmdMMURotate(args)
	case "MIDI":
		mc.cmdMIDI(args)
	case "TEST_LED":
		mc.cmdTestLED(args)
	case "TEST_LEDS":
		mc.cmdTestLEDs()
	case "STRESS":
		mc.cmdStress()
	default:
		Errorf("unknown command: " + cmd)
		SendLine(protocol.ReplyError)
	}
}

func parseInt(s string) (int, bool) {
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}

func parseFloat(s string) (float64, bool) {
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}
	whole := 0.0
	frac := 0.0
	fracDiv := 1.0
	seenDot := false
	seenDigit := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' && !seenDot {
			seenDot = true
			continue
		}
		if c < '0' || c > '9' {
			return 0, false
		}
		seenDigit = true
		if seenDot {
			frac = frac*10 + float64(c-'0')
			fracDiv *= 10
		} else {
			whole = whole*10 + float64(c-'0')
		}
	}
	if !seenDigit {
		return 0, false
	}
	v := whole + frac/fracDiv
	if neg {
		v = -v
	}
	return v, true
}

func (mc *Controller) cmdStart() {
	if err := MustExpander().Init(); err != nil {
		Errorf("expander init failed: " + err.Error())
		for {
			MustLEDs().BlinkAll(ColorRed)
		}
	}
	MustBuzzer().Play(MelodyStartup)
	for i := 0; i < 8; i++ {
		MustLEDs().SetChannel(i, ColorOff)
	}
	MustLEDs().Show()
	mc.RuntimeState.Started = true
	SendLine(protocol.ReplyOK)
}

func (mc *Controller) cmdSync(args []string) {
	i := 0
	for i < len(args) {
		key := args[i]
		switch key {
		case "FILAMENT_POSITIONS":
			if i+8 >= len(args) {
				SendLine(protocol.ReplyError)
				return
			}
			var pos [8]int
			for j := 0; j < 8; j++ {
				v, ok := parseInt(args[i+1+j])
				if !ok {
					SendLine(protocol.ReplyError)
					return
				}
				pos[j] = v
			}
			mc.Motion.FilamentPositions = pos
			for j := 0; j < 8; j++ {
				mc.Channels.Items[j].ServoAngle = pos[j]
			}
			i += 9
		case "EXTRUDE_MM":
			v, ok := parseFloat(args[i+1])
			if !ok {
				SendLine(protocol.ReplyError)
				return
			}
			mc.Motion.ExtrudeMM = v
			i += 2
		case "RETRACT_MM":
			v, ok := parseFloat(args[i+1])
			if !ok {
				SendLine(protocol.ReplyError)
				return
			}
			mc.Motion.RetractMM = v
			i += 2
		case "MIN_RETRACT_MM":
			v, ok := parseFloat(args[i+1])
			if !ok {
				SendLine(protocol.ReplyError)
				return
			}
			mc.Motion.MinRetractMM = v
			i += 2
		case "MM_PER_ROTATION":
			v, ok := parseFloat(args[i+1])
			if !ok {
				SendLine(protocol.ReplyError)
				return
			}
			mc.Motion.MMPerRotation = v
			i += 2
		case "MM_TO_STUCK":
			v, ok := parseFloat(args[i+1])
			if !ok {
				SendLine(protocol.ReplyError)
				return
			}
			mc.Motion.MMToStuck = v
			i += 2
		default:
			SendLine(protocol.ReplyError)
			return
		}
	}
	SendLine(protocol.ReplyOK)
}

func (mc *Controller) cmdFilament(args []string) {
	if len(args) != 1 {
		SendLine(protocol.ReplyError)
		return
	}
	n, ok := parseInt(args[0])
	if !ok || n < 0 || n > 7 {
		SendLine(protocol.ReplyError)
		return
	}
	if mc.Select(n) {
		SendLine(protocol.ReplyOK)
	} else {
		SendLine(protocol.ReplyError)
	}
}

func (mc *Controller) cmdFilamentRelease() {
	SendLine(protocol.ReplyOK)
	mc.Release()
}

func (mc *Controller) cmdExtrude(args []string) {
	if len(args) != 2 {
		SendLine(protocol.ReplyError)
		return
	}
	mm, ok1 := parseFloat(args[0])
	rpm, ok2 := parseFloat(args[1])
	if !ok1 || !ok2 {
		SendLine(protocol.ReplyError)
		return
	}
	mc.Extrude(mm, rpm)
	SendLine(protocol.ReplyOK)
}

func (mc *Controller) cmdRetract(args []string) {
	if len(args) != 2 {
		SendLine(protocol.ReplyError)
		return
	}
	mm, ok1 := parseFloat(args[0])
	rpm, ok2 := parseFloat(args[1])
	if !ok1 || !ok2 {
		SendLine(protocol.ReplyError)
		return
	}
	SendLine(protocol.ReplyOK)
	mc.Retract(mm, rpm)
}

func (mc *Controller) cmdSwapFinish() {
	if mc.Hub.Stalled() {
		mc.Channels.SetMissingSignal(true)
		SendLine(protocol.ReplyError)
		return
	}
	SendLine(protocol.ReplyOK)
}

func (mc *Controller) cmdServoPosition(id ServoID, args []string) {
	if len(args) != 1 {
		SendLine(protocol.ReplyError)
		return
	}
	degrees, ok := parseInt(args[0])
	if !ok {
		SendLine(protocol.ReplyError)
		return
	}
	MustServo().Attach(id)
	MustServo().WriteAngle(id, degrees)
	MustServo().Detach(id)
	SendLine(protocol.ReplyOK)
}

func (mc *Controller) cmdMMURotate(args []string) {
	if len(args) != 2 {
		SendLine(protocol.ReplyError)
		return
	}
	deg, ok1 := parseInt(args[0])
	rpm, ok2 := parseFloat(args[1])
	if !ok1 || !ok2 {
		SendLine(protocol.ReplyError)
		return
	}
	Rotate(deg, rpm, true, true, false, mc.Hub)
	SendLine(protocol.ReplyOK)
}

func (mc *Controller) cmdMIDI(args []string) {
	if len(args) != 1 {
		SendLine(protocol.ReplyError)
		return
	}
	n, ok := parseInt(args[0])
	if !ok || n < 0 || n > 4 {
		SendLine(protocol.ReplyError)
		return
	}
	MustBuzzer().Play(Melody(n))
	SendLine(protocol.ReplyOK)
}

func (mc *Controller) cmdTestLED(args []string) {
	if len(args) != 1 {
		SendLine(protocol.ReplyError)
		return
	}
	n, ok := parseInt(args[0])
	if !ok || n < 1 || n > 8 {
		SendLine(protocol.ReplyError)
		return
	}
	MustLEDs().SetChannel(n-1, ColorGreen)
	MustLEDs().Show()
	SendLine(protocol.ReplyOK)
}

func (mc *Controller) cmdTestLEDs() {
	for i := 0; i < 8; i++ {
		MustLEDs().SetChannel(i, ColorGreen)
	}
	MustLEDs().Show()
	SendLine(protocol.ReplyOK)
}

func (mc *Controller) cmdStress() {
	for i := 0; i < 10; i++ {
		MustServo().Attach(ServoSelector)
		MustServo().WriteAngle(ServoSelector, 0)
		MustServo().WriteAngle(ServoSelector, 180)
		MustServo().Detach(ServoSelector)
	}
	SendLine(protocol.ReplyOK)
}
