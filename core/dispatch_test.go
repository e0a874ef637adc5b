package core

import "testing"

func setupDispatchFakes() (*fakeExpander, *fakeLEDs, *fakeBuzzer, []string) {
	SetStepperBackend(&fakeStepperBackend{})
	exp := &fakeExpander{}
	leds := newFakeLEDs()
	buz := &fakeBuzzer{}
	SetExpanderDriver(exp)
	SetLEDDriver(leds)
	SetBuzzerDriver(buz)
	SetServoDriver(&fakeServo{})
	var lines []string
	SetLineWriter(func(l string) { lines = append(lines, l) })
	return exp, leds, buz, lines
}

func TestDispatchStartRepliesOK(t *testing.T) {
	setupDispatchFakes()
	var lines []string
	SetLineWriter(func(l string) { lines = append(lines, l) })
	c := NewController(5, false)
	c.Dispatch("start")
	if len(lines) != 1 || lines[0] != "OK" {
		t.Fatalf("expected OK, got %v", lines)
	}
	if !c.RuntimeState.Started {
		t.Fatalf("expected Started=true")
	}
}

func TestDispatchUnknownCommandErrors(t *testing.T) {
	setupDispatchFakes()
	var lines []string
	SetLineWriter(func(l string) { lines = append(lines, l) })
	c := NewController(5, false)
	c.Dispatch("NONSENSE 1 2 3")
	// The unknown command is also logged, so only the OK/ERROR replies are
	// counted here.
	var replies []string
	for _, l := range lines {
		if l == "OK" || l == "ERROR" {
			replies = append(replies, l)
		}
	}
	if len(replies) != 1 || replies[0] != "ERROR" {
		t.Fatalf("expected ERROR, got %v", lines)
	}
}

func TestDispatchSyncPartialFieldsPreserveOthers(t *testing.T) {
	setupDispatchFakes()
	var lines []string
	SetLineWriter(func(l string) { lines = append(lines, l) })
	c := NewController(5, false)
	wantRetract := c.Motion.RetractMM

	c.Dispatch("SYNC EXTRUDE_MM 30 MM_PER_ROTATION 18.5")

	if c.Motion.ExtrudeMM != 30 {
		t.Fatalf("expected ExtrudeMM=30, got %v", c.Motion.ExtrudeMM)
	}
	if c.Motion.MMPerRotation != 18.5 {
		t.Fatalf("expected MMPerRotation=18.5, got %v", c.Motion.MMPerRotation)
	}
	if c.Motion.RetractMM != wantRetract {
		t.Fatalf("expected RetractMM unchanged, got %v", c.Motion.RetractMM)
	}
	if len(lines) != 1 || lines[0] != "OK" {
		t.Fatalf("expected OK, got %v", lines)
	}
}

func TestDispatchFilamentMissingRepliesError(t *testing.T) {
	exp, _, _, _ := setupDispatchFakes()
	var lines []string
	SetLineWriter(func(l string) { lines = append(lines, l) })
	exp.present[4] = false
	c := NewController(5, false)
	c.Dispatch("FILAMENT 4")
	if len(lines) != 1 || lines[0] != "ERROR" {
		t.Fatalf("expected ERROR for missing channel, got %v", lines)
	}
}

func TestDispatchFilamentReleaseRepliesOKBeforeMotion(t *testing.T) {
	setupDispatchFakes()
	var order []string
	SetServoDriver(&orderTrackingServo{order: &order})
	SetLineWriter(func(l string) { order = append(order, "LINE:"+l) })
	c := NewController(5, false)
	c.Dispatch("FILAMENT_RELEASE")

	if len(order) == 0 || order[0] != "LINE:OK" {
		t.Fatalf("expected OK to be sent before servo motion, got %v", order)
	}
}

type orderTrackingServo struct {
	order *[]string
}

func (s *orderTrackingServo) Attach(id ServoID) error {
	*s.order = append(*s.order, "ATTACH")
	return nil
}
func (s *orderTrackingServo) WriteAngle(id ServoID, degrees int) error {
	*s.order = append(*s.order, "WRITE")
	return nil
}
func (s *orderTrackingServo) Detach(id ServoID) error {
	*s.order = append(*s.order, "DETACH")
	return nil
}

func TestDispatchSwapFinishReflectsStall(t *testing.T) {
	setupDispatchFakes()
	var lines []string
	SetLineWriter(func(l string) { lines = append(lines, l) })
	c := NewController(5, false)
	c.Hub.SetStalled(true)

	c.Dispatch("SWAP_FINISH")
	if len(lines) != 1 || lines[0] != "ERROR" {
		t.Fatalf("expected ERROR when stalled, got %v", lines)
	}
}

func TestParseIntAndFloat(t *testing.T) {
	if v, ok := parseInt("-42"); !ok || v != -42 {
		t.Fatalf("parseInt(-42) = %d, %v", v, ok)
	}
	if _, ok := parseInt("4x"); ok {
		t.Fatalf("expected parseInt to reject non-digit input")
	}
	if v, ok := parseFloat("18.5"); !ok || v != 18.5 {
		t.Fatalf("parseFloat(18.5) = %v, %v", v, ok)
	}
	if v, ok := parseFloat("-3.25"); !ok || v != -3.25 {
		t.Fatalf("parseFloat(-3.25) = %v, %v", v, ok)
	}
}
