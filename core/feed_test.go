package core

import "testing"

type fakeExpander struct {
	present    [8]bool
	buttonDown bool
	initErr    error
}

func (f *fakeExpander) Init() error                            { return f.initErr }
func (f *fakeExpander) FilamentPresent(ch int) (bool, error)    { return f.present[ch], nil }
func (f *fakeExpander) ButtonPressed() (bool, error)            { return f.buttonDown, nil }

type fakeLEDs struct {
	set            map[int]LEDColor
	blinked        []LEDColor
	blinkedChannel []int
}

func newFakeLEDs() *fakeLEDs { return &fakeLEDs{set: map[int]LEDColor{}} }

func (f *fakeLEDs) SetChannel(ch int, c LEDColor) error { f.set[ch] = c; return nil }
func (f *fakeLEDs) Show() error                         { return nil }
func (f *fakeLEDs) BlinkAll(c LEDColor) error           { f.blinked = append(f.blinked, c); return nil }
func (f *fakeLEDs) BlinkChannel(ch int, c LEDColor) error {
	f.blinked = append(f.blinked, c)
	f.blinkedChannel = append(f.blinkedChannel, ch)
	f.set[ch] = c
	return nil
}

type fakeBuzzer struct {
	played []Melody
}

func (f *fakeBuzzer) Play(m Melody) error { f.played = append(f.played, m); return nil }

func setupFeedFakes() (*fakeStepperBackend, *fakeExpander, *fakeLEDs, *fakeBuzzer) {
	backend := &fakeStepperBackend{}
	exp := &fakeExpander{}
	leds := newFakeLEDs()
	buz := &fakeBuzzer{}
	SetStepperBackend(backend)
	SetExpanderDriver(exp)
	SetLEDDriver(leds)
	SetBuzzerDriver(buz)
	return backend, exp, leds, buz
}

func TestFeedZeroMillimetersNoop(t *testing.T) {
	backend, _, _, _ := setupFeedFakes()
	c := NewController(0, false)
	c.Feed(true, 0, 100, 300, DirForward)
	if backend.steps != 0 {
		t.Fatalf("expected no steps issued for zero mm")
	}
}

func TestFeedAbortsOnSensorLoss(t *testing.T) {
	backend, exp, leds, buz := setupFeedFakes()
	c := NewController(5, false)
	c.RuntimeState.ActiveFilament = 0
	exp.present[0] = false // already absent at step check

	c.Feed(false, 50, 1000, 300, DirForward)

	if len(buz.played) == 0 || buz.played[0] != MelodyError {
		t.Fatalf("expected error melody on abort")
	}
	if len(leds.blinked) == 0 {
		t.Fatalf("expected red blink on abort")
	}
	if backend.enabled {
		t.Fatalf("enable must be deasserted after abort")
	}
}

func TestFeedStallOnStartStillTravels(t *testing.T) {
	backend, exp, _, _ := setupFeedFakes()
	exp.present[0] = true
	c := NewController(5, true) // hub already HIGH == targetHub for retract
	c.RuntimeState.ActiveFilament = 0

	c.Retract(10, 300)

	if !c.Hub.Stalled() {
		t.Fatalf("expected stall flagged when hub already at target state")
	}
	if backend.steps == 0 {
		t.Fatalf("expected motion to proceed despite stall-on-start")
	}
}

func TestExtrudeAutoExtrudingSuppressesForwardStall(t *testing.T) {
	backend, exp, _, _ := setupFeedFakes()
	exp.present[0] = true
	c := NewController(5, true) // hub HIGH (empty), target is LOW: no stall-on-start
	c.RuntimeState.ActiveFilament = 0
	c.RuntimeState.AutoExtruding = true // suppresses forward stall per spec
	c.Motion.MMToStuck = 1
	c.Motion.RetractMM = 1

	// stall_mm is 1+1+1 = 3mm, i.e. 436 steps at 22mm/rotation; the hub
	// edge arrives well past that.
	done := make(chan struct{})
	go func() {
		for backend.steps < 1000 {
		}
		c.Hub.OnEdge(false) // simulate filament reaching the hub sensor
		close(done)
	}()

	c.Extrude(1, 300)
	<-done

	if c.Hub.Stalled() {
		t.Fatalf("auto_extruding should suppress forward stall past stall_mm")
	}
}
