package core

import "testing"

func setupPollerFakes() (*fakeExpander, *fakeLEDs, *fakeBuzzer) {
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
	return exp, leds, buz
}

func TestPollFilamentSensorTransitionUpdatesActiveChannelLED(t *testing.T) {
	exp, leds, buz := setupPollerFakes()
	c := NewController(5, false)
	c.RuntimeState.ActiveFilament = 2
	c.Channels.SetFilamentPresent(2, false)

	exp.present[2] = true
	c.Poll(0)

	if leds.set[2] != ColorGreen {
		t.Fatalf("expected channel 2 LED green after gaining filament")
	}
	if len(buz.played) == 0 || buz.played[0] != MelodyInsert {
		t.Fatalf("expected insert melody")
	}
}

func TestPollHubEdgeClearsMissingSignalWhenPresent(t *testing.T) {
	exp, leds, _ := setupPollerFakes()
	exp.present[1] = true
	c := NewController(5, true)
	c.RuntimeState.ActiveFilament = 1
	c.Channels.SetFilamentPresent(1, true)

	c.Hub.OnEdge(false) // HIGH -> LOW transition
	c.Poll(0)

	if leds.set[1] != ColorGreen {
		t.Fatalf("expected active channel LED green on hub edge, got %v", leds.set[1])
	}
}

func TestPollButtonLongPressTriggersAutoExtrude(t *testing.T) {
	exp, _, _ := setupPollerFakes()
	exp.present[0] = true
	c := NewController(5, true) // hub HIGH (empty)
	c.RuntimeState.ActiveFilament = 0
	c.Channels.SetFilamentPresent(0, true)
	c.Motion.MMToStuck = 1
	c.Motion.RetractMM = 1
	c.Motion.ExtrudeMM = 1

	exp.buttonDown = true
	c.Poll(0)
	if !c.RuntimeState.ActionButtonDown {
		t.Fatalf("expected button-down state captured")
	}

	exp.buttonDown = false
	go func() {
		for i := 0; i < 5000 && !c.Hub.Stalled(); i++ {
		}
		c.Hub.OnEdge(false)
	}()
	c.Poll(LongPressMS + 1)

	if c.RuntimeState.AutoExtruding {
		t.Fatalf("auto_extruding flag should be cleared after completion")
	}
}

func TestPollButtonShortPressReleasesOnly(t *testing.T) {
	exp, _, buz := setupPollerFakes()
	c := NewController(5, false)

	exp.buttonDown = true
	c.Poll(0)
	exp.buttonDown = false
	c.Poll(100)

	if len(buz.played) == 0 || buz.played[0] != MelodyClick {
		t.Fatalf("expected click tone on button release")
	}
	if c.RuntimeState.AutoExtruding {
		t.Fatalf("short press must not trigger auto-extrude")
	}
}

func TestPollStartupTogglesAllChannelsOnInterval(t *testing.T) {
	_, leds, _ := setupPollerFakes()
	c := NewController(5, false)

	c.PollStartup(StartupBlinkIntervalMS)
	if leds.set[0] != ColorOrange || leds.set[7] != ColorOrange {
		t.Fatalf("expected all channels orange on first toggle, got %v", leds.set)
	}

	c.PollStartup(StartupBlinkIntervalMS + 100)
	if leds.set[0] != ColorOrange {
		t.Fatalf("expected state to hold before the interval elapses")
	}

	c.PollStartup(2 * StartupBlinkIntervalMS)
	if leds.set[0] != ColorOff || leds.set[7] != ColorOff {
		t.Fatalf("expected all channels off on second toggle, got %v", leds.set)
	}
}

func TestAliveHeartbeatInterval(t *testing.T) {
	setupPollerFakes()
	var lines []string
	SetLineWriter(func(l string) { lines = append(lines, l) })
	c := NewController(5, false)

	c.Poll(AliveIntervalMS)
	if len(lines) != 1 || lines[0] != "ALIVE" {
		t.Fatalf("expected ALIVE once the first interval elapses, got %v", lines)
	}
	c.Poll(AliveIntervalMS + 100)
	if len(lines) != 1 {
		t.Fatalf("expected no second ALIVE before interval elapses")
	}
	c.Poll(2 * AliveIntervalMS)
	if len(lines) != 2 {
		t.Fatalf("expected ALIVE once interval elapses")
	}
}
