package core

import "testing"

func TestNewChannelsSeedsServoAngles(t *testing.T) {
	positions := [8]int{0, 23, 45, 68, 90, 113, 135, 158}
	c := NewChannels(positions)
	for i, want := range positions {
		if c.Items[i].ServoAngle != want {
			t.Fatalf("channel %d servo angle = %d, want %d", i, c.Items[i].ServoAngle, want)
		}
		if c.Items[i].Present {
			t.Fatalf("channel %d should start absent", i)
		}
		if c.Items[i].Visual != VisualIdle {
			t.Fatalf("channel %d should start idle", i)
		}
	}
}

func TestChannelsPresentRoundTrip(t *testing.T) {
	c := NewChannels([8]int{})
	if c.Present(3) {
		t.Fatalf("channel 3 should start absent")
	}
	c.SetFilamentPresent(3, true)
	if !c.Present(3) {
		t.Fatalf("expected channel 3 present after SetFilamentPresent(true)")
	}
}

func TestChannelsSetVisual(t *testing.T) {
	c := NewChannels([8]int{})
	c.SetVisual(5, VisualStall)
	if c.Items[5].Visual != VisualStall {
		t.Fatalf("expected channel 5 visual state VisualStall, got %v", c.Items[5].Visual)
	}
}

func TestSetMissingSignalDrivesGPIO(t *testing.T) {
	gpio := &fakeGPIO{}
	SetGPIODriver(gpio)
	c := NewChannels([8]int{})
	c.MissingPin = 12

	c.SetMissingSignal(true)
	if !gpio.values[12] {
		t.Fatalf("expected missing pin driven HIGH")
	}

	c.SetMissingSignal(false)
	if gpio.values[12] {
		t.Fatalf("expected missing pin driven LOW")
	}
}

type fakeGPIO struct {
	values map[GPIOPin]bool
}

func (g *fakeGPIO) ConfigureOutput(pin GPIOPin) error       { return nil }
func (g *fakeGPIO) ConfigureInputPullUp(pin GPIOPin) error  { return nil }
func (g *fakeGPIO) ConfigureInputPullDown(pin GPIOPin) error { return nil }
func (g *fakeGPIO) SetPin(pin GPIOPin, value bool) error {
	if g.values == nil {
		g.values = map[GPIOPin]bool{}
	}
	g.values[pin] = value
	return nil
}
func (g *fakeGPIO) GetPin(pin GPIOPin) (bool, error) { return g.values[pin], nil }
func (g *fakeGPIO) ReadPin(pin GPIOPin) bool         { v, _ := g.GetPin(pin); return v }
