package core

// VisualState is the indicator-strip state for a single channel.
type VisualState uint8

const (
	VisualIdle VisualState = iota
	VisualArmed
	VisualActive
	VisualOK
	VisualStall
	VisualMissing
)

// Channel is the per-filament-input state spec.md's data model describes:
// servo angle, presence, and indicator state. There are always exactly
// eight, indexed 0..7.
type Channel struct {
	ServoAngle int
	Present    bool
	Visual     VisualState
}

// Channels is the channel table (C3). It is pure data plus the mutators
// spec.md names; the decisions about *when* to call them (on a sensor
// transition, a selection, a stall) live in the poller and tool-change
// components.
type Channels struct {
	Items      [8]Channel
	MissingPin GPIOPin
}

// NewChannels builds the channel table with each channel's configured
// servo angle and everything else zero-valued (absent, idle).
func NewChannels(positions [8]int) *Channels {
	c := &Channels{}
	for i := range c.Items {
		c.Items[i].ServoAngle = positions[i]
	}
	return c
}

// SetFilamentPresent updates channel i's presence, called by the
// foreground poller (C5) on an I/O-expander transition.
func (c *Channels) SetFilamentPresent(i int, present bool) {
	c.Items[i].Present = present
}

// SetVisual sets channel i's indicator state.
func (c *Channels) SetVisual(i int, v VisualState) {
	c.Items[i].Visual = v
}

// Present reports channel i's current presence.
func (c *Channels) Present(i int) bool {
	return c.Items[i].Present
}

// SetMissingSignal drives the dedicated host-facing output pin: HIGH when
// the active channel is absent, LOW when present. Best-effort per I5 —
// GPIO errors are logged, never propagated to the command dispatcher.
func (c *Channels) SetMissingSignal(missing bool) {
	if err := MustGPIO().SetPin(c.MissingPin, missing); err != nil {
		Warnf("missing signal pin: " + err.Error())
	}
}
