package core

import "sync/atomic"

// HubState mirrors the hub sensor's current reading and tracks the last
// value the main loop observed, so edges can be detected by comparison
// rather than by trusting interrupt delivery to never coalesce.
//
// state is written from the hub pin's edge interrupt and read from the
// main loop; both are single-word accesses so a plain atomic.Bool gives
// the width-atomic guarantee the design notes ask for without a lock,
// which would be the wrong tool inside an ISR.
type HubState struct {
	state   atomic.Bool
	stalled atomic.Bool

	// lastObserved is loop-exclusive: only ObserveEdge, called by the
	// foreground poller, updates it, always from the single main execution
	// context.
	lastObserved bool
}

// NewHubState creates a hub state object, seeding lastObserved from an
// initial direct pin read (per spec, done once at boot).
func NewHubState(initial bool) *HubState {
	h := &HubState{lastObserved: initial}
	h.state.Store(initial)
	return h
}

// OnEdge is the callback platform code registers with the hub pin's edge
// interrupt. It only ever stores the new level; all decision-making about
// edges happens on the main loop's next read.
func (h *HubState) OnEdge(level bool) {
	h.state.Store(level)
}

// Read returns the current hub pin state as last reported by the ISR.
func (h *HubState) Read() bool {
	return h.state.Load()
}

// Stalled reports whether a stall is currently flagged.
func (h *HubState) Stalled() bool {
	return h.stalled.Load()
}

// SetStalled sets or clears the stall flag.
func (h *HubState) SetStalled(v bool) {
	h.stalled.Store(v)
}

// ObserveEdge compares the current state against lastObserved, updates
// lastObserved, and reports whether a HIGH-to-LOW transition occurred
// (the transition C5 uses to clear the missing signal and light the
// active channel green).
func (h *HubState) ObserveEdge() (fellToLow bool) {
	current := h.Read()
	fellToLow = h.lastObserved && !current
	h.lastObserved = current
	return fellToLow
}

// LastObserved returns the last value seen by ObserveEdge, without taking
// a fresh reading.
func (h *HubState) LastObserved() bool {
	return h.lastObserved
}
