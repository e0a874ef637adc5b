package core

// Controller holds the firmware's complete runtime state: the channel
// table, host-synchronized motion configuration, mutable runtime flags,
// and the hub sensor's edge-tracked state. Every component (C1-C6) acts
// on a *Controller rather than package-level globals, so tests can stand
// up independent instances against fake HAL drivers.
type Controller struct {
	Channels      *Channels
	Motion        *MotionConfig
	RuntimeState  *RuntimeState
	Hub           *HubState
}

// NewController builds a controller with default configuration and an
// unselected channel table, as the firmware boots into before START.
func NewController(missingPin GPIOPin, hubInitial bool) *Controller {
	motion := DefaultMotionConfig()
	channels := NewChannels(motion.FilamentPositions)
	channels.MissingPin = missingPin
	return &Controller{
		Channels:     channels,
		Motion:       motion,
		RuntimeState: NewRuntimeState(),
		Hub:          NewHubState(hubInitial),
	}
}
