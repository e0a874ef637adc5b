package core

// ExpanderDriver is the abstract I/O-expander interface that core code
// uses to read the eight per-channel filament sensors and the action
// button, all multiplexed over I2C and active-low when present/pressed.
type ExpanderDriver interface {
	// Init brings up the expander. A failure here is fatal per spec: the
	// caller blinks all LEDs red forever and does not proceed.
	Init() error

	// FilamentPresent reports whether channel i currently has filament
	// loaded (already corrected for active-low wiring: true = present).
	FilamentPresent(channel int) (bool, error)

	// ButtonPressed reports the current (instantaneous, debounced by the
	// caller) state of the action button.
	ButtonPressed() (bool, error)
}

var expanderDriver ExpanderDriver

// SetExpanderDriver is called by target-specific code to register its
// driver.
func SetExpanderDriver(d ExpanderDriver) {
	expanderDriver = d
}

// MustExpander returns the configured driver or panics if missing.
func MustExpander() ExpanderDriver {
	if expanderDriver == nil {
		panic("I/O expander driver not configured")
	}
	return expanderDriver
}
