package core

// StepperBackend defines the hardware abstraction for stepper step/dir
// control. Pulse timing (the ramp's variable half-period) is owned by the
// pulse generator, not the backend, because the ramp needs to busy-wait
// between assert and deassert with a delay that changes every
// AccelDecelSkipSteps — the backend only toggles pins.
type StepperBackend interface {
	// Init initializes the stepper hardware.
	// enablePin is active-low: Enable(true) drives it low.
	Init(stepPin, dirPin, enablePin GPIOPin) error

	// Enable asserts or de-asserts the (active-low) enable line.
	Enable(on bool) error

	// SetDirection sets the direction output to the given pin level
	// (true = high). The pulse generator maps logical forward/reverse to a
	// level through ForwardIsHigh before calling this.
	SetDirection(dir bool) error

	// AssertStep drives the step pin to its active level.
	AssertStep() error

	// DeassertStep drives the step pin back to its inactive level.
	DeassertStep() error

	// GetName returns the backend implementation name.
	GetName() string
}

var stepperBackend StepperBackend

// SetStepperBackend is called by target-specific code to register its
// driver.
func SetStepperBackend(b StepperBackend) {
	stepperBackend = b
}

// MustStepperBackend returns the configured driver or panics if missing.
func MustStepperBackend() StepperBackend {
	if stepperBackend == nil {
		panic("stepper backend not configured")
	}
	return stepperBackend
}
