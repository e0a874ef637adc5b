package core

// Motion constants are compile-time and shared by every channel; they
// describe the physical stepper/microstepping setup rather than anything
// the host configures.
const (
	StepsPerRevolution = 200
	Microsteps         = 16

	MinRPM     = 1.0
	DefaultRPM = 300.0

	// SlowPulseDelayUS is both the ramp-up starting half-period and the
	// ramp-down ceiling.
	SlowPulseDelayUS = 1200

	// AccelDecelSkipSteps is how many issued steps pass between each 1us
	// change to the ramp's current half-period.
	AccelDecelSkipSteps = 4

	// SensorCheckInterval is how many steps pass between foreground
	// checks of the active channel's filament sensor during a feed hunt.
	SensorCheckInterval = 20
)

// MotionConfig holds the host-synchronized configuration. It is created
// with defaults at boot and mutated only by SYNC; nothing here persists
// across a reset.
type MotionConfig struct {
	FilamentPositions [8]int
	ExtrudeMM         float64
	RetractMM         float64
	MinRetractMM      float64
	MMToStuck         float64
	MMPerRotation     float64
}

// DefaultMotionConfig returns the configuration preloaded at boot, before
// any SYNC line has been processed.
func DefaultMotionConfig() *MotionConfig {
	return &MotionConfig{
		FilamentPositions: [8]int{0, 23, 45, 68, 90, 113, 135, 158},
		ExtrudeMM:         50,
		RetractMM:         30,
		MinRetractMM:      20,
		MMToStuck:         150,
		MMPerRotation:     22.0,
	}
}

// RuntimeState is the firmware's mutable, loop-exclusive state, separated
// from MotionConfig because it is never host-synchronized, only updated
// as a side effect of commands and foreground polling.
type RuntimeState struct {
	ActiveFilament int // -1 when no channel has been selected yet
	LastServoPos   int
	Started        bool
	AutoExtruding  bool

	PreviousAliveMS          uint32
	PreviousStartupBlinkMS   uint32
	StartupBlinkOn           bool
	ActionButtonPressStartMS uint32
	ActionButtonDown         bool
}

// NewRuntimeState returns the state the firmware boots into.
func NewRuntimeState() *RuntimeState {
	return &RuntimeState{ActiveFilament: -1}
}
