package core

// ServoID names one of the two positioning servos.
type ServoID uint8

const (
	ServoSelector ServoID = iota
	ServoCutter
)

// ServoDriver is the abstract positioning-servo interface that core code
// uses. Call sites bracket each move as attach, write, detach; no delay is
// inserted between the write and the detach.
type ServoDriver interface {
	// Attach powers the named servo's PWM output.
	Attach(id ServoID) error

	// WriteAngle drives the named servo to the given angle in degrees.
	WriteAngle(id ServoID, degrees int) error

	// Detach releases the named servo's PWM output.
	Detach(id ServoID) error
}

var servoDriver ServoDriver

// SetServoDriver is called by target-specific code to register its driver.
func SetServoDriver(d ServoDriver) {
	servoDriver = d
}

// MustServo returns the configured driver or panics if missing.
func MustServo() ServoDriver {
	if servoDriver == nil {
		panic("servo driver not configured")
	}
	return servoDriver
}
