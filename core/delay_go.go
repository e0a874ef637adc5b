//go:build !tinygo

package core

// BusyWaitUS advances the simulated clock by us microseconds instead of
// actually sleeping. Tests exercise thousands of simulated steps; sleeping
// for real would make the suite glacial without improving coverage of the
// ramp/stall logic, which only cares about tick deltas.
func BusyWaitUS(us uint32) {
	setSystemTicks(getSystemTicks() + TimerFromUS(us))
}
