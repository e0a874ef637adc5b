//go:build tinygo

package core

import "time"

// BusyWaitUS blocks for approximately us microseconds. The pulse generator
// (C1) calls this between asserting and deasserting the step pin; accuracy
// here directly bounds step timing accuracy, per the design notes on
// busy-wait step timing.
func BusyWaitUS(us uint32) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}
