// Package protocol implements the controller's ASCII line wire format:
// command-line normalization and the handful of reply shapes the host
// expects (OK, ERROR, ALIVE, and leveled log lines).
package protocol

import "strings"

// NormalizeLine trims whitespace and uppercases a received command line,
// per the dispatcher's case-insensitive, whitespace-tolerant parsing.
func NormalizeLine(line string) string {
	return strings.ToUpper(strings.TrimSpace(line))
}
