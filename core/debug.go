package core

import "mmufw/protocol"

// LogLevel identifies the severity of an informational line, matching the
// "[<ms>] <LEVEL> - <msg>" wire format the host expects.
type LogLevel uint8

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// LineWriter is a sink for fully formatted protocol lines (OK/ERROR/ALIVE
// and informational log lines alike). Target code points this at the UART;
// tests point it at a buffer.
type LineWriter func(string)

var (
	lineWriter   LineWriter = func(string) {}
	debugEnabled bool

	// asyncLog decouples log calls made from inside the pulse generator's
	// busy-wait loop from the cost of actually writing a line; a full
	// channel never blocks a step.
	asyncLog chan string
)

// SetLineWriter sets the platform-specific sink for outgoing protocol lines.
func SetLineWriter(w LineWriter) {
	lineWriter = w
}

// SetDebugEnabled toggles DEBUG-level log lines. Disabled by default so a
// quiet bench run isn't flooded with per-step chatter.
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether DEBUG-level log lines are emitted.
func IsDebugEnabled() bool {
	return debugEnabled
}

// InitAsyncLog starts the background goroutine that drains queued log
// lines. Call once during startup on platforms that support goroutines.
func InitAsyncLog() {
	asyncLog = make(chan string, 16)
	go func() {
		for msg := range asyncLog {
			lineWriter(msg)
		}
	}()
}

// Logf formats and emits an informational line in the
// "[<ms>] <LEVEL> - <msg>" format. DEBUG lines are dropped unless debug
// output has been enabled.
func Logf(level LogLevel, msg string) {
	if level == LevelDebug && !debugEnabled {
		return
	}
	line := protocol.FormatLog(GetTimeMS(), level.String(), msg)
	if asyncLog != nil {
		select {
		case asyncLog <- line:
		default:
			// Queue full: drop rather than block a time-critical caller.
		}
		return
	}
	lineWriter(line)
}

// DebugPrintln emits a DEBUG-level line. It is a short alias for
// Logf(LevelDebug, msg).
func DebugPrintln(msg string) {
	Logf(LevelDebug, msg)
}

// Warnf emits a WARN-level line, used for stall conditions.
func Warnf(msg string) {
	Logf(LevelWarn, msg)
}

// Errorf emits an ERROR-level line, used for unknown commands and the
// I/O-expander init failure.
func Errorf(msg string) {
	Logf(LevelError, msg)
}

// Infof emits an INFO-level line.
func Infof(msg string) {
	Logf(LevelInfo, msg)
}

// SendLine writes a raw protocol line (OK, ERROR, ALIVE) straight to the
// line writer, bypassing the "[<ms>] LEVEL - " framing Logf applies.
func SendLine(line string) {
	lineWriter(line)
}
