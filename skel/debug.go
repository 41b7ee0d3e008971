package skel

import (
	"fmt"
	"io"
	"os"
)

// Debug logging for Skeletonize: off by default, writes phase and
// event traces to DebugOutput when enabled.
var (
	// DebugEnabled turns on phase and event tracing for Skeletonize.
	DebugEnabled = false
	// DebugOutput is where debug output goes (default: os.Stderr).
	DebugOutput io.Writer = os.Stderr
)

func debugLog(format string, args ...interface{}) {
	if DebugEnabled {
		fmt.Fprintf(DebugOutput, "[skel] "+format+"\n", args...)
	}
}

func debugLogPhase(phase string) {
	if DebugEnabled {
		fmt.Fprintf(DebugOutput, "\n-- %s --\n", phase)
	}
}

func debugLogEvent(label string, e event) {
	if DebugEnabled && e != nil {
		fmt.Fprintf(DebugOutput, "  %s: %s\n", label, e.String())
	}
}
