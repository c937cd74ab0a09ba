package glide

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOut is where debug diagnostics are written. Tests swap it.
var debugOut io.Writer = os.Stderr

// frameStats holds per-frame timing and scroll metrics.
// Only populated when Controller.debug is true.
type frameStats struct {
	frame         uint64
	state         ScrollState
	target        float64
	subscribers   int
	integrateTime time.Duration
	notifyTime    time.Duration
}

// SetDebugMode enables or disables debug mode. When enabled, engine
// lifecycle events and per-frame scroll stats are logged to stderr, and
// subscriber counts above debugMaxSubscribers are reported.
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// debugLog prints a lifecycle message to stderr.
func (c *Controller) debugLog(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[glide] "+format+"\n", args...)
}

// debugFrame prints one frame's stats to stderr.
func (c *Controller) debugFrame(stats frameStats) {
	if !c.debug {
		return
	}
	s := stats.state
	_, _ = fmt.Fprintf(debugOut,
		"[glide] frame %d | pos: %.2f | target: %.2f | limit: %.2f | vel: %.2f | dir: %d | progress: %.3f\n",
		stats.frame, s.Position, stats.target, s.Limit, s.Velocity, s.Direction, s.Progress())
	_, _ = fmt.Fprintf(debugOut,
		"[glide] integrate: %v | notify: %v | subscribers: %d\n",
		stats.integrateTime, stats.notifyTime, stats.subscribers)
	debugCheckSubscribers(stats.subscribers)
}

// debugMaxSubscribers is the subscriber count above which a warning is
// printed; more usually means a section subscribes on every redraw.
const debugMaxSubscribers = 64

func debugCheckSubscribers(n int) {
	if n > debugMaxSubscribers {
		_, _ = fmt.Fprintf(debugOut, "[glide] warning: %d scroll subscribers exceeds %d\n",
			n, debugMaxSubscribers)
	}
}
