package yuletree

import (
	"fmt"
	"io"
	"os"
	"time"
)

// globalDebug mirrors the most recently set debug flag so that node
// operations (which lack a Renderer pointer) can check it cheaply.
var globalDebug bool

// debugOut receives debug output. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// debugStats holds per-frame timing and draw-call metrics.
// Only populated when Renderer.debug is true.
type debugStats struct {
	projectTime  time.Duration
	sortTime     time.Duration
	submitTime   time.Duration
	commandCount int
	triangles    int
	points       int
	culled       int
}

// debugLog prints timing and draw-call stats.
func (r *Renderer) debugLog(stats debugStats) {
	if !r.debug {
		return
	}
	total := stats.projectTime + stats.sortTime + stats.submitTime
	_, _ = fmt.Fprintf(debugOut,
		"[yuletree] project: %v | sort: %v | submit: %v | total: %v\n",
		stats.projectTime, stats.sortTime, stats.submitTime, total)
	_, _ = fmt.Fprintf(debugOut,
		"[yuletree] commands: %d | triangles: %d | points: %d | culled: %d\n",
		stats.commandCount, stats.triangles, stats.points, stats.culled)
}

// Logf prints a non-fatal diagnostic regardless of debug mode. Backends
// use it so every message carries the same prefix.
func Logf(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOut, "[yuletree] "+format+"\n", args...)
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logf("warning: tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		Logf("warning: node %q has %d children (threshold %d)", n.Name, len(n.children), debugMaxChildCount)
	}
}
