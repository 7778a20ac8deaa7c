package hull

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"github.com/geofold/concavehull/dbg"
)

// Diagnostics is the side channel for progress narration. The trace calls
// it unconditionally and never looks at what it does, so implementations
// must be safe to call at any point and cheap when idle.
type Diagnostics interface {
	// AttemptStarted fires before each trace, with the neighbour count and
	// the deduplicated input.
	AttemptStarted(k int, points []Point)

	// EdgeAdded fires after each accepted edge, with the hull so far. The
	// slice is live; implementations that keep it must copy.
	EdgeAdded(k, step int, hull []Point)

	// AttemptFailed fires when a trace gives up at this neighbour count.
	AttemptFailed(k int, reason string)

	// HullAccepted fires once, with the finished ring.
	HullAccepted(k int, ring []Point)
}

// Nop discards all narration. It is the sink used when Options.Diagnostics
// is nil.
var Nop Diagnostics = nopDiagnostics{}

type nopDiagnostics struct{}

func (nopDiagnostics) AttemptStarted(int, []Point) {}
func (nopDiagnostics) EdgeAdded(int, int, []Point) {}
func (nopDiagnostics) AttemptFailed(int, string)   {}
func (nopDiagnostics) HullAccepted(int, []Point)   {}

// LogDiagnostics narrates attempts to a writer, one line per event.
// Attempts get petname labels so output from escalating or repeated runs
// stays tellable apart in a terminal.
type LogDiagnostics struct {
	Out io.Writer

	attempt string
}

func (l *LogDiagnostics) AttemptStarted(k int, points []Point) {
	l.attempt = dbg.Name(new(int))
	fmt.Fprintf(l.Out, "%s tracing %d points with k=%d\n", aurora.Cyan(l.attempt), len(points), k)
}

func (l *LogDiagnostics) EdgeAdded(k, step int, hull []Point) {
	tip := hull[len(hull)-1]
	fmt.Fprintf(l.Out, "%s step %d: edge to (%g, %g), hull size %d\n",
		aurora.Cyan(l.attempt), step, tip.X, tip.Y, len(hull))
}

func (l *LogDiagnostics) AttemptFailed(k int, reason string) {
	fmt.Fprintf(l.Out, "%s %s at k=%d: %s\n", aurora.Cyan(l.attempt), aurora.Red("failed"), k, reason)
}

func (l *LogDiagnostics) HullAccepted(k int, ring []Point) {
	fmt.Fprintf(l.Out, "%s %s with %d vertices at k=%d\n",
		aurora.Cyan(l.attempt), aurora.Green("closed"), len(ring), k)
}
