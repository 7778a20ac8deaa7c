package hull

import (
	"math"

	"github.com/pkg/errors"
)

// DefaultK is the neighbour count used when Options.K is zero.
const DefaultK = 3

// Options configures a hull computation. The zero value is usable: k
// defaults to DefaultK, duplicate elimination keeps zero decimal places,
// and diagnostics go nowhere.
type Options struct {
	// K is the number of nearest neighbours considered at each step of the
	// first attempt. Must be at least 3 and less than the number of
	// distinct points. Failed attempts escalate the count internally; K
	// only sets where escalation starts.
	K int

	// Precision is the number of decimal places preserved by duplicate
	// elimination (see DedupPoints).
	Precision int

	// Diagnostics receives progress narration. Nil means none. The trace
	// calls the sink unconditionally and never branches on it; sinks
	// decide what to drop.
	Diagnostics Diagnostics
}

// Compute builds a concave hull around points. On success the result is a
// simple polygon whose ring is a subset of the input and which holds every
// input point inside or on its boundary. Each failed attempt restarts from
// the full deduplicated input with one more neighbour; when the neighbour
// count reaches the point count the search gives up with a
// *HullNotFoundError.
//
// Attempts restart from scratch rather than repairing the failed hull: a
// larger neighbour count can change the very first edge, so nothing from a
// failed attempt is worth keeping.
func Compute(points []Point, opts Options) (*Polygon, error) {
	diag := opts.Diagnostics
	if diag == nil {
		diag = Nop
	}
	k := opts.K
	if k == 0 {
		k = DefaultK
	}
	if k < 3 {
		return nil, errors.Wrapf(ErrInvalidK, "k=%d", k)
	}

	cleaned := DedupPoints(points, opts.Precision)
	if len(cleaned) < 3 {
		return nil, errors.Wrapf(ErrTooFewPoints, "%d distinct points", len(cleaned))
	}

	// Three distinct points are their own hull, whatever k says.
	if len(cleaned) == 3 {
		ring := make([]Point, 3)
		copy(ring, cleaned)
		diag.HullAccepted(k, ring)
		return &Polygon{Points: ring}, nil
	}

	if k >= len(cleaned) {
		return nil, errors.Wrapf(ErrInvalidK, "k=%d with only %d distinct points", k, len(cleaned))
	}

	for kk := k; kk < len(cleaned); kk++ {
		diag.AttemptStarted(kk, cleaned)
		ring, ok := traceAttempt(cleaned, kk, diag)
		if ok {
			diag.HullAccepted(kk, ring)
			return &Polygon{Points: ring}, nil
		}
	}
	return nil, &HullNotFoundError{LastK: len(cleaned) - 1}
}

// traceAttempt runs one boundary trace with a fixed neighbour count. It
// reports ok=false for exactly the failures a larger count can fix: every
// candidate edge crossing the hull, or a finished ring that leaves input
// points outside.
func traceAttempt(points []Point, k int, diag Diagnostics) (ring []Point, ok bool) {
	start := minYPoint(points)
	hull := []Point{start}
	working := make(PointSet, len(points))
	for _, p := range points {
		working.Add(p)
	}
	working.Remove(start)

	prevBearing := 0.0
	closed := false
	for step := 1; !closed && working.Len() > 0; step++ {
		// The start vertex sits out of the neighbour search until the hull
		// is long enough that reaching it again can only mean closure.
		if len(hull) == 4 {
			working.Add(start)
		}

		tip := hull[len(hull)-1]
		candidates := rankCandidates(nearestNeighbors(working, tip, k), tip, prevBearing)

		accepted := false
		for _, cand := range candidates {
			if newEdgeIntersectsHull(hull, cand, cand == start) {
				continue
			}
			accepted = true
			if cand == start {
				closed = true
				break
			}
			b := tip.BearingTo(cand)
			if math.IsNaN(b) || math.IsInf(b, 0) {
				fatalf("non-finite bearing from %v to %v (k=%d, step=%d)", tip, cand, k, step)
			}
			hull = append(hull, cand)
			working.Remove(cand)
			prevBearing = b
			diag.EdgeAdded(k, step, hull)
			break
		}
		if !accepted {
			diag.AttemptFailed(k, "every candidate edge crosses the hull")
			return nil, false
		}
	}

	// The trace either closed the ring or consumed every point; in both
	// cases acceptance comes down to containment.
	poly := Polygon{Points: hull}
	if !poly.ContainsAll(points) {
		diag.AttemptFailed(k, "finished ring leaves points outside")
		return nil, false
	}
	return hull, true
}

// newEdgeIntersectsHull checks the prospective edge from the hull tip to
// cand against the existing hull edges. The edge ending at the tip always
// shares that endpoint with the new edge and is skipped; when cand is the
// start vertex, the first hull edge is skipped for the same reason.
func newEdgeIntersectsHull(hull []Point, cand Point, candIsStart bool) bool {
	tip := hull[len(hull)-1]
	edge := Segment{Start: tip, End: cand}
	for i := 0; i+1 < len(hull); i++ {
		if i == len(hull)-2 {
			continue
		}
		if candIsStart && i == 0 {
			continue
		}
		if edge.Intersects(Segment{Start: hull[i], End: hull[i+1]}) {
			return true
		}
	}
	return false
}

// minYPoint returns the lowest point. The first point encountered wins
// ties, so a rerun over the same slice starts its trace in the same place.
func minYPoint(points []Point) Point {
	best := points[0]
	for _, p := range points[1:] {
		if p.Y < best.Y {
			best = p
		}
	}
	return best
}
