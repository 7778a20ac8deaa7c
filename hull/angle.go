package hull

import (
	"math"
	"sort"
)

// rankCandidates orders candidates by descending clockwise turn from the
// previous edge bearing: the candidate needing the smallest deviation from
// the current direction of travel is tried first, and sharper left turns
// come later. This is what keeps the trace hugging the outside of the
// cloud instead of cutting across it. Equivalently the sort is ascending
// in counterclockwise deviation — with a previous bearing of zero,
// candidates at bearings 10°, 170° and 350° rank in exactly that order.
//
// The sort is stable over the distance-ordered input, so candidates with
// identical turn angles keep their nearest-first order. The original
// algorithm leaves that tie open; stability at least makes reruns
// reproducible for a fixed input order.
func rankCandidates(candidates []Point, pivot Point, prevBearing float64) []Point {
	type turn struct {
		point Point
		cw    float64
	}
	turns := make([]turn, len(candidates))
	for i, c := range candidates {
		// Forward (counterclockwise) difference from the previous bearing,
		// normalized to [0, 2π); its clockwise complement is the sort key.
		diff := normalizeAngle(pivot.BearingTo(c) - prevBearing)
		turns[i] = turn{point: c, cw: 2*math.Pi - diff}
	}
	sort.SliceStable(turns, func(i, j int) bool {
		return turns[i].cw > turns[j].cw
	})

	ranked := make([]Point, len(turns))
	for i, t := range turns {
		ranked[i] = t.point
	}
	return ranked
}
