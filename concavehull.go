// Concave hull construction for 2D point clouds.
//
// This package builds an ordered boundary polygon around a set of points
// using k-nearest-neighbour boundary tracing: starting from the lowest
// point, the hull is extended one edge at a time toward the nearby
// candidate requiring the sharpest available right-hand turn, rejecting
// edges that would cross the hull built so far. When a trace gets stuck or
// the finished ring leaves points outside, the whole attempt is retried
// with one more neighbour, up to the point count.
package concavehull

import "github.com/geofold/concavehull/hull"

type Point = hull.Point
type Polygon = hull.Polygon
type Options = hull.Options
type Diagnostics = hull.Diagnostics
type HullNotFoundError = hull.HullNotFoundError

// Argument errors, surfaced eagerly and never retried.
var (
	ErrTooFewPoints = hull.ErrTooFewPoints
	ErrInvalidK     = hull.ErrInvalidK
)

// ConcaveHull computes a concave hull around points with default options
// (k=3, duplicate elimination at whole-number precision, no diagnostics).
//
// On success the result ring is open (the first vertex is not repeated);
// use Closed for an explicit ring. A *HullNotFoundError means every
// neighbour count was exhausted without producing a containing ring.
func ConcaveHull(points []Point) (*Polygon, error) {
	return ConcaveHullWithOptions(points, Options{})
}

// ConcaveHullWithOptions is ConcaveHull with explicit options.
func ConcaveHullWithOptions(points []Point, opts Options) (result *Polygon, err error) {
	defer func() {
		recoveredErr := hull.HandleComputePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return hull.Compute(points, opts)
}
