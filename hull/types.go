// Package hull implements concave hull construction by k-nearest-neighbour
// boundary tracing, along with the geometric primitives the trace is built
// from. The public entry point is Compute; the root concavehull package
// wraps it with panic recovery.
package hull

// Point is a 2D vertex. Points are plain comparable values: the tracing
// algorithm keeps its working set in a map keyed by Point, so set
// membership is exact float equality on both coordinates. Fuzzy matching is
// a separate concern (see ApproxComparator) and must never leak into set
// membership.
type Point struct {
	X, Y float64
}

// Polygon is an ordered boundary ring. The ring is stored open (the first
// vertex is not repeated at the end); Closed returns the explicit ring.
type Polygon struct {
	Points []Point
}

// PointSet is the mutable working set of candidate vertices during a
// trace. Iteration order is whatever the map gives us; that order is also
// the documented tie-break for equidistant neighbours, so equidistant ties
// are non-deterministic across runs.
type PointSet map[Point]struct{}

func (s PointSet) Add(p Point)    { s[p] = struct{}{} }
func (s PointSet) Remove(p Point) { delete(s, p) }

func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

func (s PointSet) Len() int { return len(s) }

// pointDistance pairs a candidate with its distance to a fixed query
// point. It only lives for the duration of one nearest-neighbour scan.
type pointDistance struct {
	point Point
	dist  float64
}
