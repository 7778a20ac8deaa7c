package hull

import "math"

// Segment is a closed line segment between two vertices: both endpoints
// belong to the segment, so segments that only touch still intersect.
type Segment struct {
	Start, End Point
}

// cross returns the z component of (a-o) × (b-o). Positive means o→a→b
// turns counterclockwise, zero means collinear.
func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// BoundsOverlap reports whether the axis-aligned bounding boxes of the two
// segments overlap. Overlapping boxes say nothing by themselves — two
// segments can share a box without sharing a point — but disjoint boxes
// are a cheap early out for Intersects.
func (s Segment) BoundsOverlap(o Segment) bool {
	return math.Min(s.Start.X, s.End.X) <= math.Max(o.Start.X, o.End.X) &&
		math.Min(o.Start.X, o.End.X) <= math.Max(s.Start.X, s.End.X) &&
		math.Min(s.Start.Y, s.End.Y) <= math.Max(o.Start.Y, o.End.Y) &&
		math.Min(o.Start.Y, o.End.Y) <= math.Max(s.Start.Y, s.End.Y)
}

// Intersects reports whether the two closed segments share any point,
// including single touching endpoints and collinear overlap. Zero-length
// segments intersect nothing: the tracing loop wants degenerate geometry to
// fall through quietly rather than stop an attempt.
func (s Segment) Intersects(o Segment) bool {
	if s.Start == s.End || o.Start == o.End {
		return false
	}
	if !s.BoundsOverlap(o) {
		return false
	}

	d1 := cross(o.Start, o.End, s.Start)
	d2 := cross(o.Start, o.End, s.End)
	d3 := cross(s.Start, s.End, o.Start)
	d4 := cross(s.Start, s.End, o.End)

	// Proper crossing: each segment's endpoints straddle the other's line.
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear or touching cases.
	if d1 == 0 && o.containsCollinear(s.Start) {
		return true
	}
	if d2 == 0 && o.containsCollinear(s.End) {
		return true
	}
	if d3 == 0 && s.containsCollinear(o.Start) {
		return true
	}
	if d4 == 0 && s.containsCollinear(o.End) {
		return true
	}
	return false
}

// containsCollinear reports whether p lies on the closed segment. Only
// meaningful when p is already known to be collinear with it.
func (s Segment) containsCollinear(p Point) bool {
	return math.Min(s.Start.X, s.End.X) <= p.X && p.X <= math.Max(s.Start.X, s.End.X) &&
		math.Min(s.Start.Y, s.End.Y) <= p.Y && p.Y <= math.Max(s.Start.Y, s.End.Y)
}
