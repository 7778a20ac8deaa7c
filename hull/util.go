package hull

import "math"

// Tolerance is the default slack for fuzzy coordinate comparison.
const Tolerance = 1e-4

// ApproxComparator compares points within a tolerance. It exists for
// ordering and matching jobs where coordinates have been through arithmetic
// and exact equality would be wrong. It must never back a map or a set:
// hashing needs the exact equality Points already have, and tolerance-based
// "equality" isn't even transitive.
type ApproxComparator struct {
	Tolerance float64
}

// NewApproxComparator returns a comparator with the default Tolerance.
func NewApproxComparator() ApproxComparator {
	return ApproxComparator{Tolerance: Tolerance}
}

func (c ApproxComparator) equalCoord(a, b float64) bool {
	return math.Abs(a-b) < c.Tolerance
}

// Equal reports whether both coordinates match within the tolerance.
func (c ApproxComparator) Equal(a, b Point) bool {
	return c.equalCoord(a.X, b.X) && c.equalCoord(a.Y, b.Y)
}

// Less orders points by (Y, X), treating coordinates within the tolerance
// as equal so that noise below the tolerance can't flip an ordering.
func (c ApproxComparator) Less(a, b Point) bool {
	if !c.equalCoord(a.Y, b.Y) {
		return a.Y < b.Y
	}
	if !c.equalCoord(a.X, b.X) {
		return a.X < b.X
	}
	return false
}
