package hull

import "math"

// DistanceTo returns the Euclidean distance from p to q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// SlopeTo returns the slope of the line from p to q. Vertical lines give
// ±Inf and coincident points give NaN; callers that care must check.
func (p Point) SlopeTo(q Point) float64 {
	return (q.Y - p.Y) / (q.X - p.X)
}

// BearingTo returns the direction from p to q in radians, measured
// counterclockwise from the positive x axis and normalized to [0, 2π).
func (p Point) BearingTo(q Point) float64 {
	return normalizeAngle(math.Atan2(q.Y-p.Y, q.X-p.X))
}

// normalizeAngle maps an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
