package hull

import "math"

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max Point
}

// Contains reports whether p lies inside or on the box.
func (b Bounds) Contains(p Point) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X && b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// Closed returns the ring with the first vertex repeated at the end.
func (poly Polygon) Closed() []Point {
	if len(poly.Points) == 0 {
		return nil
	}
	ring := make([]Point, len(poly.Points)+1)
	copy(ring, poly.Points)
	ring[len(ring)-1] = poly.Points[0]
	return ring
}

// BoundingBox returns the axis-aligned extent of the ring.
func (poly Polygon) BoundingBox() Bounds {
	b := Bounds{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
	for _, p := range poly.Points {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// Area returns the unsigned area of the ring, by the shoelace formula.
func (poly Polygon) Area() float64 {
	var sum float64
	n := len(poly.Points)
	for i, a := range poly.Points {
		b := poly.Points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// Contains reports whether p is inside the ring or exactly on its
// boundary. The boundary walk runs first so that edge and vertex hits
// always count as inside; interior membership then falls to the even-odd
// crossing rule.
func (poly Polygon) Contains(p Point) bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	for i, a := range poly.Points {
		b := poly.Points[(i+1)%n]
		if cross(a, b, p) == 0 && (Segment{a, b}).containsCollinear(p) {
			return true
		}
	}

	inside := false
	for i, a := range poly.Points {
		b := poly.Points[(i+1)%n]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// ContainsAll reports whether every point is inside or on the ring. Points
// that are themselves ring vertices pass trivially; everything else goes
// through the bounding-box prefilter before the full test. The first
// outsider short-circuits.
func (poly Polygon) ContainsAll(points []Point) bool {
	onHull := make(PointSet, len(poly.Points))
	for _, v := range poly.Points {
		onHull.Add(v)
	}
	box := poly.BoundingBox()
	for _, p := range points {
		if onHull.Has(p) {
			continue
		}
		if !box.Contains(p) {
			return false
		}
		if !poly.Contains(p) {
			return false
		}
	}
	return true
}
