package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertValidHull checks everything a returned hull promises:
//
// 1. Every ring vertex is an input point.
// 2. No two consecutive ring vertices are identical.
// 3. The ring is simple: non-adjacent edges never touch.
// 4. Every input point is inside the ring or on its boundary.
func AssertValidHull(t *testing.T, points []Point, poly *Polygon) {
	t.Helper()
	require.NotNil(t, poly)
	ring := poly.Points
	require.GreaterOrEqual(t, len(ring), 3)

	inputSet := make(PointSet, len(points))
	for _, p := range points {
		inputSet.Add(p)
	}
	for _, v := range ring {
		require.True(t, inputSet.Has(v), "hull vertex %v is not an input point", v)
	}

	n := len(ring)
	for i := range ring {
		require.NotEqual(t, ring[i], ring[(i+1)%n], "consecutive identical vertices at %d", i)
	}

	for i := 0; i < n; i++ {
		a := Segment{Start: ring[i], End: ring[(i+1)%n]}
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				// Adjacent around the wrap.
				continue
			}
			b := Segment{Start: ring[j], End: ring[(j+1)%n]}
			assert.False(t, a.Intersects(b), "ring edges %d and %d intersect", i, j)
		}
	}

	assert.True(t, poly.ContainsAll(points), "hull does not contain every input point")
}
