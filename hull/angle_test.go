package hull

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// pointAtBearing puts a point on the unit circle around pivot at the given
// bearing in degrees.
func pointAtBearing(pivot Point, degrees float64) Point {
	rad := degrees * math.Pi / 180
	return Point{X: pivot.X + math.Cos(rad), Y: pivot.Y + math.Sin(rad)}
}

func TestRankCandidates(t *testing.T) {
	pivot := Point{0, 0}

	t.Run("zero previous bearing ranks by bearing", func(t *testing.T) {
		// With a previous bearing of 0 the forward difference equals the
		// bearing itself, so 10°, 170° and 350° come back in that order
		// no matter how they went in.
		p10 := pointAtBearing(pivot, 10)
		p170 := pointAtBearing(pivot, 170)
		p350 := pointAtBearing(pivot, 350)

		ranked := rankCandidates([]Point{p350, p10, p170}, pivot, 0)
		assert.Equal(t, []Point{p10, p170, p350}, ranked)
	})

	t.Run("differences are relative to the previous bearing", func(t *testing.T) {
		// Traveling at 90°: a candidate at 100° is a 10° left deviation, a
		// candidate at 80° wraps to 350° forward and ranks last.
		p100 := pointAtBearing(pivot, 100)
		p80 := pointAtBearing(pivot, 80)

		ranked := rankCandidates([]Point{p80, p100}, pivot, math.Pi/2)
		assert.Equal(t, []Point{p100, p80}, ranked)
	})

	t.Run("identical turns keep input order", func(t *testing.T) {
		near := Point{1, 0}
		far := Point{3, 0}
		ranked := rankCandidates([]Point{near, far}, pivot, 0)
		assert.Equal(t, []Point{near, far}, ranked)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, rankCandidates(nil, pivot, 0))
	})
}
