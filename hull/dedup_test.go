package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupPoints(t *testing.T) {
	t.Run("exact duplicates collapse, first seen wins", func(t *testing.T) {
		in := []Point{{1, 2}, {3, 4}, {1, 2}, {5, 6}, {3, 4}, {1, 2}}
		assert.Equal(t, []Point{{1, 2}, {3, 4}, {5, 6}}, DedupPoints(in, 0))
	})

	t.Run("multiplicity is irrelevant", func(t *testing.T) {
		a := []Point{{1, 1}, {2, 2}}
		b := []Point{{1, 1}, {1, 1}, {1, 1}, {2, 2}, {2, 2}}
		assert.Equal(t, DedupPoints(a, 0), DedupPoints(b, 0))
	})

	t.Run("precision widens the y quantum", func(t *testing.T) {
		// At precision 0 only whole-number y differences survive.
		in := []Point{{0, 0.2}, {0, 0.9}}
		assert.Len(t, DedupPoints(in, 0), 1)
		assert.Len(t, DedupPoints(in, 1), 2)
	})

	t.Run("negative precision behaves like zero", func(t *testing.T) {
		in := []Point{{1, 2}, {1, 2}}
		assert.Equal(t, DedupPoints(in, 0), DedupPoints(in, -3))
	})

	t.Run("composite key collisions are a known quirk", func(t *testing.T) {
		// An x difference of one key unit aliases a y difference of one:
		// both of these quantize to key 1 at precision 0. Deliberately
		// preserved behavior; this test documents it rather than blessing
		// it as desirable.
		in := []Point{{0.000001, 0}, {0, 1}}
		assert.Len(t, DedupPoints(in, 0), 1)
	})
}
